package payeer

import (
	"net/url"
	"regexp"
	"strconv"
)

// Either a Payeer account number or something that looks like an email.
// Account numbers are only matched as a prefix, emails up to the end.
var accountPattern = regexp.MustCompile(`^(?:[Pp][0-9]{7,15}|.+@.+\..+$)`)

func ValidateAccount(account string) error {
	if !accountPattern.MatchString(account) {
		return ErrInvalidAccount
	}
	return nil
}

func setIfNotEmpty(form url.Values, key string, value string) {
	if value != "" {
		form.Set(key, value)
	}
}

func setIfPositive(form url.Values, key string, value int) {
	if value > 0 {
		form.Set(key, strconv.Itoa(value))
	}
}

package payeer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidAccount = errors.New("payeer: wrong account format")
	ErrMissingField   = errors.New("payeer: missing response field")
	ErrInvalidJSON    = errors.New("payeer: response is not valid JSON")
	ErrCountTooLarge  = errors.New("payeer: history count exceeds 1000")
	ErrNilRequest     = errors.New("payeer: nil request")
)

// APIError is returned when the response carries a non-empty "errors" field.
type APIError struct {
	Errors   json.RawMessage
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return "payeer: api error"
	}
	return "payeer: " + strings.Join(e.Messages, "; ")
}

type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("payeer: http status %d: %s", e.StatusCode, e.Body)
}

func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

func newAPIError(value gjson.Result) *APIError {
	return &APIError{
		Errors:   json.RawMessage(value.Raw),
		Messages: errorMessages(value),
	}
}

func errorMessages(value gjson.Result) []string {
	messages := []string{}
	switch {
	case value.IsArray():
		for _, item := range value.Array() {
			messages = append(messages, errorMessages(item)...)
		}
	case value.IsObject():
		value.ForEach(func(key, item gjson.Result) bool {
			for _, message := range errorMessages(item) {
				messages = append(messages, key.String()+": "+message)
			}
			return true
		})
	case value.Type == gjson.String:
		messages = append(messages, value.Str)
	default:
		messages = append(messages, value.Raw)
	}
	return messages
}

// truthy follows the loose rules the API uses for "errors": an empty list,
// empty object, empty string, false, null or zero all mean no error.
func truthy(value gjson.Result) bool {
	switch value.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return value.Num != 0
	case gjson.String:
		return value.Str != ""
	case gjson.JSON:
		if value.IsArray() {
			return len(value.Array()) > 0
		}
		return len(value.Map()) > 0
	default:
		return false
	}
}

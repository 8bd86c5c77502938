package signer

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sign joins parts and the secret key with ":" and returns the upper-case
// hex SHA-256 of the result, the scheme used by Payeer merchant forms and
// status notifications.
func Sign(secret string, parts ...string) string {
	payload := secret
	if len(parts) > 0 {
		payload = strings.Join(parts, ":") + ":" + secret
	}
	sum := sha256.Sum256([]byte(payload))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

package signer

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	sum := sha256.Sum256([]byte("12345:order-1:10.00:USD:dGVzdA==:secret"))
	expected := strings.ToUpper(hex.EncodeToString(sum[:]))

	require.Equal(t, expected, Sign("secret", "12345", "order-1", "10.00", "USD", "dGVzdA=="))
}

func TestSignWithoutParts(t *testing.T) {
	sum := sha256.Sum256([]byte("secret"))

	require.Equal(t, strings.ToUpper(hex.EncodeToString(sum[:])), Sign("secret"))
}

func TestSignDependsOnOrder(t *testing.T) {
	require.NotEqual(t, Sign("secret", "a", "b"), Sign("secret", "b", "a"))
}

// Package shared holds small helpers used by both the client and the dev
// server: random token material and wiping of secrets read from a terminal.
package shared

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns 2*size hex characters from crypto/rand. The dev server
// uses RandomHex(20) for its 40 character session tokens.
func RandomHex(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Wipe zeroes b. Nil is fine.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

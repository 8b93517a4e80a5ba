// Package crypt holds the credential encoding the backend wire contract
// expects, plus a checksum helper.
package crypt

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// EncodePassword applies the reversible textual encoding the backend expects
// on the wire. This is a PLACEHOLDER, not cryptography: real hashing happens
// server-side, and strengthening this client-side would break the contract.
func EncodePassword(plain string) string {
	return base64.StdEncoding.EncodeToString([]byte(plain))
}

// DecodePassword reverses EncodePassword. Kept for symmetry and tests; the
// client itself never decodes credentials.
func DecodePassword(encoded string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("crypt: decode: %w", err)
	}
	return string(b), nil
}

// Hash returns a SHA-256 hex digest of the input — useful for checksums.
func Hash(input string) string {
	h := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", h)
}

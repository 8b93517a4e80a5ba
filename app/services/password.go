package services

import (
	"strings"
	"unicode"
)

// passwordSpecials is the punctuation set the strength policy accepts.
const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

const weakPasswordMessage = "Password must be at least 8 characters long and contain letters, numbers, and special characters"

// IsPasswordStrong reports whether p satisfies the registration policy:
// at least 8 characters, containing at least one letter, one digit, and one
// character from passwordSpecials. All three classes are required.
func IsPasswordStrong(p string) bool {
	if len(p) < 8 {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range p {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit && strings.ContainsAny(p, passwordSpecials)
}

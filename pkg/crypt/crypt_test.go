package crypt_test

import (
	"testing"

	"github.com/shashiranjanraj/shopeasy/pkg/crypt"
)

func TestEncodePasswordRoundTrip(t *testing.T) {
	for _, plain := range []string{"", "abcd123!", `p@ss":{}|<>`} {
		got, err := crypt.DecodePassword(crypt.EncodePassword(plain))
		if err != nil {
			t.Fatalf("DecodePassword(%q): %v", plain, err)
		}
		if got != plain {
			t.Errorf("round trip of %q = %q", plain, got)
		}
	}
}

func TestEncodePasswordIsStandardBase64(t *testing.T) {
	// The backend decodes with plain base64; the exact output matters.
	if got := crypt.EncodePassword("abcd123!"); got != "YWJjZDEyMyE=" {
		t.Errorf("EncodePassword = %q", got)
	}
}

func TestDecodePasswordRejectsGarbage(t *testing.T) {
	if _, err := crypt.DecodePassword("%%not-base64%%"); err == nil {
		t.Error("expected error for invalid input")
	}
}

func TestHashIsStableHex(t *testing.T) {
	a, b := crypt.Hash("hello"), crypt.Hash("hello")
	if a != b {
		t.Errorf("Hash not deterministic: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("Hash length = %d, want 64 hex chars", len(a))
	}
	if crypt.Hash("hello") == crypt.Hash("hello!") {
		t.Error("distinct inputs collided")
	}
}

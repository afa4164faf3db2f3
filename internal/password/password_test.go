package password

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("pw123")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if strings.Contains(hash, "pw123") {
		t.Error("hash contains the plaintext password")
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cost != Cost {
		t.Errorf("expected cost %d, got %d", Cost, cost)
	}

	if err = Compare(hash, "pw123"); err != nil {
		t.Errorf("expected password to match, got %s", err)
	}

	if err = Compare(hash, "pw1234"); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected %s, got %v", ErrMismatch, err)
	}
}

func TestCompareInvalidHash(t *testing.T) {
	err := Compare("not a hash", "pw123")
	if err == nil || errors.Is(err, ErrMismatch) {
		t.Errorf("expected a hash error, got %v", err)
	}
}

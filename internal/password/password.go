// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for every stored password. Changing it does not invalidate existing hashes,
// since bcrypt records the cost in the hash itself.
const Cost = 10

var ErrMismatch = errors.New("password does not match")

func Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	return string(h), err
}

// Compare checks password against hash in constant time. It returns ErrMismatch if they do not match; any other
// error means the hash itself is unusable.
func Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}

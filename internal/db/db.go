package db

import (
	"errors"
)

//go:generate mockgen -destination=../mocks/mock_db.go -package=mocks . DB

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")
)

// DB is the blog's persistence layer. Every method that looks up a single record returns ErrNotFound when it does
// not exist; deletions of missing records return ErrNotFound as well.
type DB interface {
	Users
	Posts
	Comments
	Files
}

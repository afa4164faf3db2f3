package service

import (
	"errors"

	"github.com/sidereusnuntius/goblog/internal/db"
)

var (
	// ErrNotFound is returned when the user, post, comment or file an operation targets does not exist.
	ErrNotFound = db.ErrNotFound
	// ErrNoSuchUser and ErrBadPassword are the two ways a login fails. Callers must not tell them apart in anything
	// shown to the user.
	ErrNoSuchUser  = errors.New("no such user")
	ErrBadPassword = errors.New("bad password")
	// ErrEmailTaken is the registration conflict.
	ErrEmailTaken = errors.New("email already in use")
	// ErrForbidden is returned when the actor is not the owner of the resource it tries to change.
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidInput    = errors.New("invalid")
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUpstream wraps failures of the database or of the asset store.
	ErrUpstream = errors.New("upstream failure")
)

type Service interface {
	AccountService
	UserService
	PostService
	CommentService
	FileService
}

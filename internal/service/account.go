package service

import (
	"context"

	"github.com/sidereusnuntius/goblog/internal/domain"
)

type AccountService interface {
	// Login verifies the password against the hash of the user registered with email. It fails with ErrNoSuchUser
	// or ErrBadPassword.
	Login(ctx context.Context, email, password string) (domain.User, error)
	// Register creates a new user. The user is not logged in.
	Register(ctx context.Context, username, email, password string) (domain.User, error)
	// DeleteAccount removes the user together with their posts, comments and uploaded files, deleting the assets from
	// the asset store before the records that reference them. It returns ErrNotFound if the user does not exist.
	DeleteAccount(ctx context.Context, userId domain.ID) error
}

package db

import (
	"context"

	"github.com/sidereusnuntius/goblog/internal/domain"
)

type Users interface {
	// CreateUser persists a new user with an already hashed password. It returns ErrConflict if the email is in use.
	CreateUser(ctx context.Context, username, email, passwordHash string) (domain.ID, error)
	GetUserByID(ctx context.Context, id domain.ID) (domain.User, error)
	GetAuthDataByEmail(ctx context.Context, email string) (domain.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id domain.ID, username, bio string) error
	// SetProfilePicture points the user's picture to fileId; a nil fileId removes the picture.
	SetProfilePicture(ctx context.Context, userId domain.ID, fileId *domain.ID) error
	DeleteUser(ctx context.Context, id domain.ID) error
}

package service

import (
	"context"

	"github.com/sidereusnuntius/goblog/internal/domain"
)

type UserService interface {
	GetUser(ctx context.Context, id domain.ID) (domain.User, error)
	// GetProfile returns the user with their posts, newest first, and the ids of their comments.
	GetProfile(ctx context.Context, id domain.ID) (domain.Profile, error)
	// UpdateProfile changes the username and bio; if picture is not nil, it also replaces the profile picture.
	UpdateProfile(ctx context.Context, userId domain.ID, username, bio string, picture *domain.Upload) (domain.User, error)
}

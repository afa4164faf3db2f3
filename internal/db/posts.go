package db

import (
	"context"

	"github.com/sidereusnuntius/goblog/internal/domain"
)

type Posts interface {
	// CreatePost inserts the post, the records of its images and the links between them in a single transaction.
	// The ids of the saved images are not returned; they are read back with the post.
	CreatePost(ctx context.Context, post domain.Post, images []domain.File) (domain.ID, error)
	// GetPost returns the post with its images and author name, but without comments.
	GetPost(ctx context.Context, id domain.ID) (domain.Post, error)
	ListPosts(ctx context.Context, limit int) ([]domain.Post, error)
	ListPostsByAuthor(ctx context.Context, authorId domain.ID) ([]domain.Post, error)
	DeletePost(ctx context.Context, id domain.ID) error
}

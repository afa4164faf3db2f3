package service

import (
	"context"

	"github.com/sidereusnuntius/goblog/internal/domain"
)

type PostService interface {
	CreatePost(ctx context.Context, authorId domain.ID, title, content string, images []domain.Upload) (domain.ID, error)
	GetPost(ctx context.Context, id domain.ID) (domain.PostDetails, error)
	ListPosts(ctx context.Context, limit int) ([]domain.Post, error)
	// DeletePost deletes the post, its comments and images if actorId is the post's author.
	DeletePost(ctx context.Context, actorId, postId domain.ID) error
}

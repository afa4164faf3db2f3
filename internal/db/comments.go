package db

import (
	"context"

	"github.com/sidereusnuntius/goblog/internal/domain"
)

type Comments interface {
	CreateComment(ctx context.Context, comment domain.Comment) (domain.ID, error)
	GetComment(ctx context.Context, id domain.ID) (domain.Comment, error)
	ListCommentsByPost(ctx context.Context, postId domain.ID) ([]domain.Comment, error)
	ListCommentIDsByAuthor(ctx context.Context, authorId domain.ID) ([]domain.ID, error)
	UpdateComment(ctx context.Context, id domain.ID, content string) error
	DeleteComment(ctx context.Context, id domain.ID) error
	DeleteCommentsByPost(ctx context.Context, postId domain.ID) (int64, error)
	DeleteCommentsByAuthor(ctx context.Context, authorId domain.ID) (int64, error)
}

package service

import (
	"context"

	"github.com/sidereusnuntius/goblog/internal/domain"
)

type CommentService interface {
	AddComment(ctx context.Context, authorId, postId domain.ID, content string) (domain.ID, error)
	// EditComment and DeleteComment return ErrNotFound if the comment does not exist and ErrForbidden if actorId
	// is not its author; nothing is changed in either case. Once the comment is found, the id of the post it
	// belongs to is returned, whatever the error.
	EditComment(ctx context.Context, actorId, commentId domain.ID, content string) (domain.ID, error)
	DeleteComment(ctx context.Context, actorId, commentId domain.ID) (domain.ID, error)
}

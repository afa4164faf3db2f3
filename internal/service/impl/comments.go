package core

import (
	"context"
	"strings"

	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/events"
	"github.com/sidereusnuntius/goblog/internal/validate"
)

func (s *AppService) AddComment(ctx context.Context, authorId, postId domain.ID, content string) (domain.ID, error) {
	content = strings.TrimSpace(content)
	if err := validate.Comment(content); err != nil {
		return 0, invalid(err)
	}

	if _, err := s.DB.GetPost(ctx, postId); err != nil {
		return 0, upstream(err)
	}

	id, err := s.DB.CreateComment(ctx, domain.Comment{
		Content:  content,
		PostID:   postId,
		AuthorID: authorId,
	})
	if err != nil {
		return 0, upstream(err)
	}

	s.publish(ctx, events.CommentCreated, authorId, id)
	return id, nil
}

func (s *AppService) EditComment(ctx context.Context, actorId, commentId domain.ID, content string) (domain.ID, error) {
	comment, err := s.ownComment(ctx, actorId, commentId)
	if err != nil {
		return comment.PostID, err
	}

	content = strings.TrimSpace(content)
	if err := validate.Comment(content); err != nil {
		return comment.PostID, invalid(err)
	}

	return comment.PostID, upstream(s.DB.UpdateComment(ctx, commentId, content))
}

func (s *AppService) DeleteComment(ctx context.Context, actorId, commentId domain.ID) (domain.ID, error) {
	comment, err := s.ownComment(ctx, actorId, commentId)
	if err != nil {
		return comment.PostID, err
	}

	return comment.PostID, upstream(s.DB.DeleteComment(ctx, commentId))
}

// ownComment loads the comment and checks that actorId wrote it.
func (s *AppService) ownComment(ctx context.Context, actorId, commentId domain.ID) (domain.Comment, error) {
	comment, err := s.DB.GetComment(ctx, commentId)
	if err != nil {
		return domain.Comment{}, upstream(err)
	}
	return comment, authorize(actorId, comment.AuthorID)
}

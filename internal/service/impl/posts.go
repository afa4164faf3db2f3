package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/events"
	"github.com/sidereusnuntius/goblog/internal/utils"
	"github.com/sidereusnuntius/goblog/internal/validate"
)

func (s *AppService) CreatePost(ctx context.Context, authorId domain.ID, title, content string, images []domain.Upload) (domain.ID, error) {
	title = utils.CollapseSpaces(title)
	content = strings.TrimSpace(content)

	if err := validate.Post(title, content); err != nil {
		return 0, invalid(err)
	}
	if len(images) > validate.MaxImages {
		return 0, invalid(fmt.Errorf("too many images; max %d", validate.MaxImages))
	}

	files, err := s.upload(ctx, authorId, images)
	if err != nil {
		return 0, err
	}

	id, err := s.DB.CreatePost(ctx, domain.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorId,
	}, files)
	if err != nil {
		s.discard(ctx, files)
		return 0, upstream(err)
	}

	s.publish(ctx, events.PostCreated, authorId, id)
	return id, nil
}

func (s *AppService) GetPost(ctx context.Context, id domain.ID) (domain.PostDetails, error) {
	post, err := s.DB.GetPost(ctx, id)
	if err != nil {
		return domain.PostDetails{}, upstream(err)
	}

	comments, err := s.DB.ListCommentsByPost(ctx, id)
	if err != nil {
		return domain.PostDetails{}, upstream(err)
	}

	return domain.PostDetails{
		Post:     post,
		Comments: comments,
	}, nil
}

func (s *AppService) ListPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = DefaultPostLimit
	}
	posts, err := s.DB.ListPosts(ctx, limit)
	return posts, upstream(err)
}

func (s *AppService) DeletePost(ctx context.Context, actorId, postId domain.ID) error {
	post, err := s.DB.GetPost(ctx, postId)
	if err != nil {
		return upstream(err)
	}

	if err = authorize(actorId, post.AuthorID); err != nil {
		return err
	}

	if err = s.removePost(ctx, post, nil); err != nil {
		return err
	}

	s.publish(ctx, events.PostDeleted, actorId, postId)
	return nil
}

// removePost deletes the images of the post from the asset store, then its comments, the post and finally the image
// records. The keys of the deleted assets are added to removed, if it is not nil.
func (s *AppService) removePost(ctx context.Context, post domain.Post, removed map[string]bool) error {
	for _, img := range post.Images {
		if err := s.deleteAsset(ctx, img.Key); err != nil {
			return err
		}
		if removed != nil {
			removed[img.Key] = true
		}
	}

	if _, err := s.DB.DeleteCommentsByPost(ctx, post.ID); err != nil {
		return upstream(err)
	}

	if err := s.DB.DeletePost(ctx, post.ID); err != nil {
		return upstream(err)
	}

	for _, img := range post.Images {
		if err := s.DB.DeleteFile(ctx, img.ID); err != nil && !errors.Is(err, db.ErrNotFound) {
			return upstream(err)
		}
	}
	return nil
}

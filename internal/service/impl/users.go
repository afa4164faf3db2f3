package core

import (
	"context"
	"strings"

	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/utils"
	"github.com/sidereusnuntius/goblog/internal/validate"
)

func (s *AppService) GetUser(ctx context.Context, id domain.ID) (domain.User, error) {
	user, err := s.DB.GetUserByID(ctx, id)
	return user, upstream(err)
}

func (s *AppService) GetProfile(ctx context.Context, id domain.ID) (p domain.Profile, err error) {
	p.User, err = s.DB.GetUserByID(ctx, id)
	if err != nil {
		return p, upstream(err)
	}

	p.Posts, err = s.DB.ListPostsByAuthor(ctx, id)
	if err != nil {
		return p, upstream(err)
	}

	p.CommentIDs, err = s.DB.ListCommentIDsByAuthor(ctx, id)
	return p, upstream(err)
}

// UpdateProfile saves the new username and bio. A new picture is uploaded and recorded before the old one is
// removed; if removing the old asset fails, its deletion is queued.
func (s *AppService) UpdateProfile(ctx context.Context, userId domain.ID, username, bio string, picture *domain.Upload) (domain.User, error) {
	username = utils.CollapseSpaces(username)
	bio = strings.TrimSpace(bio)

	if err := validate.Profile(username, bio); err != nil {
		return domain.User{}, invalid(err)
	}

	user, err := s.DB.GetUserByID(ctx, userId)
	if err != nil {
		return domain.User{}, upstream(err)
	}

	if picture != nil {
		if err = s.replacePicture(ctx, user, *picture); err != nil {
			return domain.User{}, err
		}
	}

	if err = s.DB.UpdateProfile(ctx, userId, username, bio); err != nil {
		return domain.User{}, upstream(err)
	}

	user, err = s.DB.GetUserByID(ctx, userId)
	return user, upstream(err)
}

func (s *AppService) replacePicture(ctx context.Context, user domain.User, picture domain.Upload) error {
	files, err := s.upload(ctx, user.ID, []domain.Upload{picture})
	if err != nil {
		return err
	}

	id, err := s.DB.SaveFile(ctx, files[0])
	if err != nil {
		s.discard(ctx, files)
		return upstream(err)
	}

	if err = s.DB.SetProfilePicture(ctx, user.ID, &id); err != nil {
		files[0].ID = id
		s.dropFile(ctx, files[0])
		return upstream(err)
	}

	if user.Picture != nil {
		s.dropFile(ctx, *user.Picture)
	}
	return nil
}

package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/events"
	"github.com/sidereusnuntius/goblog/internal/password"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/internal/utils"
	"github.com/sidereusnuntius/goblog/internal/validate"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login looks the user up by email and compares pass with that user's own hash.
func (s *AppService) Login(ctx context.Context, email, pass string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || pass == "" {
		return domain.User{}, invalid(errors.New("empty email or password"))
	}

	account, err := s.DB.GetAuthDataByEmail(ctx, email)
	if errors.Is(err, db.ErrNotFound) {
		return domain.User{}, service.ErrNoSuchUser
	}
	if err != nil {
		return domain.User{}, upstream(err)
	}

	if err = password.Compare(account.Password, pass); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return domain.User{}, service.ErrBadPassword
		}
		log.Error().Err(err).Str("user", account.UserID.String()).Msg("unusable password hash")
		return domain.User{}, upstream(err)
	}

	user, err := s.DB.GetUserByID(ctx, account.UserID)
	return user, upstream(err)
}

func (s *AppService) Register(ctx context.Context, username, email, pass string) (domain.User, error) {
	username = utils.CollapseSpaces(username)
	email = normalizeEmail(email)

	if err := validate.SignUpForm(username, pass, email); err != nil {
		return domain.User{}, invalid(err)
	}

	unlock := s.locks.Lock("register:" + email)
	defer unlock()

	exists, err := s.DB.EmailExists(ctx, email)
	if err != nil {
		return domain.User{}, upstream(err)
	}
	if exists {
		return domain.User{}, service.ErrEmailTaken
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}

	// The unique index on email catches registrations that raced past the check above in another process.
	id, err := s.DB.CreateUser(ctx, username, email, hash)
	if errors.Is(err, db.ErrConflict) {
		return domain.User{}, service.ErrEmailTaken
	}
	if err != nil {
		return domain.User{}, upstream(err)
	}

	log.Info().Str("user", id.String()).Msg("user registered")
	s.publish(ctx, events.UserRegistered, id, id)

	user, err := s.DB.GetUserByID(ctx, id)
	return user, upstream(err)
}

// DeleteAccount removes everything the user owns. There is no transaction around the steps: the first failure
// aborts the cascade and whatever was already removed stays removed, so the cascade can simply be run again.
func (s *AppService) DeleteAccount(ctx context.Context, userId domain.ID) error {
	unlock := s.locks.Lock("delete:" + userId.String())
	defer unlock()

	user, err := s.DB.GetUserByID(ctx, userId)
	if err != nil {
		return upstream(err)
	}

	// Keys of the assets already removed from the store.
	removed := make(map[string]bool)

	if user.Picture != nil {
		if err = s.deleteAsset(ctx, user.Picture.Key); err != nil {
			return fmt.Errorf("deleting profile picture: %w", err)
		}
		removed[user.Picture.Key] = true
	}

	posts, err := s.DB.ListPostsByAuthor(ctx, userId)
	if err != nil {
		return upstream(err)
	}
	for _, p := range posts {
		if err = s.removePost(ctx, p, removed); err != nil {
			return fmt.Errorf("deleting post %s: %w", p.ID, err)
		}
	}

	// Comments left on posts of other users.
	if _, err = s.DB.DeleteCommentsByAuthor(ctx, userId); err != nil {
		return upstream(err)
	}

	files, err := s.DB.ListFilesByUploader(ctx, userId)
	if err != nil {
		return upstream(err)
	}
	for _, f := range files {
		if !removed[f.Key] {
			if err = s.deleteAsset(ctx, f.Key); err != nil {
				return fmt.Errorf("deleting file %s: %w", f.Key, err)
			}
			removed[f.Key] = true
		}
		if err = s.DB.DeleteFile(ctx, f.ID); err != nil && !errors.Is(err, db.ErrNotFound) {
			return upstream(err)
		}
	}

	if err = s.DB.DeleteUser(ctx, userId); err != nil {
		return upstream(err)
	}

	log.Info().Str("user", userId.String()).Int("posts", len(posts)).Int("assets", len(removed)).Msg("account deleted")
	s.publish(ctx, events.AccountDeleted, userId, userId)
	return nil
}

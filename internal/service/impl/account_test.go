package core

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/mocks"
	"github.com/sidereusnuntius/goblog/internal/password"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/internal/storage"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	hash, err := password.Hash("pw123")
	if err != nil {
		t.Fatal(err)
	}
	alice := domain.User{ID: 1, Username: "alice", Email: "alice@x.com"}
	account := domain.Account{UserID: 1, Username: "alice", Email: "alice@x.com", Password: hash}

	cases := []struct {
		name     string
		email    string
		password string
		setup    func(m *mocks.MockDB)
		expected error
	}{
		{
			name:     "success",
			email:    " Alice@X.com",
			password: "pw123",
			setup: func(m *mocks.MockDB) {
				m.EXPECT().GetAuthDataByEmail(ctx, "alice@x.com").Return(account, nil)
				m.EXPECT().GetUserByID(ctx, domain.ID(1)).Return(alice, nil)
			},
		},
		{
			name:     "no such user",
			email:    "nobody@x.com",
			password: "whatever",
			setup: func(m *mocks.MockDB) {
				m.EXPECT().GetAuthDataByEmail(ctx, "nobody@x.com").Return(domain.Account{}, db.ErrNotFound)
			},
			expected: service.ErrNoSuchUser,
		},
		{
			name:     "bad password",
			email:    "alice@x.com",
			password: "PW123",
			setup: func(m *mocks.MockDB) {
				m.EXPECT().GetAuthDataByEmail(ctx, "alice@x.com").Return(account, nil)
			},
			expected: service.ErrBadPassword,
		},
		{
			name:     "database failure",
			email:    "alice@x.com",
			password: "pw123",
			setup: func(m *mocks.MockDB) {
				m.EXPECT().GetAuthDataByEmail(ctx, "alice@x.com").Return(domain.Account{}, db.ErrInternal)
			},
			expected: service.ErrUpstream,
		},
		{
			name:     "empty password",
			email:    "alice@x.com",
			password: "",
			setup:    func(m *mocks.MockDB) {},
			expected: service.ErrInvalidInput,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			c.setup(f.db)

			u, err := f.service.Login(ctx, c.email, c.password)
			if !errors.Is(err, c.expected) {
				t.Fatalf("expected error %v, got %v", c.expected, err)
			}
			if c.expected == nil {
				if diff := cmp.Diff(alice, u); diff != "" {
					t.Errorf("user mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestRegister(t *testing.T) {
	alice := domain.User{ID: 1, Username: "alice", Email: "alice@x.com"}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.db.EXPECT().EmailExists(ctx, "alice@x.com").Return(false, nil),
			f.db.EXPECT().CreateUser(ctx, "alice", "alice@x.com", gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _, hash string) (domain.ID, error) {
					if err := password.Compare(hash, "pw123"); err != nil {
						t.Errorf("stored hash does not match the password: %s", err)
					}
					return 1, nil
				}),
			f.db.EXPECT().GetUserByID(ctx, domain.ID(1)).Return(alice, nil),
		)

		u, err := f.service.Register(ctx, " alice ", "Alice@x.com", "pw123")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if u.ID != alice.ID {
			t.Errorf("expected user %s, got %s", alice.ID, u.ID)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().EmailExists(ctx, "alice@x.com").Return(true, nil)

		_, err := f.service.Register(ctx, "alice", "alice@x.com", "pw123")
		if !errors.Is(err, service.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().EmailExists(ctx, "alice@x.com").Return(false, nil)
		f.db.EXPECT().CreateUser(ctx, "alice", "alice@x.com", gomock.Any()).Return(domain.ID(0), db.ErrConflict)

		_, err := f.service.Register(ctx, "alice", "alice@x.com", "pw123")
		if !errors.Is(err, service.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Register(ctx, "", "alice", "pw123")
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestDeleteAccount(t *testing.T) {
	picture := domain.File{ID: 10, Key: "pic.png", UploaderId: 1}
	image := domain.File{ID: 11, Key: "img.png", UploaderId: 1}
	other := domain.File{ID: 12, Key: "other.png", UploaderId: 1}
	user := domain.User{ID: 1, Username: "alice", Picture: &picture}
	posts := []domain.Post{{ID: 5, AuthorID: 1, Images: []domain.File{image}}}

	t.Run("cascade", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.db.EXPECT().GetUserByID(ctx, domain.ID(1)).Return(user, nil),
			f.store.EXPECT().Delete(ctx, "pic.png").Return(nil),
			f.db.EXPECT().ListPostsByAuthor(ctx, domain.ID(1)).Return(posts, nil),
			// Already gone from the store.
			f.store.EXPECT().Delete(ctx, "img.png").Return(storage.ErrNotExist),
			f.db.EXPECT().DeleteCommentsByPost(ctx, domain.ID(5)).Return(int64(2), nil),
			f.db.EXPECT().DeletePost(ctx, domain.ID(5)).Return(nil),
			f.db.EXPECT().DeleteFile(ctx, domain.ID(11)).Return(nil),
			f.db.EXPECT().DeleteCommentsByAuthor(ctx, domain.ID(1)).Return(int64(1), nil),
			f.db.EXPECT().ListFilesByUploader(ctx, domain.ID(1)).Return([]domain.File{picture, other}, nil),
			f.db.EXPECT().DeleteFile(ctx, domain.ID(10)).Return(nil),
			f.store.EXPECT().Delete(ctx, "other.png").Return(nil),
			f.db.EXPECT().DeleteFile(ctx, domain.ID(12)).Return(nil),
			f.db.EXPECT().DeleteUser(ctx, domain.ID(1)).Return(nil),
		)

		if err := f.service.DeleteAccount(ctx, 1); err != nil {
			t.Errorf("unexpected error: %s", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetUserByID(ctx, domain.ID(1)).Return(domain.User{}, db.ErrNotFound)

		if err := f.service.DeleteAccount(ctx, 1); !errors.Is(err, service.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("storage failure stops the cascade", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetUserByID(ctx, domain.ID(1)).Return(user, nil)
		f.store.EXPECT().Delete(ctx, "pic.png").Return(storage.ErrInternal)

		err := f.service.DeleteAccount(ctx, 1)
		if !errors.Is(err, service.ErrUpstream) {
			t.Errorf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("database failure stops the cascade", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.db.EXPECT().GetUserByID(ctx, domain.ID(1)).Return(domain.User{ID: 1}, nil),
			f.db.EXPECT().ListPostsByAuthor(ctx, domain.ID(1)).Return(nil, nil),
			f.db.EXPECT().DeleteCommentsByAuthor(ctx, domain.ID(1)).Return(int64(0), db.ErrInternal),
		)

		err := f.service.DeleteAccount(ctx, 1)
		if !errors.Is(err, service.ErrUpstream) {
			t.Errorf("expected ErrUpstream, got %v", err)
		}
	})
}

package core

import (
	"context"
	"errors"
	"io"
	"net/url"
	"testing"

	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/internal/storage"
	"go.uber.org/mock/gomock"
)

func TestUpdateProfile(t *testing.T) {
	old := domain.File{ID: 3, Key: "old.png", UploaderId: 1}
	user := domain.User{ID: 1, Username: "alice", Picture: &old}

	t.Run("replaces picture", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetUserByID(ctx, domain.ID(1)).Return(user, nil).Times(2)
		f.store.EXPECT().Create(ctx, gomock.Any(), gomock.Any(), domain.MimePNG).
			DoAndReturn(func(_ context.Context, _ io.Reader, k, _ string) (*url.URL, error) {
				return url.Parse("http://localhost/f/" + k)
			})
		f.db.EXPECT().SaveFile(ctx, gomock.Any()).Return(domain.ID(4), nil)
		f.db.EXPECT().SetProfilePicture(ctx, domain.ID(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.ID, fileId *domain.ID) error {
				if fileId == nil || *fileId != 4 {
					t.Errorf("expected picture 4, got %v", fileId)
				}
				return nil
			})
		f.db.EXPECT().DeleteFile(ctx, domain.ID(3)).Return(nil)
		// The old asset cannot be deleted right away, so its removal is queued.
		f.store.EXPECT().Delete(ctx, "old.png").Return(storage.ErrInternal)
		f.queue.EXPECT().EnqueueAssetDeletion(ctx, "old.png").Return(nil)
		f.db.EXPECT().UpdateProfile(ctx, domain.ID(1), "alice", "hi").Return(nil)

		picture := &domain.Upload{Filename: "me.png", Content: png}
		if _, err := f.service.UpdateProfile(ctx, 1, "alice", " hi ", picture); err != nil {
			t.Errorf("unexpected error: %s", err)
		}
	})

	t.Run("without picture", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetUserByID(ctx, domain.ID(1)).Return(user, nil).Times(2)
		f.db.EXPECT().UpdateProfile(ctx, domain.ID(1), "alice b", "").Return(nil)

		if _, err := f.service.UpdateProfile(ctx, 1, "alice  b", "", nil); err != nil {
			t.Errorf("unexpected error: %s", err)
		}
	})

	t.Run("empty username", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.service.UpdateProfile(ctx, 1, " ", "", nil); !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	f.db.EXPECT().GetUserByID(ctx, domain.ID(1)).Return(domain.User{ID: 1}, nil)
	f.db.EXPECT().ListPostsByAuthor(ctx, domain.ID(1)).Return([]domain.Post{{ID: 2}, {ID: 1}}, nil)
	f.db.EXPECT().ListCommentIDsByAuthor(ctx, domain.ID(1)).Return([]domain.ID{7}, nil)

	p, err := f.service.GetProfile(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(p.Posts) != 2 || len(p.CommentIDs) != 1 {
		t.Errorf("unexpected profile %+v", p)
	}
}

func TestOpenFile(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetFileByKey(ctx, "x.png").Return(domain.File{}, db.ErrNotFound)

		if _, _, err := f.service.OpenFile(ctx, "x.png"); !errors.Is(err, service.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing asset", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetFileByKey(ctx, "x.png").Return(domain.File{Key: "x.png"}, nil)
		f.store.EXPECT().Open(ctx, "x.png").Return(nil, storage.ErrNotExist)

		if _, _, err := f.service.OpenFile(ctx, "x.png"); !errors.Is(err, service.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

package core

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/internal/storage"
	"go.uber.org/mock/gomock"
)

func TestCreatePost(t *testing.T) {
	upload := domain.Upload{Filename: "a.png", MimeType: "image/png", Content: png}

	t.Run("with image", func(t *testing.T) {
		f := newFixture(t)
		var key string
		f.store.EXPECT().Create(ctx, gomock.Any(), gomock.Any(), domain.MimePNG).
			DoAndReturn(func(_ context.Context, _ io.Reader, k, _ string) (*url.URL, error) {
				key = k
				return url.Parse("http://localhost/f/" + k)
			})
		f.db.EXPECT().CreatePost(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p domain.Post, files []domain.File) (domain.ID, error) {
				if p.Title != "Hello world" || p.Content != "World" || p.AuthorID != 1 {
					t.Errorf("unexpected post %+v", p)
				}
				if len(files) != 1 || files[0].Key != key || files[0].SizeBytes != int64(len(png)) {
					t.Errorf("unexpected files %+v", files)
				}
				return 9, nil
			})

		id, err := f.service.CreatePost(ctx, 1, " Hello   world", "World\n", []domain.Upload{upload})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if id != 9 {
			t.Errorf("expected id 9, got %s", id)
		}
	})

	t.Run("database failure removes uploaded assets", func(t *testing.T) {
		f := newFixture(t)
		var key string
		f.store.EXPECT().Create(ctx, gomock.Any(), gomock.Any(), domain.MimePNG).
			DoAndReturn(func(_ context.Context, _ io.Reader, k, _ string) (*url.URL, error) {
				key = k
				return url.Parse("http://localhost/f/" + k)
			})
		f.db.EXPECT().CreatePost(ctx, gomock.Any(), gomock.Any()).Return(domain.ID(0), db.ErrInternal)
		f.store.EXPECT().Delete(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, k string) error {
			if k != key {
				t.Errorf("expected %q to be deleted, got %q", key, k)
			}
			return nil
		})

		_, err := f.service.CreatePost(ctx, 1, "Hello", "World", []domain.Upload{upload})
		if !errors.Is(err, service.ErrUpstream) {
			t.Errorf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("failed cleanup is queued", func(t *testing.T) {
		f := newFixture(t)
		f.store.EXPECT().Create(ctx, gomock.Any(), gomock.Any(), domain.MimePNG).
			DoAndReturn(func(_ context.Context, _ io.Reader, k, _ string) (*url.URL, error) {
				return url.Parse("http://localhost/f/" + k)
			})
		f.db.EXPECT().CreatePost(ctx, gomock.Any(), gomock.Any()).Return(domain.ID(0), db.ErrInternal)
		f.store.EXPECT().Delete(ctx, gomock.Any()).Return(storage.ErrInternal)
		f.queue.EXPECT().EnqueueAssetDeletion(ctx, gomock.Any()).Return(nil)

		if _, err := f.service.CreatePost(ctx, 1, "Hello", "World", []domain.Upload{upload}); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("not an image", func(t *testing.T) {
		f := newFixture(t)
		bad := domain.Upload{Filename: "a.txt", MimeType: "image/png", Content: []byte("plain text")}

		_, err := f.service.CreatePost(ctx, 1, "Hello", "World", []domain.Upload{bad})
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("too many images", func(t *testing.T) {
		f := newFixture(t)
		uploads := make([]domain.Upload, 6)
		for i := range uploads {
			uploads[i] = upload
		}

		_, err := f.service.CreatePost(ctx, 1, "Hello", "World", uploads)
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("long title", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.CreatePost(ctx, 1, strings.Repeat("t", 201), "World", nil)
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestDeletePost(t *testing.T) {
	post := domain.Post{ID: 5, AuthorID: 1, Images: []domain.File{{ID: 11, Key: "img.png"}}}

	t.Run("author", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.db.EXPECT().GetPost(ctx, domain.ID(5)).Return(post, nil),
			f.store.EXPECT().Delete(ctx, "img.png").Return(nil),
			f.db.EXPECT().DeleteCommentsByPost(ctx, domain.ID(5)).Return(int64(0), nil),
			f.db.EXPECT().DeletePost(ctx, domain.ID(5)).Return(nil),
			f.db.EXPECT().DeleteFile(ctx, domain.ID(11)).Return(nil),
		)

		if err := f.service.DeletePost(ctx, 1, 5); err != nil {
			t.Errorf("unexpected error: %s", err)
		}
	})

	t.Run("other user", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetPost(ctx, domain.ID(5)).Return(post, nil)

		if err := f.service.DeletePost(ctx, 2, 5); !errors.Is(err, service.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestListPostsDefaultLimit(t *testing.T) {
	f := newFixture(t)
	f.db.EXPECT().ListPosts(ctx, DefaultPostLimit).Return(nil, nil)

	if _, err := f.service.ListPosts(ctx, 0); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

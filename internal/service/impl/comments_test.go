package core

import (
	"errors"
	"testing"

	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/service"
)

func TestEditComment(t *testing.T) {
	comment := domain.Comment{ID: 3, Content: "nice!", PostID: 1, AuthorID: 1}

	cases := []struct {
		name     string
		actor    domain.ID
		content  string
		setup    func(f fixture)
		post     domain.ID
		expected error
	}{
		{
			name:    "author",
			actor:   1,
			content: "nicer!",
			setup: func(f fixture) {
				f.db.EXPECT().GetComment(ctx, domain.ID(3)).Return(comment, nil)
				f.db.EXPECT().UpdateComment(ctx, domain.ID(3), "nicer!").Return(nil)
			},
			post: 1,
		},
		{
			name:    "other user",
			actor:   2,
			content: "hacked",
			setup: func(f fixture) {
				f.db.EXPECT().GetComment(ctx, domain.ID(3)).Return(comment, nil)
			},
			post:     1,
			expected: service.ErrForbidden,
		},
		{
			name:    "missing",
			actor:   1,
			content: "nicer!",
			setup: func(f fixture) {
				f.db.EXPECT().GetComment(ctx, domain.ID(3)).Return(domain.Comment{}, db.ErrNotFound)
			},
			expected: service.ErrNotFound,
		},
		{
			name:    "empty content",
			actor:   1,
			content: " ",
			setup: func(f fixture) {
				f.db.EXPECT().GetComment(ctx, domain.ID(3)).Return(comment, nil)
			},
			post:     1,
			expected: service.ErrInvalidInput,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			c.setup(f)

			post, err := f.service.EditComment(ctx, c.actor, 3, c.content)
			if !errors.Is(err, c.expected) {
				t.Errorf("expected %v, got %v", c.expected, err)
			}
			if post != c.post {
				t.Errorf("expected post %s, got %s", c.post, post)
			}
		})
	}
}

func TestDeleteComment(t *testing.T) {
	comment := domain.Comment{ID: 3, PostID: 5, AuthorID: 1}

	t.Run("author", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetComment(ctx, domain.ID(3)).Return(comment, nil)
		f.db.EXPECT().DeleteComment(ctx, domain.ID(3)).Return(nil)

		post, err := f.service.DeleteComment(ctx, 1, 3)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if post != 5 {
			t.Errorf("expected post 5, got %s", post)
		}
	})

	t.Run("other user", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetComment(ctx, domain.ID(3)).Return(comment, nil)

		post, err := f.service.DeleteComment(ctx, 2, 3)
		if !errors.Is(err, service.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
		if post != 5 {
			t.Errorf("the parent post must be returned with ErrForbidden, got %s", post)
		}
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetComment(ctx, domain.ID(99)).Return(domain.Comment{}, db.ErrNotFound)

		if _, err := f.service.DeleteComment(ctx, 1, 99); !errors.Is(err, service.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAddComment(t *testing.T) {
	t.Run("missing post", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetPost(ctx, domain.ID(7)).Return(domain.Post{}, db.ErrNotFound)

		if _, err := f.service.AddComment(ctx, 1, 7, "nice!"); !errors.Is(err, service.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetPost(ctx, domain.ID(7)).Return(domain.Post{ID: 7, AuthorID: 2}, nil)
		f.db.EXPECT().CreateComment(ctx, domain.Comment{Content: "nice!", PostID: 7, AuthorID: 1}).Return(domain.ID(4), nil)

		id, err := f.service.AddComment(ctx, 1, 7, "  nice! ")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if id != 4 {
			t.Errorf("expected id 4, got %s", id)
		}
	})
}

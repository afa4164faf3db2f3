package impl

import (
	"context"
	"time"

	"github.com/sidereusnuntius/goblog/internal/db/impl/queries"
	"github.com/sidereusnuntius/goblog/internal/domain"
)

func (d *dbImpl) CreateComment(ctx context.Context, comment domain.Comment) (domain.ID, error) {
	now := d.timestamp()
	id, err := d.queries.CreateComment(ctx, queries.CreateCommentParams{
		Content:  comment.Content,
		PostID:   int64(comment.PostID),
		AuthorID: int64(comment.AuthorID),
		Created:  now,
		Updated:  now,
	})
	if err != nil {
		return 0, d.HandleError(err)
	}
	return domain.ID(id), nil
}

func (d *dbImpl) GetComment(ctx context.Context, id domain.ID) (domain.Comment, error) {
	c, err := d.queries.GetComment(ctx, int64(id))
	if err != nil {
		return domain.Comment{}, d.HandleError(err)
	}

	return domain.Comment{
		ID:       domain.ID(c.ID),
		Content:  c.Content,
		PostID:   domain.ID(c.PostID),
		AuthorID: domain.ID(c.AuthorID),
		Created:  time.Unix(c.Created, 0),
		Updated:  time.Unix(c.Updated, 0),
	}, nil
}

func (d *dbImpl) ListCommentsByPost(ctx context.Context, postId domain.ID) ([]domain.Comment, error) {
	rows, err := d.queries.ListCommentsByPost(ctx, int64(postId))
	if err != nil {
		return nil, d.HandleError(err)
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, c := range rows {
		comments = append(comments, domain.Comment{
			ID:       domain.ID(c.ID),
			Content:  c.Content,
			PostID:   domain.ID(c.PostID),
			AuthorID: domain.ID(c.AuthorID),
			Author:   c.Author,
			Created:  time.Unix(c.Created, 0),
			Updated:  time.Unix(c.Updated, 0),
		})
	}
	return comments, nil
}

func (d *dbImpl) ListCommentIDsByAuthor(ctx context.Context, authorId domain.ID) ([]domain.ID, error) {
	rows, err := d.queries.ListCommentIDsByAuthor(ctx, int64(authorId))
	if err != nil {
		return nil, d.HandleError(err)
	}

	ids := make([]domain.ID, len(rows))
	for i, id := range rows {
		ids[i] = domain.ID(id)
	}
	return ids, nil
}

func (d *dbImpl) UpdateComment(ctx context.Context, id domain.ID, content string) error {
	return d.affected(d.queries.UpdateComment(ctx, queries.UpdateCommentParams{
		Content: content,
		Updated: d.timestamp(),
		ID:      int64(id),
	}))
}

func (d *dbImpl) DeleteComment(ctx context.Context, id domain.ID) error {
	return d.affected(d.queries.DeleteComment(ctx, int64(id)))
}

func (d *dbImpl) DeleteCommentsByPost(ctx context.Context, postId domain.ID) (n int64, err error) {
	n, err = d.queries.DeleteCommentsByPost(ctx, int64(postId))
	err = d.HandleError(err)
	return
}

func (d *dbImpl) DeleteCommentsByAuthor(ctx context.Context, authorId domain.ID) (n int64, err error) {
	n, err = d.queries.DeleteCommentsByAuthor(ctx, int64(authorId))
	err = d.HandleError(err)
	return
}

package impl

import (
	"context"
	"time"

	"github.com/sidereusnuntius/goblog/internal/db/impl/queries"
	"github.com/sidereusnuntius/goblog/internal/domain"
)

func (d *dbImpl) CreatePost(ctx context.Context, post domain.Post, images []domain.File) (id domain.ID, err error) {
	now := d.timestamp()
	err = d.WithTx(func(tx *queries.Queries) error {
		postId, err := tx.CreatePost(ctx, queries.CreatePostParams{
			Title:    post.Title,
			Content:  post.Content,
			AuthorID: int64(post.AuthorID),
			Created:  now,
			Updated:  now,
		})
		if err != nil {
			return d.HandleError(err)
		}

		for i, img := range images {
			fileId, err := insertFile(ctx, tx, img, now)
			if err != nil {
				return d.HandleError(err)
			}

			err = tx.AddPostImage(ctx, queries.AddPostImageParams{
				PostID:   postId,
				FileID:   fileId,
				Position: int64(i),
			})
			if err != nil {
				return d.HandleError(err)
			}
		}

		id = domain.ID(postId)
		return nil
	})
	return
}

func (d *dbImpl) GetPost(ctx context.Context, id domain.ID) (domain.Post, error) {
	row, err := d.queries.GetPost(ctx, int64(id))
	if err != nil {
		return domain.Post{}, d.HandleError(err)
	}

	images, err := d.queries.ListPostImages(ctx, row.ID)
	if err != nil {
		return domain.Post{}, d.HandleError(err)
	}

	files, err := toFiles(images)
	if err != nil {
		return domain.Post{}, err
	}

	return domain.Post{
		ID:       domain.ID(row.ID),
		Title:    row.Title,
		Content:  row.Content,
		AuthorID: domain.ID(row.AuthorID),
		Author:   row.Author,
		Images:   files,
		Created:  time.Unix(row.Created, 0),
		Updated:  time.Unix(row.Updated, 0),
	}, nil
}

func (d *dbImpl) ListPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	rows, err := d.queries.ListPosts(ctx, int64(limit))
	if err != nil {
		return nil, d.HandleError(err)
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, r := range rows {
		posts = append(posts, domain.Post{
			ID:       domain.ID(r.ID),
			Title:    r.Title,
			Content:  r.Content,
			AuthorID: domain.ID(r.AuthorID),
			Author:   r.Author,
			Created:  time.Unix(r.Created, 0),
			Updated:  time.Unix(r.Updated, 0),
		})
	}
	return posts, nil
}

// ListPostsByAuthor returns the author's posts, newest first, together with their images. The author name is not
// filled in.
func (d *dbImpl) ListPostsByAuthor(ctx context.Context, authorId domain.ID) ([]domain.Post, error) {
	rows, err := d.queries.ListPostsByAuthor(ctx, int64(authorId))
	if err != nil {
		return nil, d.HandleError(err)
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, r := range rows {
		images, err := d.queries.ListPostImages(ctx, r.ID)
		if err != nil {
			return nil, d.HandleError(err)
		}
		files, err := toFiles(images)
		if err != nil {
			return nil, err
		}

		posts = append(posts, domain.Post{
			ID:       domain.ID(r.ID),
			Title:    r.Title,
			Content:  r.Content,
			AuthorID: domain.ID(r.AuthorID),
			Images:   files,
			Created:  time.Unix(r.Created, 0),
			Updated:  time.Unix(r.Updated, 0),
		})
	}
	return posts, nil
}

func (d *dbImpl) DeletePost(ctx context.Context, id domain.ID) error {
	return d.affected(d.queries.DeletePost(ctx, int64(id)))
}

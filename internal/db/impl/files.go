package impl

import (
	"context"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/db/impl/queries"
	"github.com/sidereusnuntius/goblog/internal/domain"
)

func insertFile(ctx context.Context, q *queries.Queries, file domain.File, now int64) (int64, error) {
	return q.InsertFile(ctx, queries.InsertFileParams{
		StorageKey: file.Key,
		Url:        file.Url.String(),
		MimeType:   file.MimeType,
		SizeBytes:  file.SizeBytes,
		UploadedBy: int64(file.UploaderId),
		Created:    now,
	})
}

func (d *dbImpl) SaveFile(ctx context.Context, file domain.File) (domain.ID, error) {
	id, err := insertFile(ctx, d.queries, file, d.timestamp())
	if err != nil {
		return 0, d.HandleError(err)
	}
	return domain.ID(id), nil
}

func (d *dbImpl) GetFile(ctx context.Context, id domain.ID) (domain.File, error) {
	f, err := d.queries.GetFile(ctx, int64(id))
	if err != nil {
		return domain.File{}, d.HandleError(err)
	}
	return toFile(f)
}

func (d *dbImpl) GetFileByKey(ctx context.Context, key string) (domain.File, error) {
	f, err := d.queries.GetFileByKey(ctx, key)
	if err != nil {
		return domain.File{}, d.HandleError(err)
	}
	return toFile(f)
}

func (d *dbImpl) ListFilesByUploader(ctx context.Context, userId domain.ID) ([]domain.File, error) {
	rows, err := d.queries.ListFilesByUploader(ctx, int64(userId))
	if err != nil {
		return nil, d.HandleError(err)
	}
	return toFiles(rows)
}

func (d *dbImpl) DeleteFile(ctx context.Context, id domain.ID) error {
	return d.affected(d.queries.DeleteFile(ctx, int64(id)))
}

func toFile(f queries.File) (domain.File, error) {
	u, err := url.Parse(f.Url)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse stored url: " + f.Url)
		return domain.File{}, db.ErrInternal
	}

	return domain.File{
		ID:         domain.ID(f.ID),
		Key:        f.StorageKey,
		Url:        u,
		MimeType:   f.MimeType,
		SizeBytes:  f.SizeBytes,
		UploaderId: domain.ID(f.UploadedBy),
		Created:    time.Unix(f.Created, 0),
	}, nil
}

func toFiles(rows []queries.File) ([]domain.File, error) {
	files := make([]domain.File, 0, len(rows))
	for _, r := range rows {
		f, err := toFile(r)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

package db

import (
	"context"

	"github.com/sidereusnuntius/goblog/internal/domain"
)

type Files interface {
	SaveFile(ctx context.Context, file domain.File) (domain.ID, error)
	GetFile(ctx context.Context, id domain.ID) (domain.File, error)
	GetFileByKey(ctx context.Context, key string) (domain.File, error)
	ListFilesByUploader(ctx context.Context, userId domain.ID) ([]domain.File, error)
	DeleteFile(ctx context.Context, id domain.ID) error
}

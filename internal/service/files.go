package service

import (
	"context"

	"github.com/sidereusnuntius/goblog/internal/domain"
)

type FileService interface {
	// OpenFile returns the content of the file stored under key along with its record.
	OpenFile(ctx context.Context, key string) (content []byte, metadata domain.File, err error)
}

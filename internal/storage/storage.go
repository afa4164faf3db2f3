package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
)

var (
	ErrNotDir        = errors.New("given root is not a directory")
	ErrInternal      = errors.New("internal error")
	ErrCreate        = errors.New("failed to create file")
	ErrAlreadyExists = errors.New("filename already exists")
	ErrNotExist      = errors.New("file does not exist")
)

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mocks . Storage

// Storage holds uploaded assets outside of the database. Objects are addressed by a key, which is the reference
// kept in the file records, and are publicly reachable at the url returned by Create.
type Storage interface {
	Open(ctx context.Context, key string) ([]byte, error)
	Create(ctx context.Context, content io.Reader, key, mimeType string) (*url.URL, error)
	Delete(ctx context.Context, key string) error
}

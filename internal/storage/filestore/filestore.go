package filestore

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/storage"
)

// FileStore keeps assets in a local directory. They are served by the application itself under BaseUrl.
type FileStore struct {
	Root    string
	BaseUrl *url.URL
}

func New(root string, baseUrl *url.URL) (fs storage.Storage, err error) {
	fs = &FileStore{
		Root:    root,
		BaseUrl: baseUrl,
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Str("root", root).Msg("not a directory")
			err = storage.ErrNotDir
		}
		return
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}

	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up storage")
		err = storage.ErrInternal
	}

	return
}

// path resolves key inside the root, refusing keys that would escape it.
func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.Contains(key, "..") || strings.ContainsAny(key, `/\`) {
		return "", storage.ErrNotExist
	}
	return filepath.Join(s.Root, key), nil
}

func (s *FileStore) Open(ctx context.Context, key string) (content []byte, err error) {
	path, err := s.path(key)
	if err != nil {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = storage.ErrNotExist
		} else {
			log.Error().Err(err).Msg("failed to open file at path " + path)
			err = storage.ErrInternal
		}
		return
	}
	defer f.Close()

	content, err = io.ReadAll(f)
	if err != nil {
		log.Error().Err(err).Msg("failed to read file " + path)
		err = storage.ErrInternal
	}
	return
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotExist
		}
		log.Error().Err(err).Msg("file deletion error")
		return storage.ErrInternal
	}

	return nil
}

func (s *FileStore) Create(ctx context.Context, content io.Reader, key, mimeType string) (*url.URL, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, storage.ErrCreate
	}
	_, err = os.Stat(path)
	if err == nil {
		return nil, storage.ErrAlreadyExists
	}
	if !os.IsNotExist(err) {
		log.Error().Err(err).Msg("unknown filesystem error")
		return nil, storage.ErrInternal
	}

	file, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Msg("failed to create file with path " + path)
		return nil, storage.ErrCreate
	}
	defer file.Close()

	_, err = io.Copy(file, content)
	if err != nil {
		log.Error().Err(err).Msg("failed to copy from reader")
		_ = os.Remove(path)
		return nil, storage.ErrInternal
	}

	return s.BaseUrl.JoinPath(key), nil
}

package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/internal/storage"
	"github.com/sidereusnuntius/goblog/internal/utils"
	"github.com/sidereusnuntius/goblog/internal/validate"
)

func (s *AppService) OpenFile(ctx context.Context, key string) (content []byte, metadata domain.File, err error) {
	metadata, err = s.DB.GetFileByKey(ctx, key)
	if err != nil {
		err = upstream(err)
		return
	}

	content, err = s.storage.Open(ctx, key)
	if errors.Is(err, storage.ErrNotExist) {
		log.Warn().Str("key", key).Msg("file record without asset")
		err = service.ErrNotFound
	}
	err = upstream(err)
	return
}

// upload validates every upload and then puts them in the asset store, returning the records that should be saved
// for them. If any of them fails, the assets already created are removed.
func (s *AppService) upload(ctx context.Context, uploaderId domain.ID, uploads []domain.Upload) ([]domain.File, error) {
	types := make([]string, len(uploads))
	for i, u := range uploads {
		mimeType, err := validate.Image(u.Content)
		if err != nil {
			return nil, invalid(fmt.Errorf("%s: %w", u.Filename, err))
		}
		types[i] = mimeType
	}

	files := make([]domain.File, 0, len(uploads))
	for i, u := range uploads {
		key := utils.NewStorageKey(types[i])
		url, err := s.storage.Create(ctx, bytes.NewReader(u.Content), key, types[i])
		if err != nil {
			log.Error().Err(err).Str("filename", u.Filename).Msg("upload failed")
			s.discard(ctx, files)
			return nil, upstream(err)
		}

		files = append(files, domain.File{
			Key:        key,
			Url:        url,
			MimeType:   types[i],
			SizeBytes:  int64(len(u.Content)),
			UploaderId: uploaderId,
		})
	}

	return files, nil
}

// discard removes assets that have no record. Deletions that fail are queued to be retried.
func (s *AppService) discard(ctx context.Context, files []domain.File) {
	for _, f := range files {
		err := s.deleteAsset(ctx, f.Key)
		if err == nil {
			continue
		}

		log.Warn().Err(err).Str("key", f.Key).Msg("asset deletion failed; queuing retry")
		if err = s.queue.EnqueueAssetDeletion(ctx, f.Key); err != nil {
			log.Error().Err(err).Str("key", f.Key).Msg("failed to queue asset deletion; asset is orphaned")
		}
	}
}

// dropFile deletes a file that is no longer referenced, record first. Failures are logged but not returned.
func (s *AppService) dropFile(ctx context.Context, file domain.File) {
	if err := s.DB.DeleteFile(ctx, file.ID); err != nil && !errors.Is(err, db.ErrNotFound) {
		log.Error().Err(err).Str("file", file.ID.String()).Msg("failed to delete file record")
	}
	s.discard(ctx, []domain.File{file})
}

// deleteAsset removes the asset stored under key. An asset that is already gone counts as deleted.
func (s *AppService) deleteAsset(ctx context.Context, key string) error {
	err := s.storage.Delete(ctx, key)
	if err == nil || errors.Is(err, storage.ErrNotExist) {
		return nil
	}
	return upstream(err)
}

package queue

import (
	"context"
	"errors"

	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/storage"
)

//go:generate mockgen -destination=../mocks/mock_queue.go -package=mocks . Queue

// Queue defers work that must eventually happen but need not block a request.
type Queue interface {
	// EnqueueAssetDeletion schedules the removal of key from the asset store, retrying on failure.
	EnqueueAssetDeletion(ctx context.Context, key string) error
}

type queueImpl struct {
	queues *backlite.Client
	store  storage.Storage
}

// New registers the queues on blClient and starts its workers, which stop when ctx is cancelled.
func New(ctx context.Context, store storage.Storage, blClient *backlite.Client) Queue {
	q := &queueImpl{
		queues: blClient,
		store:  store,
	}
	q.queues.Register(backlite.NewQueue[AssetCleanupJob](q.cleanup()))
	q.queues.Start(ctx)
	log.Info().Msg("started task queue")
	return q
}

func (q *queueImpl) EnqueueAssetDeletion(ctx context.Context, key string) error {
	log.Debug().Str("key", key).Msg("enqueuing asset deletion")
	_, err := q.queues.Add(AssetCleanupJob{Key: key}).Ctx(ctx).Save()
	return err
}

func (q *queueImpl) cleanup() func(context.Context, AssetCleanupJob) error {
	return func(ctx context.Context, job AssetCleanupJob) error {
		return deleteAsset(ctx, q.store, job.Key)
	}
}

// deleteAsset removes key from store. An asset that is already gone counts as deleted.
func deleteAsset(ctx context.Context, store storage.Storage, key string) error {
	err := store.Delete(ctx, key)
	if errors.Is(err, storage.ErrNotExist) {
		log.Debug().Str("key", key).Msg("asset already deleted")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("asset deletion failed")
	}
	return err
}

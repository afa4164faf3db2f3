package queue

import (
	"time"

	"github.com/mikestefanello/backlite"
)

const (
	AssetCleanupQueue = "AssetCleanup"
)

// AssetCleanupJob removes an asset that is no longer referenced by any record from the asset store.
type AssetCleanupJob struct {
	Key string
}

func (j AssetCleanupJob) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        AssetCleanupQueue,
		MaxAttempts: 5,
		Backoff:     30 * time.Second,
		Timeout:     10 * time.Second,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: true,
			Data: &backlite.RetainData{
				OnlyFailed: true,
			},
		},
	}
}

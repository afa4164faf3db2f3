package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/sidereusnuntius/goblog/internal/mocks"
	"github.com/sidereusnuntius/goblog/internal/storage"
	"go.uber.org/mock/gomock"
)

func TestDeleteAsset(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name     string
		storeErr error
		expected error
	}{
		{"deleted", nil, nil},
		{"already gone", storage.ErrNotExist, nil},
		{"store failure", storage.ErrInternal, storage.ErrInternal},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStorage(ctrl)
			store.EXPECT().Delete(ctx, "a.png").Return(c.storeErr)

			err := deleteAsset(ctx, store, "a.png")
			if !errors.Is(err, c.expected) {
				t.Errorf("expected %v, got %v", c.expected, err)
			}
		})
	}
}

func TestAssetCleanupConfig(t *testing.T) {
	cfg := AssetCleanupJob{Key: "a.png"}.Config()
	if cfg.Name != AssetCleanupQueue {
		t.Errorf("unexpected queue name %q", cfg.Name)
	}
	if cfg.MaxAttempts < 2 {
		t.Errorf("cleanup must be retried, got %d attempts", cfg.MaxAttempts)
	}
}

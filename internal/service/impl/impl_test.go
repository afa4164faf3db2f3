package core

import (
	"context"
	"testing"

	"github.com/sidereusnuntius/goblog/internal/events"
	"github.com/sidereusnuntius/goblog/internal/mocks"
	"github.com/sidereusnuntius/goblog/internal/state"
	"go.uber.org/mock/gomock"
)

var ctx = context.Background()

// png is the smallest prefix recognized as a PNG image.
var png = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type fixture struct {
	service *AppService
	db      *mocks.MockDB
	store   *mocks.MockStorage
	queue   *mocks.MockQueue
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		db:    mocks.NewMockDB(ctrl),
		store: mocks.NewMockStorage(ctrl),
		queue: mocks.NewMockQueue(ctrl),
	}
	f.service = New(&state.State{
		DB:      f.db,
		Storage: f.store,
		Queue:   f.queue,
		Events:  events.Nop{},
	}).(*AppService)
	return f
}

func TestAuthorize(t *testing.T) {
	if err := authorize(1, 1); err != nil {
		t.Errorf("owner rejected: %s", err)
	}
	if err := authorize(2, 1); err == nil {
		t.Error("non owner accepted")
	}
}

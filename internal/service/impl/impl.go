package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/gruf/go-mutexes"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/config"
	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/domain"
	"github.com/sidereusnuntius/goblog/internal/events"
	"github.com/sidereusnuntius/goblog/internal/queue"
	"github.com/sidereusnuntius/goblog/internal/service"
	"github.com/sidereusnuntius/goblog/internal/state"
	"github.com/sidereusnuntius/goblog/internal/storage"
)

// DefaultPostLimit is the number of posts listed when the caller does not ask for a specific amount.
const DefaultPostLimit = 50

type AppService struct {
	Config  config.Configuration
	DB      db.DB
	storage storage.Storage
	queue   queue.Queue
	events  events.Publisher
	// locks serializes registrations of the same email and deletions of the same account.
	locks *mutexes.MutexMap
}

func New(state *state.State) service.Service {
	publisher := state.Events
	if publisher == nil {
		publisher = events.Nop{}
	}

	return &AppService{
		Config:  state.Config,
		DB:      state.DB,
		storage: state.Storage,
		queue:   state.Queue,
		events:  publisher,
		locks:   &mutexes.MutexMap{},
	}
}

// upstream marks failures of the database or the asset store as service.ErrUpstream. ErrNotFound is returned as is,
// since callers handle it as an ordinary outcome.
func upstream(err error) error {
	if err == nil || errors.Is(err, db.ErrNotFound) || errors.Is(err, service.ErrUpstream) {
		return err
	}
	return fmt.Errorf("%w: %w", service.ErrUpstream, err)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
}

// authorize fails with ErrForbidden unless the actor is the owner.
func authorize(actorId, ownerId domain.ID) error {
	if actorId != ownerId {
		return service.ErrForbidden
	}
	return nil
}

func (s *AppService) publish(ctx context.Context, eventType string, userId, resourceId domain.ID) {
	err := s.events.Publish(ctx, events.Event{
		Type:       eventType,
		UserID:     userId,
		ResourceID: resourceId,
		Time:       time.Now(),
	})
	if err != nil {
		log.Warn().Err(err).Str("type", eventType).Msg("failed to publish event")
	}
}

package impl

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/alexedwards/scs"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/db/impl/queries"
)

// SessionStore is an scs.Store keeping session data in the sessions table. Expiry times are stored as unix
// milliseconds.
type SessionStore struct {
	queries     *queries.Queries
	now         func() time.Time
	stopCleanup chan struct{}
}

var _ scs.Store = (*SessionStore)(nil)

// NewSessionStore returns a store over d. Expired sessions are removed every cleanupInterval; a zero interval
// disables the cleanup, and Find ignores expired sessions either way.
func NewSessionStore(d *sql.DB, cleanupInterval time.Duration) *SessionStore {
	s := &SessionStore{
		queries: queries.New(d),
		now:     time.Now,
	}
	if cleanupInterval > 0 {
		s.stopCleanup = make(chan struct{})
		go s.cleanup(cleanupInterval, s.stopCleanup)
	}
	return s
}

func (s *SessionStore) Find(token string) ([]byte, bool, error) {
	data, err := s.queries.FindSession(context.Background(), queries.FindSessionParams{
		Token:  token,
		Expiry: s.now().UnixMilli(),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to read session")
		return nil, false, err
	}
	return data, true, nil
}

func (s *SessionStore) Save(token string, b []byte, expiry time.Time) error {
	return s.queries.SaveSession(context.Background(), queries.SaveSessionParams{
		Token:  token,
		Data:   b,
		Expiry: expiry.UnixMilli(),
	})
}

// Delete removes the session; unknown tokens are not an error.
func (s *SessionStore) Delete(token string) error {
	return s.queries.DeleteSession(context.Background(), token)
}

// DeleteExpired removes every session whose expiry has passed and returns how many were removed.
func (s *SessionStore) DeleteExpired() (int64, error) {
	return s.queries.DeleteExpiredSessions(context.Background(), s.now().UnixMilli())
}

// StopCleanup stops the background cleanup, if it runs.
func (s *SessionStore) StopCleanup() {
	if s.stopCleanup != nil {
		close(s.stopCleanup)
		s.stopCleanup = nil
	}
}

func (s *SessionStore) cleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			n, err := s.DeleteExpired()
			if err != nil {
				log.Error().Err(err).Msg("failed to delete expired sessions")
				continue
			}
			if n > 0 {
				log.Debug().Int64("count", n).Msg("deleted expired sessions")
			}
		case <-stop:
			return
		}
	}
}

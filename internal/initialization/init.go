// The init package contains functions that setup required dependencies such as the SQLite database.
package initialization

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/alexedwards/scs"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mikestefanello/backlite"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/config"
	"github.com/sidereusnuntius/goblog/internal/queue"
	"github.com/sidereusnuntius/goblog/internal/storage"
	"github.com/sidereusnuntius/goblog/internal/storage/filestore"
	"github.com/sidereusnuntius/goblog/internal/storage/s3store"
	"github.com/sidereusnuntius/goblog/migrations"
)

// SetupDB applies all remaining migrations embedded in the binary. The connection is left open.
func SetupDB(db *sql.DB, dbname string) error {
	log.Info().Msg("starting migrations")
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Error().Err(err).Msg("failed to read embedded migrations")
		return err
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		log.Error().Err(err).Msg("failed to create sqlite3 migration driver")
		return err
	}

	mig, err := migrate.NewWithInstance("iofs", source, dbname, driver)
	if err != nil {
		log.Error().Err(err).Msg("failed to create Migrate object")
		return err
	}

	err = mig.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Msg("database schema is up to date")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to run migrations")
	}
	return err
}

// OpenDB opens a SQLite database. SQLite allows a single writer, so the pool is restricted to one connection.
func OpenDB(connString string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", connString)
	if err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to open database")
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		log.Error().Err(err).Str("connection string", connString).Msg("failed to connect to database")
		db.Close()
		return nil, err
	}
	return db, nil
}

// InitQueue opens the queue database and installs backlite's schema on it. Queues must still be registered and the
// client started.
func InitQueue(cfg *config.Configuration) (*backlite.Client, error) {
	d, err := OpenDB(cfg.QueueDbUrl)
	if err != nil {
		return nil, err
	}

	client, err := backlite.NewClient(backlite.ClientConfig{
		DB:              d,
		Logger:          queue.Logger{},
		ReleaseAfter:    10 * time.Minute,
		NumWorkers:      cfg.QueueWorkers,
		CleanupInterval: time.Hour,
	})
	if err != nil {
		return nil, err
	}

	if err = client.Install(); err != nil {
		return nil, err
	}
	return client, nil
}

// NewSessionManager returns a session manager keeping session data in store; only the token travels in the cookie.
func NewSessionManager(cfg *config.Configuration, store scs.Store) *scs.Manager {
	manager := scs.NewManager(store)
	manager.Name(cfg.SessionCookie)
	manager.Lifetime(cfg.SessionLifetime)
	if cfg.SessionIdle > 0 {
		manager.IdleTimeout(cfg.SessionIdle)
	}
	manager.HttpOnly(true)
	manager.Secure(cfg.SecureCookies)
	manager.Persist(true)
	manager.SameSite("Lax")
	return manager
}

// OpenStorage returns the asset store selected by the configuration.
func OpenStorage(ctx context.Context, cfg *config.Configuration) (storage.Storage, error) {
	switch cfg.Storage {
	case config.S3Storage:
		return s3store.New(ctx, s3store.Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			KeyID:     cfg.S3KeyID,
			Secret:    cfg.S3Secret,
			PublicUrl: cfg.S3PublicUrl,
		})
	default:
		return filestore.New(cfg.FsRoot, cfg.Url.JoinPath("f"))
	}
}

package impl

import (
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/goblog/internal/db"
	"github.com/sidereusnuntius/goblog/internal/db/impl/queries"
)

type dbImpl struct {
	db      *sql.DB
	queries *queries.Queries
	now     func() time.Time
}

func New(d *sql.DB) db.DB {
	return &dbImpl{
		db:      d,
		queries: queries.New(d),
		now:     time.Now,
	}
}

// HandleError takes a database error and returns a higher level error that hides the implementation details
// and can be more easily handled by the calling functions without doing type assertions, checking error codes and
// comparing to sentinel errors.
func (d *dbImpl) HandleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return db.ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return db.ErrConflict
	}

	log.Error().Err(err).Msg("database error")
	return errors.Join(db.ErrInternal, err)
}

// affected turns the row count of a statement targeting a single record into ErrNotFound when nothing was touched.
func (d *dbImpl) affected(n int64, err error) error {
	if err != nil {
		return d.HandleError(err)
	}
	if n == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (d *dbImpl) WithTx(f func(tx *queries.Queries) error) (err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return d.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = d.HandleError(tx.Commit())
		}
	}()

	err = f(d.queries.WithTx(tx))
	return
}

func (d *dbImpl) timestamp() int64 {
	return d.now().Unix()
}

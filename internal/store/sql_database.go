package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/jackc/pgerrcode"
)

const (
	maxQueryAttempts = 3
	retryBaseDelay   = 50 * time.Millisecond
)

// DB wraps a connection pool with the dialect-specific pieces the
// repositories need.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// Migrate applies the embedded schema of the connected dialect.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return nil
	}
	return db.migrate(db.DB)
}

// withRetry runs op again while it fails with a retryable error, up to
// maxQueryAttempts times. Only idempotent reads go through it.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 0; attempt < maxQueryAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.withRetry").
			Int("attempt", attempt+1).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBaseDelay * time.Duration(attempt+1)):
		}
	}
	return err
}

// execDelete runs a scoped DELETE and reports notFound when no row matched.
func execDelete(ctx context.Context, db *DB, query string, args []any, notFound error, funcName string) error {
	log := logger.FromContext(ctx)

	res, err := db.ExecContext(ctx, query, args...)
	if isNotFound(err) {
		return notFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

// isNotFound reports lookups that can only mean "no such row": no rows, or a
// malformed uuid that postgres refuses to cast.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.InvalidTextRepresentation
}

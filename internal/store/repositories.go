package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
)

// Repositories groups the server-side storage.
type Repositories struct {
	UserRepository         UserRepository
	NoteRepository         NoteRepository
	FolderRepository       FolderRepository
	StudySessionRepository StudySessionRepository
	AICache                AICache

	closers []func() error
}

// NewRepositories connects to PostgreSQL, applies migrations and, when an
// address is configured, connects the Redis AI cache.
func NewRepositories(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Repositories, error) {
	log.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	repos := &Repositories{
		UserRepository:         NewUserRepository(db, log),
		NoteRepository:         NewNoteRepository(db, log),
		FolderRepository:       NewFolderRepository(db, log),
		StudySessionRepository: NewStudySessionRepository(db, log),
		AICache:                NewNopAICache(),
		closers:                []func() error{db.Close},
	}

	if cfg.Cache.RedisAddress != "" {
		cache, closeCache, cacheErr := NewRedisAICache(ctx, cfg.Cache, log)
		if cacheErr != nil {
			_ = repos.Close()
			return nil, cacheErr
		}
		repos.AICache = cache
		repos.closers = append(repos.closers, closeCache)
	}

	return repos, nil
}

// Close releases the database pool and the cache connection.
func (r *Repositories) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	return errors.Join(errs...)
}

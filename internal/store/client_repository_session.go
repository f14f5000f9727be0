package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/models"
)

// the table holds at most one row
const localSessionRowID = 1

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession replaces the stored session.
func (r *localSessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	query, args, err := sq.Insert("local_session").
		Columns("id", "user_id", "login", "token").
		Values(localSessionRowID, session.UserID, session.Login, session.Token).
		Suffix("ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, login = excluded.login, token = excluded.token, created_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Int64("user_id", session.UserID).Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localSessionRepository) GetSession(ctx context.Context) (models.LocalSession, error) {
	query, args, err := sq.Select("user_id", "login", "token", "created_at").
		From("local_session").
		Where(sq.Eq{"id": localSessionRowID}).
		ToSql()
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.LocalSession
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&s.UserID, &s.Login, &s.Token, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

func (r *localSessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := sq.Delete("local_session").Where(sq.Eq{"id": localSessionRowID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

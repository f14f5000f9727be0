package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/jackc/pgerrcode"
)

type studySessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewStudySessionRepository(db *DB, logger *logger.Logger) StudySessionRepository {
	logger.Debug().Msg("creating study session repository")
	return &studySessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *studySessionRepository) CreateStudySession(ctx context.Context, session models.StudySession) (models.StudySession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateStudySessionQuery(session)
	if err != nil {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.StudySession
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.UserID,
		&s.NoteID,
		&s.Kind,
		&s.CardsStudied,
		&s.CorrectAnswers,
		&s.DurationSeconds,
		&s.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*studySessionRepository.CreateStudySession").Int64("user_id", session.UserID).Msg("failed to insert study session")
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation, pgerrcode.InvalidTextRepresentation:
			return models.StudySession{}, ErrNoteNotFound
		}
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return s, nil
}

// GetStudyStats aggregates every session of the user. Accuracy is the share
// of correct answers among studied cards, zero when nothing was studied.
func (r *studySessionRepository) GetStudyStats(ctx context.Context, userID int64) (models.StudyStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStudyStatsQuery(userID)
	if err != nil {
		return models.StudyStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stats models.StudyStats
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(
			&stats.TotalSessions,
			&stats.FlashcardRuns,
			&stats.QuizRuns,
			&stats.CardsStudied,
			&stats.CorrectAnswers,
			&stats.DurationSeconds,
		)
	})
	if err != nil {
		log.Err(err).Str("func", "*studySessionRepository.GetStudyStats").Int64("user_id", userID).Msg("failed to aggregate study sessions")
		return models.StudyStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if stats.CardsStudied > 0 {
		stats.Accuracy = float64(stats.CorrectAnswers) / float64(stats.CardsStudied)
	}

	return stats, nil
}

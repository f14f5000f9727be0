package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/validators"
	"github.com/MKhiriev/go-video-notes/models"
)

type studySessionService struct {
	repository store.StudySessionRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewStudySessionService(repository store.StudySessionRepository, validator validators.Validator, logger *logger.Logger) StudySessionService {
	return &studySessionService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *studySessionService) RecordSession(ctx context.Context, session models.StudySession) (models.StudySession, error) {
	if session.UserID == 0 {
		return models.StudySession{}, ErrInvalidDataProvided
	}
	if session.NoteID != nil && *session.NoteID == "" {
		session.NoteID = nil
	}
	if err := s.validator.Validate(ctx, session); err != nil {
		return models.StudySession{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	recorded, err := s.repository.CreateStudySession(ctx, session)
	if err != nil {
		return models.StudySession{}, fmt.Errorf("error recording study session: %w", err)
	}
	return recorded, nil
}

func (s *studySessionService) GetStats(ctx context.Context, userID int64) (models.StudyStats, error) {
	if userID == 0 {
		return models.StudyStats{}, ErrInvalidDataProvided
	}

	stats, err := s.repository.GetStudyStats(ctx, userID)
	if err != nil {
		return models.StudyStats{}, fmt.Errorf("error reading study stats: %w", err)
	}
	return stats, nil
}

package service

import (
	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/metrics"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/validators"
)

type Services struct {
	AuthService         AuthService
	NoteService         NoteService
	FolderService       FolderService
	StudySessionService StudySessionService
	AIService           AIService
	AppInfoService      AppInfoService
}

// NewServices wires the server services. generator may be nil when no AI
// upstream is configured.
func NewServices(repos *store.Repositories, generator adapter.TextGenerator, m *metrics.Metrics, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfo, err := NewAppInfoService(cfg.App, generator != nil, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, validator, cfg.App, logger),
		NoteService:         NewNoteValidationService(validator).Wrap(NewNoteService(repos.NoteRepository, logger)),
		FolderService:       NewFolderService(repos.FolderRepository, validator, logger),
		StudySessionService: NewStudySessionService(repos.StudySessionRepository, validator, logger),
		AIService:           NewAIService(generator, repos.AICache, validator, m, cfg.App, logger),
		AppInfoService:      appInfo,
	}, nil
}

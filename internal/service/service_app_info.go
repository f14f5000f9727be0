package service

import (
	"context"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
)

type appInfoService struct {
	version   string
	aiEnabled bool
}

// NewAppInfoService fixes the facts reported by GET /api/version for the
// lifetime of the process.
func NewAppInfoService(cfg config.App, aiEnabled bool, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().
		Str("version", cfg.Version).
		Bool("ai_enabled", aiEnabled).
		Msg("serving app info")

	return &appInfoService{version: cfg.Version, aiEnabled: aiEnabled}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}

func (s *appInfoService) AIEnabled(context.Context) bool {
	return s.aiEnabled
}

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/tui"
	"github.com/MKhiriev/go-video-notes/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}
	return &App{services: services, ui: ui, workers: workers, logger: logger}, nil
}

// Run restores the saved session or asks the user to log in, then runs the
// notes UI with the background refresh. Logging out returns to the login
// flow; quitting ends Run with a nil error.
func (a *App) Run(ctx context.Context) error {
	for {
		session, err := a.services.AuthService.RestoreSession(ctx)
		if err != nil {
			if !errors.Is(err, store.ErrLocalSessionNotFound) {
				return fmt.Errorf("restore session: %w", err)
			}
			session, err = a.ui.LoginFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}
		a.logger.Info().Int64("user_id", session.UserID).Str("login", session.Login).Msg("session started")

		logout, err := a.runSession(ctx, session)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.services.NoteService.SetUser(ctx, 0)
		a.logger.Info().Int64("user_id", session.UserID).Msg("logged out")
	}
}

func (a *App) runSession(ctx context.Context, session models.LocalSession) (bool, error) {
	a.services.SyncJob.Start(ctx, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	logout, err := a.ui.MainLoop(ctx, session)
	if err != nil {
		return false, fmt.Errorf("main loop: %w", err)
	}
	return logout, nil
}

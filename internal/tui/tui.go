// Package tui is the terminal client: login and registration, the note list
// with search and folder filters, the debounced note editor and the
// flashcard and quiz study modes.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: no client services")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow runs the menu, login and registration pages until a session is
// established or the user quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.LocalSession, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.LocalSession{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.LocalSession{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.LocalSession{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.session.UserID).Msg("logged in")
	return result.session, nil
}

// MainLoop runs the notes UI for session. It reports whether the user logged
// out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.LocalSession) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

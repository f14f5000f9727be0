package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel creates an account. Registration signs the user in as well,
// so it ends with the same [LoginResult] as the login page.
type RegisterModel struct {
	authForm

	ctx  context.Context
	auth service.ClientAuthService
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	m := &RegisterModel{
		authForm: newAuthForm("REGISTER", "Register", "Registering..."),
		ctx:      ctx,
		auth:     auth,
	}
	m.addField("Name", "name (optional)", false)
	m.addField("Login", "login", false)
	m.addField("Password", "password", true)
	m.addField("Repeat", "repeat password", true)
	return m
}

func (m *RegisterModel) Init() tea.Cmd { return textinput.Blink }

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.update(msg, m.submit)
}

func (m *RegisterModel) View() string { return m.view() }

// submit checks the form against the server's own rules first.
func (m *RegisterModel) submit() (string, tea.Cmd) {
	user := models.User{Name: m.trimmed(0), Login: m.trimmed(1), Password: m.value(2)}

	switch {
	case len(user.Login) < minLoginLength:
		return fmt.Sprintf("Login must be at least %d characters", minLoginLength), nil
	case len(user.Password) < minPasswordLength:
		return fmt.Sprintf("Password must be at least %d characters", minPasswordLength), nil
	case user.Password != m.value(3):
		return "Passwords do not match", nil
	}
	return "", authCmd(m.ctx, m.auth.Register, user)
}

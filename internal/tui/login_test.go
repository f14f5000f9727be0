package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeInto(m tea.Model, text string) tea.Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestRegisterModel_Validation(t *testing.T) {
	tests := []struct {
		name     string
		login    string
		password string
		repeat   string
		wantErr  string
	}{
		{name: "short login", login: "ab", password: "secret1", repeat: "secret1", wantErr: "Login must be at least 3 characters"},
		{name: "short password", login: "alice", password: "123", repeat: "123", wantErr: "Password must be at least 6 characters"},
		{name: "mismatch", login: "alice", password: "secret1", repeat: "secret2", wantErr: "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tea.Model(NewRegisterModel(context.Background(), &stubAuth{}))
			m, _ = m.Update(keyMsg("tab"))
			m = typeInto(m, tt.login)
			m, _ = m.Update(keyMsg("tab"))
			m = typeInto(m, tt.password)
			m, _ = m.Update(keyMsg("tab"))
			m = typeInto(m, tt.repeat)

			m, cmd := m.Update(keyMsg("enter"))

			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantErr, m.(*RegisterModel).errMsg)
		})
	}
}

func TestRegisterModel_Submit(t *testing.T) {
	var got models.User
	auth := &stubAuth{registerFn: func(_ context.Context, user models.User) (models.LocalSession, error) {
		got = user
		return models.LocalSession{UserID: 7, Login: user.Login}, nil
	}}

	m := tea.Model(NewRegisterModel(context.Background(), auth))
	m = typeInto(m, "Alice")
	m, _ = m.Update(keyMsg("tab"))
	m = typeInto(m, "alice")
	m, _ = m.Update(keyMsg("tab"))
	m = typeInto(m, "secret1")
	m, _ = m.Update(keyMsg("tab"))
	m = typeInto(m, "secret1")

	m, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.(*RegisterModel).submitting)

	result, ok := cmd().(LoginResult)
	require.True(t, ok)
	require.NoError(t, result.Err)
	assert.EqualValues(t, 7, result.Session.UserID)
	assert.Equal(t, models.User{Name: "Alice", Login: "alice", Password: "secret1"}, got)
}

func TestLoginModel_ShowsError(t *testing.T) {
	auth := &stubAuth{loginFn: func(context.Context, models.User) (models.LocalSession, error) {
		return models.LocalSession{}, service.ErrWrongPassword
	}}

	m := tea.Model(NewLoginModel(context.Background(), auth))
	m, _ = m.Update(LoginResult{Err: service.ErrWrongPassword})

	assert.Contains(t, m.View(), "Invalid login or password")
}

func TestRootModel_Navigation(t *testing.T) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(context.Background(), &stubAuth{}),
		pageRegister: NewRegisterModel(context.Background(), &stubAuth{}),
	}
	root := tea.Model(NewRootModel(pages, pageMenu, models.AppBuildInfo{}))

	root, cmd := root.Update(keyMsg("down"))
	assert.Nil(t, cmd)
	root, cmd = root.Update(keyMsg("enter"))
	require.NotNil(t, cmd)

	root, _ = root.Update(cmd())
	_, onRegister := root.(RootModel).current.(*RegisterModel)
	assert.True(t, onRegister)

	root, cmd = root.Update(LoginResult{Session: models.LocalSession{UserID: 3}})
	assert.NotNil(t, cmd)
	assert.EqualValues(t, 3, root.(RootModel).session.UserID)
}

func TestRootModel_BuildInfoOnMenuOnly(t *testing.T) {
	pages := map[string]tea.Model{
		pageMenu:  NewMenuModel(),
		pageLogin: NewLoginModel(context.Background(), &stubAuth{}),
	}
	root := tea.Model(NewRootModel(pages, pageMenu, models.AppBuildInfo{}))

	root, _ = root.Update(keyMsg("v"))
	assert.True(t, root.(RootModel).showBuildInfo)

	root, _ = root.Update(keyMsg("esc"))
	assert.False(t, root.(RootModel).showBuildInfo)
}

func TestMenuModel_WrapsSelection(t *testing.T) {
	m := tea.Model(NewMenuModel())

	m, _ = m.Update(keyMsg("up"))
	assert.Equal(t, 1, m.(*MenuModel).idx)
	m, _ = m.Update(keyMsg("down"))
	assert.Equal(t, 0, m.(*MenuModel).idx)

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())
}

func TestRenderAbout(t *testing.T) {
	view := renderAbout(models.AppBuildInfo{})

	assert.Contains(t, view, "ABOUT")
	assert.Contains(t, view, "N/A")
	assert.Equal(t, "N/A", orNA("  "))
	assert.Equal(t, "v1.2.0", orNA(" v1.2.0 "))
}

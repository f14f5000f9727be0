// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel signs an existing account in. The resulting [LoginResult] is
// picked up by [RootModel], which ends the flow on success.
type LoginModel struct {
	authForm

	ctx  context.Context
	auth service.ClientAuthService
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	m := &LoginModel{
		authForm: newAuthForm("LOG IN", "Log in", "Logging in..."),
		ctx:      ctx,
		auth:     auth,
	}
	m.addField("Login", "login", false)
	m.addField("Password", "password", true)
	return m
}

func (m *LoginModel) Init() tea.Cmd { return textinput.Blink }

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.update(msg, m.submit)
}

func (m *LoginModel) View() string { return m.view() }

func (m *LoginModel) submit() (string, tea.Cmd) {
	user := models.User{Login: m.trimmed(0), Password: m.value(1)}
	if user.Login == "" || user.Password == "" {
		return "Login and password are required", nil
	}
	return "", authCmd(m.ctx, m.auth.Login, user)
}

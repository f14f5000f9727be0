package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/tui"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── stubs ──

type stubAuth struct {
	service.ClientAuthService

	restore    []models.LocalSession
	restoreErr error
	logouts    int
}

func (s *stubAuth) RestoreSession(context.Context) (models.LocalSession, error) {
	if len(s.restore) == 0 {
		return models.LocalSession{}, store.ErrLocalSessionNotFound
	}
	next := s.restore[0]
	s.restore = s.restore[1:]
	return next, s.restoreErr
}

func (s *stubAuth) Logout(context.Context) error {
	s.logouts++
	return nil
}

type stubNotes struct {
	service.ClientNoteService
	users []int64
}

func (s *stubNotes) SetUser(_ context.Context, userID int64) { s.users = append(s.users, userID) }

type stubSyncJob struct {
	starts []time.Duration
	stops  int
}

func (s *stubSyncJob) Start(_ context.Context, interval time.Duration) {
	s.starts = append(s.starts, interval)
}

func (s *stubSyncJob) Stop() { s.stops++ }

type stubUI struct {
	logins   []models.LocalSession
	loginErr error
	logouts  []bool
	sessions []models.LocalSession
}

func (u *stubUI) LoginFlow(context.Context) (models.LocalSession, error) {
	if u.loginErr != nil {
		return models.LocalSession{}, u.loginErr
	}
	next := u.logins[0]
	u.logins = u.logins[1:]
	return next, nil
}

func (u *stubUI) MainLoop(_ context.Context, session models.LocalSession) (bool, error) {
	u.sessions = append(u.sessions, session)
	logout := u.logouts[0]
	u.logouts = u.logouts[1:]
	return logout, nil
}

type fixture struct {
	auth  *stubAuth
	notes *stubNotes
	sync  *stubSyncJob
	ui    *stubUI
	app   *App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{auth: &stubAuth{}, notes: &stubNotes{}, sync: &stubSyncJob{}, ui: &stubUI{}}
	services := &service.ClientServices{
		AuthService: f.auth,
		NoteService: f.notes,
		SyncJob:     f.sync,
	}

	app, err := NewApp(services, f.ui, config.ClientWorkers{SyncInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)
	f.app = app
	return f
}

// ── tests ──

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}

func TestRun_RestoredSessionSkipsLogin(t *testing.T) {
	f := newFixture(t)
	f.auth.restore = []models.LocalSession{{UserID: 5, Login: "alice"}}
	f.ui.logouts = []bool{false}

	require.NoError(t, f.app.Run(context.Background()))

	require.Len(t, f.ui.sessions, 1)
	assert.EqualValues(t, 5, f.ui.sessions[0].UserID)
	assert.Equal(t, []time.Duration{time.Minute}, f.sync.starts)
	assert.Equal(t, 1, f.sync.stops)
	assert.Zero(t, f.auth.logouts)
}

func TestRun_LoginWhenNoSession(t *testing.T) {
	f := newFixture(t)
	f.ui.logins = []models.LocalSession{{UserID: 9}}
	f.ui.logouts = []bool{false}

	require.NoError(t, f.app.Run(context.Background()))

	require.Len(t, f.ui.sessions, 1)
	assert.EqualValues(t, 9, f.ui.sessions[0].UserID)
}

func TestRun_LogoutReturnsToLogin(t *testing.T) {
	f := newFixture(t)
	f.auth.restore = []models.LocalSession{{UserID: 5}}
	f.ui.logins = []models.LocalSession{{UserID: 6}}
	f.ui.logouts = []bool{true, false}

	require.NoError(t, f.app.Run(context.Background()))

	require.Len(t, f.ui.sessions, 2)
	assert.EqualValues(t, 5, f.ui.sessions[0].UserID)
	assert.EqualValues(t, 6, f.ui.sessions[1].UserID)
	assert.Equal(t, 1, f.auth.logouts)
	assert.Equal(t, []int64{0}, f.notes.users, "cache is dropped on logout")
	assert.Equal(t, 2, f.sync.stops)
}

func TestRun_UserQuitsAtLogin(t *testing.T) {
	f := newFixture(t)
	f.ui.loginErr = tui.ErrUserQuit

	assert.NoError(t, f.app.Run(context.Background()))
	assert.Empty(t, f.ui.sessions)
	assert.Empty(t, f.sync.starts)
}

func TestRun_RestoreFailure(t *testing.T) {
	f := newFixture(t)
	f.auth.restore = []models.LocalSession{{}}
	f.auth.restoreErr = errors.New("disk is on fire")

	err := f.app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "restore session")
	assert.Empty(t, f.ui.sessions)
}

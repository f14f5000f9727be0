package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/app"
	"github.com/MKhiriev/go-video-notes/internal/mock"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestClientAuth(t *testing.T) (*clientAuthService, *mock.MockServerAdapter, *mock.MockLocalSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	sessions := mock.NewMockLocalSessionRepository(ctrl)

	svc := NewClientAuthService(sessions, srv).(*clientAuthService)
	svc.now = func() time.Time { return fixedNow }
	return svc, srv, sessions
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestClientAuth_RegisterPersistsSession(t *testing.T) {
	svc, srv, sessions := newTestClientAuth(t)
	user := models.User{Login: " alice ", Password: "secret1"}
	want := models.LocalSession{UserID: 7, Login: "alice", Token: "jwt", CreatedAt: fixedNow}

	gomock.InOrder(
		srv.EXPECT().Register(gomock.Any(), models.User{Login: "alice", Password: "secret1"}).
			Return(models.Token{SignedString: "jwt", UserID: 7}, nil),
		sessions.EXPECT().SaveSession(gomock.Any(), want).Return(nil),
	)

	got, err := svc.Register(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientAuth_RegisterLoginTaken(t *testing.T) {
	svc, srv, _ := newTestClientAuth(t)
	srv.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLoginAlreadyExists))

	_, err := svc.Register(context.Background(), models.User{Login: "alice", Password: "secret1"})

	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestClientAuth_LoginWrongPassword(t *testing.T) {
	svc, srv, _ := newTestClientAuth(t)
	srv.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidLoginPassword))

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "nope"})

	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuth_LoginRequiresCredentials(t *testing.T) {
	svc, _, _ := newTestClientAuth(t)

	_, err := svc.Login(context.Background(), models.User{Login: "  ", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuth_LoginSaveFails(t *testing.T) {
	svc, srv, sessions := newTestClientAuth(t)
	srv.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "jwt", UserID: 7}, nil)
	sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret1"})

	assert.ErrorContains(t, err, "disk full")
}

// ── RestoreSession / Logout ─────────────────────────────────────────────────

func TestClientAuth_RestoreSession(t *testing.T) {
	svc, srv, sessions := newTestClientAuth(t)
	saved := models.LocalSession{UserID: 7, Login: "alice", Token: "jwt"}

	sessions.EXPECT().GetSession(gomock.Any()).Return(saved, nil)
	srv.EXPECT().SetToken("jwt")

	got, err := svc.RestoreSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestClientAuth_RestoreSessionRecoversUserIDFromToken(t *testing.T) {
	svc, srv, sessions := newTestClientAuth(t)
	token, err := utils.GenerateJWTToken("test", 42, time.Hour, "key")
	require.NoError(t, err)

	sessions.EXPECT().GetSession(gomock.Any()).Return(models.LocalSession{Login: "bob", Token: token.SignedString}, nil)
	srv.EXPECT().SetToken(token.SignedString)

	got, err := svc.RestoreSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
}

func TestClientAuth_RestoreSessionNobodyLoggedIn(t *testing.T) {
	svc, _, sessions := newTestClientAuth(t)
	sessions.EXPECT().GetSession(gomock.Any()).Return(models.LocalSession{}, store.ErrLocalSessionNotFound)

	_, err := svc.RestoreSession(context.Background())

	assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
}

func TestClientAuth_Logout(t *testing.T) {
	svc, srv, sessions := newTestClientAuth(t)
	srv.EXPECT().SetToken("")
	sessions.EXPECT().DeleteSession(gomock.Any()).Return(store.ErrLocalSessionNotFound)

	assert.NoError(t, svc.Logout(context.Background()))
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time
}

// NewClientAuthService creates the client login flow over the server adapter
// and the local session store.
func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, now: time.Now}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.LocalSession, error) {
	user.Login = strings.TrimSpace(user.Login)

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.persist(ctx, user.Login, token)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.LocalSession, error) {
	user.Login = strings.TrimSpace(user.Login)
	if user.Login == "" || user.Password == "" {
		return models.LocalSession{}, ErrInvalidDataProvided
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.persist(ctx, user.Login, token)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.LocalSession, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return models.LocalSession{}, err
	}

	// a session saved by an older build may lack the user id
	if session.UserID == 0 {
		userID, err := utils.ParseUserIDFromJWT(session.Token)
		if err != nil {
			return models.LocalSession{}, errors.Join(ErrTokenIsExpiredOrInvalid, err)
		}
		session.UserID = userID
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		return fmt.Errorf("error deleting local session: %w", err)
	}
	return nil
}

func (a *clientAuthService) persist(ctx context.Context, login string, token models.Token) (models.LocalSession, error) {
	session := models.LocalSession{
		UserID:    token.UserID,
		Login:     login,
		Token:     token.SignedString,
		CreatedAt: a.now().UTC(),
	}

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		return models.LocalSession{}, fmt.Errorf("error saving local session: %w", err)
	}
	return session, nil
}

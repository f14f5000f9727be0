package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "client.db")
	storages, err := NewClientStorages(context.Background(), config.ClientStorage{Path: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func TestLocalSessionRepository_Lifecycle(t *testing.T) {
	repo := newTestClientStorages(t).SessionRepository
	ctx := context.Background()

	_, err := repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	require.NoError(t, repo.SaveSession(ctx, models.LocalSession{UserID: 7, Login: "alice", Token: "t1"}))
	s, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.UserID)
	assert.Equal(t, "t1", s.Token)
	assert.False(t, s.CreatedAt.IsZero())

	// second save replaces the single row
	require.NoError(t, repo.SaveSession(ctx, models.LocalSession{UserID: 8, Login: "bob", Token: "t2"}))
	s, err = repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", s.Login)

	require.NoError(t, repo.DeleteSession(ctx))
	_, err = repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestNewClientStorages_ReopensExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	first, err := NewClientStorages(ctx, config.ClientStorage{Path: path}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SessionRepository.SaveSession(ctx, models.LocalSession{UserID: 1, Login: "a", Token: "t"}))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, config.ClientStorage{Path: path}, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	s, err := second.SessionRepository.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", s.Login)
}

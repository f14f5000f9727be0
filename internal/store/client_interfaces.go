package store

import (
	"context"

	"github.com/MKhiriev/go-video-notes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the single login session of this device.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error

	// GetSession returns ErrLocalSessionNotFound when nobody is logged in.
	GetSession(ctx context.Context) (models.LocalSession, error)
	DeleteSession(ctx context.Context) error
}

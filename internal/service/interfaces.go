package service

import (
	"context"

	"github.com/MKhiriev/go-video-notes/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages notes of the authenticated owner. The owner is taken
// from note.UserID or from the explicit userID argument, never from the body
// of a foreign request.
type NoteService interface {
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, id string, userID int64) error

	// GetPublicNote reads a note marked public by any owner and counts the view.
	GetPublicNote(ctx context.Context, id string) (models.Note, error)
}

type FolderService interface {
	ListFolders(ctx context.Context, userID int64) ([]models.Folder, error)
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	DeleteFolder(ctx context.Context, id string, userID int64) error
}

type StudySessionService interface {
	RecordSession(ctx context.Context, session models.StudySession) (models.StudySession, error)
	GetStats(ctx context.Context, userID int64) (models.StudyStats, error)
}

// AIService is the server side of the AI gateway: one request, one generated text.
type AIService interface {
	Generate(ctx context.Context, req models.AIRequest) (models.AIResponse, error)
}

// AppInfoService describes the running server to clients.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// AIEnabled reports whether an AI upstream is configured; without one
	// every generation request fails with ErrAINotConfigured.
	AIEnabled(ctx context.Context) bool
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

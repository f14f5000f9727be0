// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP transports of the project:
//
//   - [ServerAdapter], used by the client to reach the notes server.
//   - [TextGenerator], used by the server to reach an OpenAI-compatible
//     chat-completions API.
//
// Both are built on resty. Non-2xx responses are mapped to the sentinel
// errors in errors.go so callers can use [errors.Is] without knowing the
// transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-video-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client's view of the notes server. Every call is a
// single request/response round trip.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error
	GetPublicNote(ctx context.Context, id string) (models.Note, error)

	ListFolders(ctx context.Context) ([]models.Folder, error)
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	DeleteFolder(ctx context.Context, id string) error

	// GenerateAI forwards a request to the AI gateway of the server.
	GenerateAI(ctx context.Context, req models.AIRequest) (models.AIResponse, error)

	RecordStudySession(ctx context.Context, session models.StudySession) (models.StudySession, error)
	GetStudyStats(ctx context.Context) (models.StudyStats, error)

	// GetVersion returns the build version reported by the server.
	GetVersion(ctx context.Context) (string, error)
}

// TextGenerator turns a prompt into generated text. It is stateless per call.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

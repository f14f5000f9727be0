// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-video-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository stores accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// NoteRepository stores notes scoped by owner. There is no version check:
// the last write wins.
type NoteRepository interface {
	// ListNotes returns the owner's notes, most recently updated first.
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)

	// CreateNote inserts a note and returns it with the generated id and instants.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote overwrites content, tags, timestamps, folder and visibility
	// and returns the stored row. updated_at strictly increases.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	DeleteNote(ctx context.Context, id string, userID int64) error

	// GetPublicNote reads a public note of any owner and counts the view.
	GetPublicNote(ctx context.Context, id string) (models.Note, error)
}

// FolderRepository stores folders scoped by owner.
type FolderRepository interface {
	// ListFolders returns the owner's folders ordered by name.
	ListFolders(ctx context.Context, userID int64) ([]models.Folder, error)
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	DeleteFolder(ctx context.Context, id string, userID int64) error
}

// StudySessionRepository is the append-only study analytics log.
type StudySessionRepository interface {
	CreateStudySession(ctx context.Context, session models.StudySession) (models.StudySession, error)
	GetStudyStats(ctx context.Context, userID int64) (models.StudyStats, error)
}

// AICache keeps generated AI responses by key.
type AICache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

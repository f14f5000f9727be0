package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-video-notes/models"
)

// Notifier receives transient user-facing messages. Implementations must not
// block the caller.
type Notifier interface {
	Notify(n models.Notification)
}

// ClientAuthService defines the client-side contract for registration, login
// and the persisted login session of this device.
type ClientAuthService interface {
	// Register creates an account on the server, stores the issued token in the
	// adapter and persists the session locally.
	Register(ctx context.Context, user models.User) (models.LocalSession, error)

	// Login authenticates against the server, stores the issued token in the
	// adapter and persists the session locally.
	Login(ctx context.Context, user models.User) (models.LocalSession, error)

	// RestoreSession loads the persisted session and hands its token to the
	// adapter. Returns store.ErrLocalSessionNotFound when nobody is logged in.
	RestoreSession(ctx context.Context) (models.LocalSession, error)

	// Logout forgets the token and deletes the persisted session.
	Logout(ctx context.Context) error
}

// ClientNoteService is the single source of truth for the notes and folders
// of the logged-in user in this client process. It keeps an in-memory cache
// reconciled with the server; every remote call is one request/response
// round trip and never runs under the cache lock.
//
// Failures are reported through the Notifier and returned; the cache is
// never cleared because of a failed read.
type ClientNoteService interface {
	// SetUser switches the identity: the cache, the active note and the
	// filters are cleared and, for a non-zero userID, notes and folders are
	// fetched again.
	SetUser(ctx context.Context, userID int64)

	// Refresh runs FetchNotes followed by FetchFolders.
	Refresh(ctx context.Context)

	// FetchNotes replaces the note cache wholesale, most recently updated
	// first.
	FetchNotes(ctx context.Context) error

	// FetchFolders replaces the folder cache wholesale, ordered by name.
	FetchFolders(ctx context.Context) error

	// CreateNote returns the cached note for videoID when one exists, without
	// a remote write. Otherwise the note is inserted remotely, prepended to
	// the cache and made active.
	CreateNote(ctx context.Context, videoID, title, url string) (models.Note, error)

	// UpdateNote overwrites content, tags, timestamps, folder and visibility
	// of note.ID. On success the cached copy is replaced and its UpdatedAt
	// strictly increases; on failure the cache is left as is.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// RemoveNote deletes the note; the active note is cleared when it was
	// the one removed.
	RemoveNote(ctx context.Context, id string) error

	// CreateFolder inserts a folder and keeps the cache sorted by name.
	CreateFolder(ctx context.Context, name, color string) (models.Folder, error)

	// DeleteFolder deletes the folder, clears the folder filter when it
	// matched and drops the folder reference of cached notes.
	DeleteFolder(ctx context.Context, id string) error

	// AddTimestamp inserts a timestamp into the active note, keeping the list
	// sorted by time, and persists it through UpdateNote.
	AddTimestamp(ctx context.Context, seconds float64, label string) (models.Timestamp, error)

	// RemoveTimestamp deletes a timestamp of the active note through UpdateNote.
	RemoveTimestamp(ctx context.Context, id string) error

	// FilteredNotes applies the folder filter and the search query to the cache.
	FilteredNotes() []models.Note

	Notes() []models.Note
	Folders() []models.Folder

	// CurrentNote returns the active note and whether one is set.
	CurrentNote() (models.Note, bool)
	SetCurrentNote(id string) bool

	SetSearchQuery(query string)
	SearchQuery() string
	SetSelectedFolder(id string)
	SelectedFolder() string

	// IsLoading is true until the first notes fetch resolves.
	IsLoading() bool
}

// ClientSyncJob periodically refreshes the note cache in the background.
type ClientSyncJob interface {
	// Start stops any previous run and launches a ticker that calls Refresh
	// every interval until ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and waits for it to exit.
	Stop()
}

// EditorSession is the editing buffer of one note at a time. Keystrokes are
// committed through ClientNoteService.UpdateNote after a debounce delay;
// tag and timestamp edits commit immediately carrying the buffer.
type EditorSession interface {
	// Open seeds the buffer from note. Switching to a different note cancels
	// a pending commit; reopening the same note only refreshes its metadata.
	Open(note models.Note)

	// Type replaces the buffer and re-arms the debounce timer.
	Type(content string)

	// Save commits now and confirms with a notification.
	Save(ctx context.Context) error

	// Flush commits a dirty buffer now without confirmation.
	Flush(ctx context.Context) error

	// Close cancels a pending commit and forgets the note.
	Close()

	AddTag(ctx context.Context, tag string) error
	RemoveTag(ctx context.Context, tag string) error
	AddTimestamp(ctx context.Context, seconds float64, label string) error
	RemoveTimestamp(ctx context.Context, id string) error

	// Note returns the open note with the buffer applied.
	Note() (models.Note, bool)
	Buffer() string
	Dirty() bool
}

// ClientStudyService is the client side of the AI gateway.
type ClientStudyService interface {
	// GenerateFlashcards asks for flashcards built from the note content and
	// timestamps. A note with neither yields ErrEmptyNoteContent.
	GenerateFlashcards(ctx context.Context, note models.Note) ([]models.Flashcard, error)

	// GenerateQuiz asks for multiple-choice questions; same preconditions as
	// GenerateFlashcards.
	GenerateQuiz(ctx context.Context, note models.Note) ([]models.QuizQuestion, error)

	// Explain explains a highlighted fragment, optionally with context.
	Explain(ctx context.Context, text, surrounding string) (string, error)

	// Summarize returns a bullet-point summary of the note.
	Summarize(ctx context.Context, note models.Note) (string, error)

	RecordSession(ctx context.Context, session models.StudySession) error
	Stats(ctx context.Context) (models.StudyStats, error)
}

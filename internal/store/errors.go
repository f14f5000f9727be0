package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by login matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when no note with the given id exists for
	// the owner (or, for public reads, the note is not public).
	ErrNoteNotFound = errors.New("note was not found")

	// ErrFolderNotFound is returned when no folder with the given id exists
	// for the owner.
	ErrFolderNotFound = errors.New("folder was not found")

	// ErrInvalidFolderReference is returned when a note points at a folder
	// that does not exist or belongs to another user.
	ErrInvalidFolderReference = errors.New("folder reference is invalid")

	// ErrLocalSessionNotFound is returned by the client session repository
	// when nobody is logged in on this device.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrCache is returned when the AI response cache cannot be reached.
	ErrCache = errors.New("cache error")
)

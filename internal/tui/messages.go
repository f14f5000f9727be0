package tui

import "github.com/MKhiriev/go-video-notes/models"

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult ends a login or registration attempt.
type LoginResult struct {
	Err     error
	Session models.LocalSession
}

type notificationMsg struct {
	notification models.Notification
}

// tickMsg re-renders the screen so background refreshes become visible.
type tickMsg struct{}

type notesRefreshedMsg struct{}

type noteCreatedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type noteSavedMsg struct {
	err error
}

// editorClosedMsg follows the flush of the editor buffer.
type editorClosedMsg struct {
	err error
}

// editorFlushedMsg follows leaving the editor; the note stays open.
type editorFlushedMsg struct {
	note models.Note
}

type noteUpdatedMsg struct {
	note models.Note
	err  error
}

type folderCreatedMsg struct {
	err error
}

type folderDeletedMsg struct {
	err error
}

type itemChangedMsg struct {
	err error
}

type studyLoadedMsg struct {
	err error
}

type studyRecordedMsg struct {
	err error
}

type aiTextMsg struct {
	title string
	text  string
	err   error
}

type statsLoadedMsg struct {
	stats models.StudyStats
	err   error
}

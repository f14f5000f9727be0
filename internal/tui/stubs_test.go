package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// ---- auth ----

type stubAuth struct {
	loginFn    func(ctx context.Context, user models.User) (models.LocalSession, error)
	registerFn func(ctx context.Context, user models.User) (models.LocalSession, error)
}

func (s *stubAuth) Register(ctx context.Context, user models.User) (models.LocalSession, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, user)
	}
	return models.LocalSession{UserID: 1, Login: user.Login}, nil
}

func (s *stubAuth) Login(ctx context.Context, user models.User) (models.LocalSession, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, user)
	}
	return models.LocalSession{UserID: 1, Login: user.Login}, nil
}

func (s *stubAuth) RestoreSession(context.Context) (models.LocalSession, error) {
	return models.LocalSession{}, nil
}

func (s *stubAuth) Logout(context.Context) error { return nil }

// ---- notes ----

// stubNotes keeps notes and folders in memory and filters like the real
// service does.
type stubNotes struct {
	notes   []models.Note
	folders []models.Folder

	current string
	query   string
	folder  string

	updated []models.Note
	removed []string
}

func (s *stubNotes) SetUser(context.Context, int64) {}
func (s *stubNotes) Refresh(context.Context) {}
func (s *stubNotes) FetchNotes(context.Context) error { return nil }
func (s *stubNotes) FetchFolders(context.Context) error { return nil }
func (s *stubNotes) Notes() []models.Note { return s.notes }
func (s *stubNotes) Folders() []models.Folder { return s.folders }
func (s *stubNotes) SetSearchQuery(query string) { s.query = query }
func (s *stubNotes) SearchQuery() string { return s.query }
func (s *stubNotes) SetSelectedFolder(id string) { s.folder = id }
func (s *stubNotes) SelectedFolder() string { return s.folder }
func (s *stubNotes) IsLoading() bool { return false }
func (s *stubNotes) RemoveTimestamp(context.Context, string) error { return nil }

func (s *stubNotes) CreateNote(_ context.Context, videoID, title, url string) (models.Note, error) {
	note := models.Note{ID: "n-" + videoID, VideoID: videoID, VideoTitle: title, VideoURL: url}
	s.notes = append([]models.Note{note}, s.notes...)
	s.current = note.ID
	return note, nil
}

func (s *stubNotes) UpdateNote(_ context.Context, note models.Note) (models.Note, error) {
	note.UpdatedAt = time.Now()
	for i := range s.notes {
		if s.notes[i].ID == note.ID {
			s.notes[i] = note
		}
	}
	s.updated = append(s.updated, note)
	return note, nil
}

func (s *stubNotes) RemoveNote(_ context.Context, id string) error {
	s.removed = append(s.removed, id)
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			break
		}
	}
	return nil
}

func (s *stubNotes) CreateFolder(_ context.Context, name, color string) (models.Folder, error) {
	folder := models.Folder{ID: "f-" + name, Name: name, Color: color}
	s.folders = append(s.folders, folder)
	return folder, nil
}

func (s *stubNotes) DeleteFolder(_ context.Context, id string) error {
	for i := range s.folders {
		if s.folders[i].ID == id {
			s.folders = append(s.folders[:i], s.folders[i+1:]...)
			break
		}
	}
	return nil
}

func (s *stubNotes) AddTimestamp(context.Context, float64, string) (models.Timestamp, error) {
	return models.Timestamp{}, nil
}

func (s *stubNotes) FilteredNotes() []models.Note {
	var out []models.Note
	for _, n := range s.notes {
		if s.folder != "" && !n.InFolder(s.folder) {
			continue
		}
		if s.query != "" && !strings.Contains(strings.ToLower(n.VideoTitle), strings.ToLower(s.query)) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (s *stubNotes) CurrentNote() (models.Note, bool) {
	for _, n := range s.notes {
		if n.ID == s.current {
			return n, true
		}
	}
	return models.Note{}, false
}

func (s *stubNotes) SetCurrentNote(id string) bool {
	s.current = id
	_, ok := s.CurrentNote()
	return ok
}

// ---- editor ----

type stubEditor struct {
	note   models.Note
	open   bool
	buffer string
	dirty  bool

	typed   []string
	saved   int
	flushed int
	tags    []string
	stamps  []models.Timestamp
}

func (e *stubEditor) Open(note models.Note) {
	if !e.open || e.note.ID != note.ID {
		e.buffer = note.Content
		e.dirty = false
	}
	e.note = note
	e.open = true
}

func (e *stubEditor) Type(content string) {
	e.buffer = content
	e.dirty = true
	e.typed = append(e.typed, content)
}

func (e *stubEditor) Save(context.Context) error {
	e.saved++
	e.dirty = false
	return nil
}

func (e *stubEditor) Flush(context.Context) error {
	if e.dirty {
		e.flushed++
	}
	e.dirty = false
	return nil
}

func (e *stubEditor) Close() {
	e.open = false
	e.dirty = false
}

func (e *stubEditor) AddTag(_ context.Context, tag string) error {
	e.tags = append(e.tags, tag)
	e.note.Tags = append(e.note.Tags, tag)
	return nil
}

func (e *stubEditor) RemoveTag(_ context.Context, tag string) error {
	var kept models.Tags
	for _, t := range e.note.Tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	e.note.Tags = kept
	return nil
}

func (e *stubEditor) AddTimestamp(_ context.Context, seconds float64, label string) error {
	ts := models.Timestamp{ID: label, Time: seconds, Label: label}
	e.stamps = append(e.stamps, ts)
	e.note.Timestamps = append(e.note.Timestamps, ts)
	return nil
}

func (e *stubEditor) RemoveTimestamp(_ context.Context, id string) error {
	var kept models.Timestamps
	for _, ts := range e.note.Timestamps {
		if ts.ID != id {
			kept = append(kept, ts)
		}
	}
	e.note.Timestamps = kept
	return nil
}

func (e *stubEditor) Note() (models.Note, bool) {
	if !e.open {
		return models.Note{}, false
	}
	note := e.note
	note.Content = e.buffer
	return note, true
}

func (e *stubEditor) Buffer() string { return e.buffer }
func (e *stubEditor) Dirty() bool { return e.dirty }

// ---- study ----

type stubStudy struct {
	cards     []models.Flashcard
	questions []models.QuizQuestion
	genErr    error
	answer    string

	recorded []models.StudySession
}

func (s *stubStudy) GenerateFlashcards(context.Context, models.Note) ([]models.Flashcard, error) {
	return s.cards, s.genErr
}

func (s *stubStudy) GenerateQuiz(context.Context, models.Note) ([]models.QuizQuestion, error) {
	return s.questions, s.genErr
}

func (s *stubStudy) Explain(_ context.Context, text, _ string) (string, error) {
	return s.answer + text, nil
}

func (s *stubStudy) Summarize(context.Context, models.Note) (string, error) {
	return s.answer, nil
}

func (s *stubStudy) RecordSession(_ context.Context, session models.StudySession) error {
	s.recorded = append(s.recorded, session)
	return nil
}

func (s *stubStudy) Stats(context.Context) (models.StudyStats, error) {
	return models.StudyStats{TotalSessions: 3, CardsStudied: 10, CorrectAnswers: 7, Accuracy: 0.7}, nil
}

// ---- helpers ----

type fixture struct {
	notes  *stubNotes
	editor *stubEditor
	study  *stubStudy
	model  mainLoopModel
}

func newFixture(t *testing.T, notes ...models.Note) *fixture {
	t.Helper()

	f := &fixture{
		notes:  &stubNotes{notes: notes},
		editor: &stubEditor{},
		study:  &stubStudy{},
	}
	services := &service.ClientServices{
		Notifier:     service.NewChannelNotifier(8),
		AuthService:  &stubAuth{},
		NoteService:  f.notes,
		Editor:       f.editor,
		StudyService: f.study,
	}
	f.model = newMainLoopModel(context.Background(), services, models.LocalSession{UserID: 1, Login: "alice"})
	return f
}

// press feeds key presses to the model and returns the command of the last one.
func (f *fixture) press(t *testing.T, keys ...string) tea.Cmd {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		cmd = f.send(t, keyMsg(k))
	}
	return cmd
}

func (f *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()

	updated, cmd := f.model.Update(msg)
	m, ok := updated.(mainLoopModel)
	require.True(t, ok)
	f.model = m
	return cmd
}

// run executes cmd and feeds its message back into the model.
func (f *fixture) run(t *testing.T, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	return f.send(t, cmd())
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(t *testing.T, f *fixture, text string) {
	t.Helper()
	for _, r := range text {
		f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func testNote(id, title string) models.Note {
	return models.Note{ID: id, VideoID: "vid" + id, VideoTitle: title, Content: "first\n\nsecond paragraph"}
}

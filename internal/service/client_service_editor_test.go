package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/validators"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// updateRecorder is a ClientNoteService that only implements UpdateNote.
type updateRecorder struct {
	ClientNoteService

	mu      sync.Mutex
	updates []models.Note
	err     error
}

func (u *updateRecorder) UpdateNote(_ context.Context, note models.Note) (models.Note, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.err != nil {
		return models.Note{}, u.err
	}
	u.updates = append(u.updates, cloneNote(note))
	note.UpdatedAt = note.UpdatedAt.Add(time.Second)
	return note, nil
}

func (u *updateRecorder) calls() []models.Note {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.Note(nil), u.updates...)
}

// manualClock captures scheduled functions so tests decide when they fire.
type manualClock struct {
	pending []*manualTimer
}

type manualTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
}

func (c *manualClock) schedule(d time.Duration, f func()) func() bool {
	t := &manualTimer{delay: d, f: f}
	c.pending = append(c.pending, t)
	return func() bool {
		was := !t.stopped
		t.stopped = true
		return was
	}
}

func (c *manualClock) active() int {
	n := 0
	for _, t := range c.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

// fireAll runs every timer, including cancelled ones, the way a timer that
// already started would.
func (c *manualClock) fireAll() {
	timers := c.pending
	c.pending = nil
	for _, t := range timers {
		t.f()
	}
}

func newTestEditor(t *testing.T) (*editorSession, *updateRecorder, *manualClock, *recordingNotifier) {
	t.Helper()
	notes := &updateRecorder{}
	notifier := &recordingNotifier{}
	clock := &manualClock{}

	e := NewEditorSession(notes, notifier, config.ClientEditor{DebounceDelay: 1500 * time.Millisecond}).(*editorSession)
	e.schedule = clock.schedule
	return e, notes, clock, notifier
}

var editorNote = models.Note{ID: "n1", VideoID: "abc", Content: "hello", Tags: models.Tags{"go"}}

// ── debounce ────────────────────────────────────────────────────────────────

func TestEditor_TypingCommitsOnceWithFinalBuffer(t *testing.T) {
	e, notes, clock, _ := newTestEditor(t)
	e.Open(editorNote)

	e.Type("hello w")
	e.Type("hello wo")
	e.Type("hello world")

	assert.Equal(t, 1, clock.active())
	assert.Equal(t, 1500*time.Millisecond, clock.pending[len(clock.pending)-1].delay)
	assert.True(t, e.Dirty())

	clock.fireAll()

	calls := notes.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "hello world", calls[0].Content)
	assert.False(t, e.Dirty())
}

func TestEditor_DefaultDelay(t *testing.T) {
	e := NewEditorSession(&updateRecorder{}, nil, config.ClientEditor{}).(*editorSession)
	assert.Equal(t, config.DefaultDebounceDelay, e.delay)
}

func TestEditor_TypingBackToOriginalIsClean(t *testing.T) {
	e, notes, clock, _ := newTestEditor(t)
	e.Open(editorNote)

	e.Type("hello!")
	e.Type("hello")
	clock.fireAll()

	assert.False(t, e.Dirty())
	assert.Empty(t, notes.calls())
}

func TestEditor_SwitchingNoteCancelsPendingCommit(t *testing.T) {
	e, notes, clock, _ := newTestEditor(t)
	e.Open(editorNote)
	e.Type("draft")

	e.Open(models.Note{ID: "n2", Content: "other"})
	clock.fireAll()

	assert.Empty(t, notes.calls())
	assert.Equal(t, "other", e.Buffer())
	assert.False(t, e.Dirty())
}

func TestEditor_ReopenSameNoteKeepsDirtyBuffer(t *testing.T) {
	e, notes, clock, _ := newTestEditor(t)
	e.Open(editorNote)
	e.Type("draft")

	refreshed := cloneNote(editorNote)
	refreshed.Tags = models.Tags{"go", "ml"}
	e.Open(refreshed)

	assert.Equal(t, "draft", e.Buffer())
	clock.fireAll()

	calls := notes.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "draft", calls[0].Content)
	assert.Equal(t, models.Tags{"go", "ml"}, calls[0].Tags)
}

func TestEditor_CloseCancelsPendingCommit(t *testing.T) {
	e, notes, clock, _ := newTestEditor(t)
	e.Open(editorNote)
	e.Type("draft")

	e.Close()
	clock.fireAll()

	assert.Empty(t, notes.calls())
	_, ok := e.Note()
	assert.False(t, ok)
}

func TestEditor_TypeWithoutOpenNoteIsIgnored(t *testing.T) {
	e, _, clock, _ := newTestEditor(t)

	e.Type("lost")

	assert.Empty(t, clock.pending)
	assert.Empty(t, e.Buffer())
}

// ── Save / Flush ────────────────────────────────────────────────────────────

func TestEditor_SaveCommitsAndNotifies(t *testing.T) {
	e, notes, clock, notifier := newTestEditor(t)
	e.Open(editorNote)
	e.Type("saved text")

	require.NoError(t, e.Save(context.Background()))
	clock.fireAll()

	require.Len(t, notes.calls(), 1)
	assert.Equal(t, []string{"Note saved"}, notifier.titles())
}

func TestEditor_SaveFailureKeepsDirty(t *testing.T) {
	e, notes, _, notifier := newTestEditor(t)
	notes.err = errNetwork
	e.Open(editorNote)
	e.Type("unsaved")

	err := e.Save(context.Background())

	assert.ErrorIs(t, err, errNetwork)
	assert.True(t, e.Dirty())
	assert.Empty(t, notifier.titles())
}

func TestEditor_SaveWithoutOpenNote(t *testing.T) {
	e, _, _, _ := newTestEditor(t)
	assert.ErrorIs(t, e.Save(context.Background()), ErrNoOpenNote)
}

func TestEditor_Flush(t *testing.T) {
	e, notes, clock, notifier := newTestEditor(t)
	e.Open(editorNote)

	require.NoError(t, e.Flush(context.Background()))
	assert.Empty(t, notes.calls(), "clean buffer is not committed")

	e.Type("pending")
	require.NoError(t, e.Flush(context.Background()))
	clock.fireAll()

	calls := notes.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "pending", calls[0].Content)
	assert.Empty(t, notifier.titles())
}

// ── tags ────────────────────────────────────────────────────────────────────

func TestEditor_AddTagCarriesBuffer(t *testing.T) {
	e, notes, clock, _ := newTestEditor(t)
	e.Open(editorNote)
	e.Type("typed before tagging")

	require.NoError(t, e.AddTag(context.Background(), "  ml "))
	clock.fireAll()

	calls := notes.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "typed before tagging", calls[0].Content)
	assert.Equal(t, models.Tags{"go", "ml"}, calls[0].Tags)
	assert.False(t, e.Dirty())
}

func TestEditor_AddTagRejectsEmptyAndDuplicate(t *testing.T) {
	e, notes, _, notifier := newTestEditor(t)
	e.Open(editorNote)

	assert.ErrorIs(t, e.AddTag(context.Background(), "   "), validators.ErrEmptyTag)
	assert.ErrorIs(t, e.AddTag(context.Background(), "go"), ErrDuplicateTag)
	require.NoError(t, e.AddTag(context.Background(), "Go"), "tags are case-sensitive")

	assert.Equal(t, []string{"Invalid tag", "Tag already exists"}, notifier.titles())
	assert.Len(t, notes.calls(), 1)
}

func TestEditor_RemoveTag(t *testing.T) {
	e, notes, _, _ := newTestEditor(t)
	e.Open(editorNote)

	require.NoError(t, e.RemoveTag(context.Background(), "absent"))
	assert.Empty(t, notes.calls())

	require.NoError(t, e.RemoveTag(context.Background(), "go"))
	calls := notes.calls()
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].Tags)
}

// ── timestamps ──────────────────────────────────────────────────────────────

func TestEditor_AddTimestampKeepsOrderAndDefaultsLabel(t *testing.T) {
	e, notes, _, _ := newTestEditor(t)
	note := cloneNote(editorNote)
	note.Timestamps = models.Timestamps{{ID: "t1", Time: 120, Label: "later"}}
	e.Open(note)

	require.NoError(t, e.AddTimestamp(context.Background(), 65, ""))

	calls := notes.calls()
	require.Len(t, calls, 1)
	ts := calls[0].Timestamps
	require.Len(t, ts, 2)
	assert.Equal(t, 65.0, ts[0].Time)
	assert.Equal(t, "Timestamp at 1:05", ts[0].Label)
	assert.NotEmpty(t, ts[0].ID)
	assert.Equal(t, "t1", ts[1].ID)
}

func TestEditor_RemoveTimestamp(t *testing.T) {
	e, notes, _, _ := newTestEditor(t)
	note := cloneNote(editorNote)
	note.Timestamps = models.Timestamps{{ID: "t1", Time: 5, Label: "intro"}}
	e.Open(note)

	require.NoError(t, e.RemoveTimestamp(context.Background(), "missing"))
	assert.Empty(t, notes.calls())

	require.NoError(t, e.RemoveTimestamp(context.Background(), "t1"))
	calls := notes.calls()
	require.Len(t, calls, 1)
	assert.Empty(t, calls[0].Timestamps)
}

func TestEditor_ImmediateCommitCancelsDebounce(t *testing.T) {
	e, notes, clock, _ := newTestEditor(t)
	e.Open(editorNote)
	e.Type("draft")

	require.NoError(t, e.AddTag(context.Background(), "ml"))
	// the superseded timer fires late and must not commit a second time
	clock.fireAll()

	assert.Len(t, notes.calls(), 1)
}

func TestEditor_NoteAppliesBuffer(t *testing.T) {
	e, _, _, _ := newTestEditor(t)
	e.Open(editorNote)
	e.Type("live")

	n, ok := e.Note()

	require.True(t, ok)
	assert.Equal(t, "live", n.Content)
	assert.Equal(t, "hello", editorNote.Content)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/internal/validators"
	"github.com/MKhiriev/go-video-notes/models"
)

// scheduler runs f once after d and returns a function that cancels the run.
type scheduler func(d time.Duration, f func()) (cancel func() bool)

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

type editorSession struct {
	notes    ClientNoteService
	notifier Notifier
	ids      *utils.IDGenerator
	delay    time.Duration
	schedule scheduler

	mu     sync.Mutex
	note   models.Note
	open   bool
	buffer string
	dirty  bool

	// generation identifies the armed timer; a timer firing with an older
	// generation was superseded and does nothing.
	generation uint64
	cancel     func() bool
}

// NewEditorSession creates an editor that commits through notes.
func NewEditorSession(notes ClientNoteService, notifier Notifier, cfg config.ClientEditor) EditorSession {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	delay := cfg.DebounceDelay
	if delay <= 0 {
		delay = config.DefaultDebounceDelay
	}

	return &editorSession{
		notes:    notes,
		notifier: notifier,
		ids:      utils.NewIDGenerator(),
		delay:    delay,
		schedule: afterFunc,
	}
}

func (e *editorSession) Open(note models.Note) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.open && e.note.ID == note.ID {
		e.note = cloneNote(note)
		if !e.dirty {
			e.buffer = note.Content
		}
		return
	}

	e.disarmLocked()
	e.note = cloneNote(note)
	e.buffer = note.Content
	e.dirty = false
	e.open = true
}

func (e *editorSession) Type(content string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.open {
		return
	}
	e.buffer = content
	e.dirty = content != e.note.Content

	e.disarmLocked()
	gen := e.generation
	e.cancel = e.schedule(e.delay, func() { e.fire(gen) })
}

func (e *editorSession) fire(gen uint64) {
	e.mu.Lock()
	if gen != e.generation || !e.open {
		e.mu.Unlock()
		return
	}
	e.cancel = nil
	if !e.dirty {
		e.mu.Unlock()
		return
	}
	note := e.pendingLocked()
	e.mu.Unlock()

	_ = e.commit(context.Background(), note)
}

func (e *editorSession) Save(ctx context.Context) error {
	e.mu.Lock()
	if !e.open {
		e.mu.Unlock()
		return ErrNoOpenNote
	}
	e.disarmLocked()
	note := e.pendingLocked()
	e.mu.Unlock()

	if err := e.commit(ctx, note); err != nil {
		return err
	}

	e.notifier.Notify(models.Notification{Level: models.NotificationInfo, Title: "Note saved"})
	return nil
}

func (e *editorSession) Flush(ctx context.Context) error {
	e.mu.Lock()
	e.disarmLocked()
	if !e.open || !e.dirty {
		e.mu.Unlock()
		return nil
	}
	note := e.pendingLocked()
	e.mu.Unlock()

	return e.commit(ctx, note)
}

func (e *editorSession) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.disarmLocked()
	e.note = models.Note{}
	e.buffer = ""
	e.dirty = false
	e.open = false
}

func (e *editorSession) AddTag(ctx context.Context, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		e.notifier.Notify(models.Notification{
			Level:       models.NotificationError,
			Title:       "Invalid tag",
			Description: validators.ErrEmptyTag.Error(),
		})
		return validators.ErrEmptyTag
	}

	err := e.commitNow(ctx, func(n *models.Note) error {
		if n.HasTag(tag) {
			return ErrDuplicateTag
		}
		n.Tags = append(n.Tags, tag)
		return nil
	})
	if errors.Is(err, ErrDuplicateTag) {
		e.notifier.Notify(models.Notification{
			Level:       models.NotificationWarning,
			Title:       "Tag already exists",
			Description: fmt.Sprintf("%q is already on this note.", tag),
		})
	}
	return err
}

func (e *editorSession) RemoveTag(ctx context.Context, tag string) error {
	return e.commitNow(ctx, func(n *models.Note) error {
		if !n.HasTag(tag) {
			return errNothingToCommit
		}
		n.Tags = slices.DeleteFunc(n.Tags, func(t string) bool { return t == tag })
		return nil
	})
}

func (e *editorSession) AddTimestamp(ctx context.Context, seconds float64, label string) error {
	if seconds < 0 {
		seconds = 0
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultTimestampLabel(seconds)
	}
	ts := models.Timestamp{ID: e.ids.NewID(), Time: seconds, Label: label}

	return e.commitNow(ctx, func(n *models.Note) error {
		n.Timestamps = append(n.Timestamps, ts).Sorted()
		return nil
	})
}

func (e *editorSession) RemoveTimestamp(ctx context.Context, id string) error {
	return e.commitNow(ctx, func(n *models.Note) error {
		before := len(n.Timestamps)
		n.Timestamps = slices.DeleteFunc(n.Timestamps, func(ts models.Timestamp) bool { return ts.ID == id })
		if len(n.Timestamps) == before {
			return errNothingToCommit
		}
		return nil
	})
}

func (e *editorSession) Note() (models.Note, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.open {
		return models.Note{}, false
	}
	return e.pendingLocked(), true
}

func (e *editorSession) Buffer() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buffer
}

func (e *editorSession) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// errNothingToCommit makes commitNow return nil without a remote call.
var errNothingToCommit = errors.New("nothing to commit")

// commitNow applies edit to the open note carrying the buffer and commits it
// without waiting for the debounce.
func (e *editorSession) commitNow(ctx context.Context, edit func(n *models.Note) error) error {
	e.mu.Lock()
	if !e.open {
		e.mu.Unlock()
		return ErrNoOpenNote
	}
	note := e.pendingLocked()
	if err := edit(&note); err != nil {
		e.mu.Unlock()
		if errors.Is(err, errNothingToCommit) {
			return nil
		}
		return err
	}
	e.disarmLocked()
	e.mu.Unlock()

	return e.commit(ctx, note)
}

func (e *editorSession) commit(ctx context.Context, note models.Note) error {
	updated, err := e.notes.UpdateNote(ctx, note)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open || e.note.ID != updated.ID {
		return nil
	}
	e.note = cloneNote(updated)
	// keystrokes typed while the request was in flight stay dirty
	e.dirty = e.buffer != e.note.Content
	return nil
}

// pendingLocked returns the open note with the buffer applied.
func (e *editorSession) pendingLocked() models.Note {
	n := cloneNote(e.note)
	n.Content = e.buffer
	return n
}

// disarmLocked cancels the armed timer, if any.
func (e *editorSession) disarmLocked() {
	e.generation++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

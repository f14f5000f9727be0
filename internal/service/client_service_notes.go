// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/internal/validators"
	"github.com/MKhiriev/go-video-notes/internal/youtube"
	"github.com/MKhiriev/go-video-notes/models"
)

type clientNoteService struct {
	serverAdapter adapter.ServerAdapter
	notifier      Notifier
	ids           *utils.IDGenerator

	mu             sync.RWMutex
	userID         int64
	notes          []models.Note
	folders        []models.Folder
	currentID      string
	query          string
	selectedFolder string
	loading        bool

	// epoch changes with every identity switch; responses started under an
	// older epoch are dropped.
	epoch uint64
}

// NewClientNoteService creates the note cache. It is empty and not loading
// until SetUser is called with a logged-in user.
func NewClientNoteService(serverAdapter adapter.ServerAdapter, notifier Notifier) ClientNoteService {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &clientNoteService{
		serverAdapter: serverAdapter,
		notifier:      notifier,
		ids:           utils.NewIDGenerator(),
	}
}

func (s *clientNoteService) SetUser(ctx context.Context, userID int64) {
	s.mu.Lock()
	if s.userID == userID && userID != 0 {
		s.mu.Unlock()
		return
	}
	s.epoch++
	s.userID = userID
	s.notes = nil
	s.folders = nil
	s.currentID = ""
	s.query = ""
	s.selectedFolder = ""
	s.loading = userID != 0
	s.mu.Unlock()

	if userID != 0 {
		s.Refresh(ctx)
	}
}

func (s *clientNoteService) Refresh(ctx context.Context) {
	_ = s.FetchNotes(ctx)
	_ = s.FetchFolders(ctx)
}

func (s *clientNoteService) FetchNotes(ctx context.Context) error {
	epoch, ok := s.session()
	if !ok {
		return ErrNotLoggedIn
	}

	notes, err := s.serverAdapter.ListNotes(ctx, models.NoteFilter{})

	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		return nil
	}
	s.loading = false
	if err == nil {
		s.notes = make([]models.Note, 0, len(notes))
		for _, n := range notes {
			s.notes = append(s.notes, normalizeNote(n))
		}
	}
	s.mu.Unlock()

	if err != nil {
		s.notifyError("Error loading notes", err)
		return fmt.Errorf("error loading notes: %w", err)
	}
	return nil
}

func (s *clientNoteService) FetchFolders(ctx context.Context) error {
	epoch, ok := s.session()
	if !ok {
		return ErrNotLoggedIn
	}

	folders, err := s.serverAdapter.ListFolders(ctx)
	if err != nil {
		s.notifyError("Error loading folders", err)
		return fmt.Errorf("error loading folders: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return nil
	}
	s.folders = make([]models.Folder, 0, len(folders))
	for _, f := range folders {
		if f.Color == "" {
			f.Color = models.DefaultFolderColor
		}
		s.folders = append(s.folders, f)
	}
	// server order depends on the database collation
	slices.SortStableFunc(s.folders, compareFolderNames)
	return nil
}

func (s *clientNoteService) CreateNote(ctx context.Context, videoID, title, url string) (models.Note, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		s.notifyError("Error creating note", validators.ErrEmptyVideoID)
		return models.Note{}, validators.ErrEmptyVideoID
	}

	s.mu.Lock()
	for _, n := range s.notes {
		if n.VideoID == videoID {
			s.currentID = n.ID
			s.mu.Unlock()
			return cloneNote(n), nil
		}
	}
	epoch := s.epoch
	note := models.Note{
		VideoID:    videoID,
		VideoTitle: title,
		VideoURL:   url,
		Tags:       models.Tags{},
		Timestamps: models.Timestamps{},
	}
	if s.selectedFolder != "" {
		folderID := s.selectedFolder
		note.FolderID = &folderID
	}
	s.mu.Unlock()

	if note.VideoURL == "" {
		note.VideoURL = youtube.VideoURL(videoID)
	}

	created, err := s.serverAdapter.CreateNote(ctx, note)
	if err != nil {
		s.notifyError("Error creating note", err)
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}
	created = normalizeNote(created)

	s.mu.Lock()
	if epoch == s.epoch {
		s.notes = slices.Insert(s.notes, 0, created)
		s.currentID = created.ID
	}
	s.mu.Unlock()

	return cloneNote(created), nil
}

func (s *clientNoteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if note.ID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}
	note.Timestamps = note.Timestamps.Sorted()
	if note.Tags == nil {
		note.Tags = models.Tags{}
	}

	s.mu.RLock()
	epoch := s.epoch
	s.mu.RUnlock()

	updated, err := s.serverAdapter.UpdateNote(ctx, note)
	if err != nil {
		s.notifier.Notify(models.Notification{
			Level:       models.NotificationError,
			Title:       "Error saving note",
			Description: "Changes may not be saved.",
		})
		return models.Note{}, fmt.Errorf("error saving note: %w", err)
	}
	updated = normalizeNote(updated)

	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return cloneNote(updated), nil
	}

	if i := s.indexOfNote(note.ID); i >= 0 {
		prev := s.notes[i].UpdatedAt
		if !updated.UpdatedAt.After(prev) {
			updated.UpdatedAt = prev.Add(time.Microsecond)
		}
		s.notes[i] = updated
	}
	return cloneNote(updated), nil
}

func (s *clientNoteService) RemoveNote(ctx context.Context, id string) error {
	if err := s.serverAdapter.DeleteNote(ctx, id); err != nil {
		s.notifyError("Error deleting note", err)
		return fmt.Errorf("error deleting note: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOfNote(id); i >= 0 {
		s.notes = slices.Delete(s.notes, i, i+1)
	}
	if s.currentID == id {
		s.currentID = ""
	}
	return nil
}

func (s *clientNoteService) CreateFolder(ctx context.Context, name, color string) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		s.notifyError("Error creating folder", validators.ErrEmptyFolderName)
		return models.Folder{}, validators.ErrEmptyFolderName
	}
	if color == "" {
		color = models.DefaultFolderColor
	}

	created, err := s.serverAdapter.CreateFolder(ctx, models.Folder{Name: name, Color: color})
	if err != nil {
		s.notifyError("Error creating folder", err)
		return models.Folder{}, fmt.Errorf("error creating folder: %w", err)
	}
	if created.Color == "" {
		created.Color = models.DefaultFolderColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	at := sort.Search(len(s.folders), func(i int) bool {
		return compareFolderNames(s.folders[i], created) > 0
	})
	s.folders = slices.Insert(s.folders, at, created)

	return created, nil
}

func (s *clientNoteService) DeleteFolder(ctx context.Context, id string) error {
	if err := s.serverAdapter.DeleteFolder(ctx, id); err != nil {
		s.notifyError("Error deleting folder", err)
		return fmt.Errorf("error deleting folder: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = slices.DeleteFunc(s.folders, func(f models.Folder) bool { return f.ID == id })
	if s.selectedFolder == id {
		s.selectedFolder = ""
	}
	for i := range s.notes {
		if s.notes[i].InFolder(id) {
			s.notes[i].FolderID = nil
		}
	}
	return nil
}

func (s *clientNoteService) AddTimestamp(ctx context.Context, seconds float64, label string) (models.Timestamp, error) {
	note, ok := s.CurrentNote()
	if !ok {
		s.notifyWarning("No note selected", ErrNoActiveNote)
		return models.Timestamp{}, ErrNoActiveNote
	}

	ts := s.newTimestamp(seconds, label)
	note.Timestamps = append(note.Timestamps, ts).Sorted()

	if _, err := s.UpdateNote(ctx, note); err != nil {
		return models.Timestamp{}, err
	}
	return ts, nil
}

func (s *clientNoteService) RemoveTimestamp(ctx context.Context, id string) error {
	note, ok := s.CurrentNote()
	if !ok {
		s.notifyWarning("No note selected", ErrNoActiveNote)
		return ErrNoActiveNote
	}

	kept := slices.DeleteFunc(note.Timestamps, func(ts models.Timestamp) bool { return ts.ID == id })
	if len(kept) == len(note.Timestamps) {
		return nil
	}
	note.Timestamps = kept

	_, err := s.UpdateNote(ctx, note)
	return err
}

func (s *clientNoteService) FilteredNotes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(s.query))
	out := make([]models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if s.selectedFolder != "" && !n.InFolder(s.selectedFolder) {
			continue
		}
		if query != "" && !matchesQuery(n, query) {
			continue
		}
		out = append(out, cloneNote(n))
	}
	return out
}

func (s *clientNoteService) Notes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = cloneNote(n)
	}
	return out
}

func (s *clientNoteService) Folders() []models.Folder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.folders)
}

func (s *clientNoteService) CurrentNote() (models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOfNote(s.currentID); i >= 0 && s.currentID != "" {
		return cloneNote(s.notes[i]), true
	}
	return models.Note{}, false
}

func (s *clientNoteService) SetCurrentNote(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.currentID = ""
		return true
	}
	if s.indexOfNote(id) < 0 {
		return false
	}
	s.currentID = id
	return true
}

func (s *clientNoteService) SetSearchQuery(query string) {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
}

func (s *clientNoteService) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

func (s *clientNoteService) SetSelectedFolder(id string) {
	s.mu.Lock()
	s.selectedFolder = id
	s.mu.Unlock()
}

func (s *clientNoteService) SelectedFolder() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedFolder
}

func (s *clientNoteService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// session returns the current epoch and whether a user is logged in. Without
// a user the loading flag is settled so the UI does not spin forever.
func (s *clientNoteService) session() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userID == 0 {
		s.loading = false
		return s.epoch, false
	}
	return s.epoch, true
}

// indexOfNote must be called with s.mu held.
func (s *clientNoteService) indexOfNote(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
}

func (s *clientNoteService) newTimestamp(seconds float64, label string) models.Timestamp {
	if seconds < 0 {
		seconds = 0
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultTimestampLabel(seconds)
	}
	return models.Timestamp{ID: s.ids.NewID(), Time: seconds, Label: label}
}

func (s *clientNoteService) notifyError(title string, err error) {
	s.notifier.Notify(models.Notification{Level: models.NotificationError, Title: title, Description: err.Error()})
}

func (s *clientNoteService) notifyWarning(title string, err error) {
	s.notifier.Notify(models.Notification{Level: models.NotificationWarning, Title: title, Description: err.Error()})
}

// DefaultTimestampLabel is the label of a timestamp added without one.
func DefaultTimestampLabel(seconds float64) string {
	return "Timestamp at " + youtube.FormatOffset(seconds)
}

// compareFolderNames orders folders alphabetically ignoring case.
func compareFolderNames(a, b models.Folder) int {
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

func matchesQuery(n models.Note, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(n.VideoTitle), lowerQuery) ||
		strings.Contains(strings.ToLower(n.Content), lowerQuery) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

func normalizeNote(n models.Note) models.Note {
	if n.ThumbnailURL == "" && n.VideoID != "" {
		n.ThumbnailURL = youtube.ThumbnailURL(n.VideoID)
	}
	if n.Tags == nil {
		n.Tags = models.Tags{}
	}
	n.Timestamps = n.Timestamps.Sorted()
	return n
}

func cloneNote(n models.Note) models.Note {
	n.Tags = slices.Clone(n.Tags)
	n.Timestamps = slices.Clone(n.Timestamps)
	if n.FolderID != nil {
		folderID := *n.FolderID
		n.FolderID = &folderID
	}
	return n
}

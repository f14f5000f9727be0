package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/youtube"
	"github.com/MKhiriev/go-video-notes/models"
)

// defaultNotesLimit caps a listing when the caller gives no limit.
const defaultNotesLimit = 500

type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *noteService) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	if filter.Limit == 0 || filter.Limit > defaultNotesLimit {
		filter.Limit = defaultNotesLimit
	}

	notes, err := s.noteRepository.ListNotes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	for i := range notes {
		withThumbnail(&notes[i])
	}
	return notes, nil
}

func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	note.Timestamps = note.Timestamps.Sorted()
	if note.Tags == nil {
		note.Tags = models.Tags{}
	}
	if note.VideoURL == "" {
		note.VideoURL = youtube.VideoURL(note.VideoID)
	}

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("error creating note: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "noteService.CreateNote").
		Str("note_id", created.ID).
		Msg("note created")

	withThumbnail(&created)
	return created, nil
}

func (s *noteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	note.Timestamps = note.Timestamps.Sorted()
	if note.Tags == nil {
		note.Tags = models.Tags{}
	}

	updated, err := s.noteRepository.UpdateNote(ctx, note)
	if err != nil {
		return models.Note{}, fmt.Errorf("error updating note: %w", err)
	}

	withThumbnail(&updated)
	return updated, nil
}

func (s *noteService) DeleteNote(ctx context.Context, id string, userID int64) error {
	if err := s.noteRepository.DeleteNote(ctx, id, userID); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	return nil
}

func (s *noteService) GetPublicNote(ctx context.Context, id string) (models.Note, error) {
	note, err := s.noteRepository.GetPublicNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("error reading public note: %w", err)
	}

	// the owner stays private on the public view
	note.UserID = 0
	withThumbnail(&note)
	return note, nil
}

func withThumbnail(note *models.Note) {
	if note.VideoID != "" {
		note.ThumbnailURL = youtube.ThumbnailURL(note.VideoID)
	}
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/validators"
	"github.com/MKhiriev/go-video-notes/models"
)

// NoteValidationService checks requests before they reach the wrapped
// NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService(validator validators.Validator) NoteServiceWrapper {
	return &NoteValidationService{validator: validator}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	if filter.UserID == 0 {
		return nil, ErrInvalidDataProvided
	}
	filter.Query = strings.TrimSpace(filter.Query)

	return v.inner.ListNotes(ctx, filter)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if note.UserID == 0 {
		return models.Note{}, ErrInvalidDataProvided
	}
	if strings.TrimSpace(note.VideoID) == "" {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyVideoID)
	}
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if note.UserID == 0 || note.ID == "" {
		return models.Note{}, ErrInvalidDataProvided
	}
	if err := v.validator.Validate(ctx, note, "Content", "Tags"); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateNote(ctx, note)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, id string, userID int64) error {
	if id == "" || userID == 0 {
		return ErrInvalidDataProvided
	}
	return v.inner.DeleteNote(ctx, id, userID)
}

func (v *NoteValidationService) GetPublicNote(ctx context.Context, id string) (models.Note, error) {
	if id == "" {
		return models.Note{}, ErrInvalidDataProvided
	}
	return v.inner.GetPublicNote(ctx, id)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/jackc/pgerrcode"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// Every statement is scoped by owner except the public read.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var n models.Note
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.VideoID,
		&n.VideoTitle,
		&n.VideoURL,
		&n.Content,
		&n.Tags,
		&n.Timestamps,
		&n.FolderID,
		&n.IsPublic,
		&n.Views,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	return n, err
}

// ListNotes retrieves the owner's notes matching filter, most recently
// updated first. Transient failures are retried.
func (r *noteRepository) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Int64("user_id", filter.UserID).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var notes []models.Note
	err = r.withRetry(ctx, func() error {
		var queryErr error
		notes, queryErr = r.queryNotes(ctx, query, args)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Int64("user_id", filter.UserID).Msg("failed to list notes")
		return nil, err
	}

	return notes, nil
}

func (r *noteRepository) queryNotes(ctx context.Context, query string, args []any) ([]models.Note, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := r.checkFolderOwner(ctx, note); err != nil {
		return models.Note{}, err
	}

	query, args, err := buildCreateNoteQuery(note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Str("video_id", note.VideoID).
			Msg("failed to insert note")
		return models.Note{}, classifyNoteWriteError(err)
	}

	return created, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := r.checkFolderOwner(ctx, note); err != nil {
		return models.Note{}, err
	}

	query, args, err := buildUpdateNoteQuery(note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if isNotFound(err) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.UpdateNote").
			Int64("user_id", note.UserID).
			Str("note_id", note.ID).
			Msg("failed to update note")
		return models.Note{}, classifyNoteWriteError(err)
	}

	return updated, nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, id string, userID int64) error {
	query, args, err := buildDeleteNoteQuery(id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execDelete(ctx, r.DB, query, args, ErrNoteNotFound, "*noteRepository.DeleteNote")
}

func (r *noteRepository) GetPublicNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPublicNoteQuery(id)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if isNotFound(err) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetPublicNote").Str("note_id", id).Msg("failed to read public note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// checkFolderOwner rejects a note filed into a folder of another user. A
// folder deleted after the check is caught by the foreign key, and its owner
// never changes.
func (r *noteRepository) checkFolderOwner(ctx context.Context, note models.Note) error {
	if note.FolderID == nil {
		return nil
	}

	query, args, err := buildFolderOwnedQuery(*note.FolderID, note.UserID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var owned bool
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&owned); err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrInvalidFolderReference
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "*noteRepository.checkFolderOwner").
			Int64("user_id", note.UserID).
			Str("folder_id", *note.FolderID).
			Msg("failed to check folder owner")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if !owned {
		return ErrInvalidFolderReference
	}
	return nil
}

func classifyNoteWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation, pgerrcode.InvalidTextRepresentation:
		return ErrInvalidFolderReference
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoteNotFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

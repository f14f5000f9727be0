package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/models"
)

type folderRepository struct {
	*DB
	logger *logger.Logger
}

func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{
		DB:     db,
		logger: logger,
	}
}

func scanFolder(row rowScanner) (models.Folder, error) {
	var f models.Folder
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Color, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *folderRepository) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFoldersQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var folders []models.Folder
	err = r.withRetry(ctx, func() error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		folders = make([]models.Folder, 0, 16)
		for rows.Next() {
			folder, scanErr := scanFolder(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			folders = append(folders, folder)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.ListFolders").Int64("user_id", userID).Msg("failed to list folders")
		return nil, err
	}

	return folders, nil
}

func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateFolderQuery(folder)
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanFolder(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.CreateFolder").Int64("user_id", folder.UserID).Msg("failed to insert folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// DeleteFolder removes the folder. Notes inside keep existing with a NULL
// folder reference.
func (r *folderRepository) DeleteFolder(ctx context.Context, id string, userID int64) error {
	query, args, err := buildDeleteFolderQuery(id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return execDelete(ctx, r.DB, query, args, ErrFolderNotFound, "*folderRepository.DeleteFolder")
}

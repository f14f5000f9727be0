package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/validators"
	"github.com/MKhiriev/go-video-notes/models"
)

type folderService struct {
	folderRepository store.FolderRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewFolderService(folderRepository store.FolderRepository, validator validators.Validator, logger *logger.Logger) FolderService {
	return &folderService{
		folderRepository: folderRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (s *folderService) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	if userID == 0 {
		return nil, ErrInvalidDataProvided
	}

	folders, err := s.folderRepository.ListFolders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing folders: %w", err)
	}
	return folders, nil
}

// CreateFolder trims the name and applies the default color.
func (s *folderService) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	if folder.UserID == 0 {
		return models.Folder{}, ErrInvalidDataProvided
	}

	folder.Name = strings.TrimSpace(folder.Name)
	if folder.Name == "" {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyFolderName)
	}
	if folder.Color == "" {
		folder.Color = models.DefaultFolderColor
	}
	if err := s.validator.Validate(ctx, folder); err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.folderRepository.CreateFolder(ctx, folder)
	if err != nil {
		return models.Folder{}, fmt.Errorf("error creating folder: %w", err)
	}
	return created, nil
}

// DeleteFolder removes the folder; notes inside it lose the reference.
func (s *folderService) DeleteFolder(ctx context.Context, id string, userID int64) error {
	if id == "" || userID == 0 {
		return ErrInvalidDataProvided
	}

	if err := s.folderRepository.DeleteFolder(ctx, id, userID); err != nil {
		return fmt.Errorf("error deleting folder: %w", err)
	}
	return nil
}

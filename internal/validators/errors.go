package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrValidation      = errors.New("validation failed")

	ErrEmptyVideoID      = errors.New("video id is required")
	ErrEmptyFolderName   = errors.New("folder name is required")
	ErrEmptyTag          = errors.New("tag cannot be empty")
	ErrNoHighlightedText = errors.New("no highlighted text")
)

package models

import "time"

// DefaultFolderColor is applied to folders created or stored without a color.
const DefaultFolderColor = "#6366f1"

// Folder groups notes of a single user.
type Folder struct {
	ID     string `json:"id"`
	UserID int64  `json:"user_id,omitempty"`

	// Name is displayed sorted alphabetically and is not unique.
	Name string `json:"name" validate:"trimmed_required,max=100"`

	// Color is a hex string such as "#6366f1".
	Color string `json:"color" validate:"omitempty,hexcolor"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with Folder.
func (f Folder) TableName() string {
	return "folders"
}

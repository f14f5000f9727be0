// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Note is a user's annotation of a single video.
type Note struct {
	// ID is the server-generated identifier (uuid).
	ID string `json:"id"`

	// UserID is the owner of the note.
	UserID int64 `json:"user_id,omitempty"`

	// VideoID is the external video identifier. Notes are reused per VideoID.
	// The limit matches the notes.video_id column.
	VideoID string `json:"video_id" validate:"required,max=32"`

	// VideoTitle is the title shown in lists and used by search.
	VideoTitle string `json:"video_title" validate:"max=500"`

	// VideoURL is the original link the note was created from.
	VideoURL string `json:"video_url"`

	// ThumbnailURL is derived from VideoID and never persisted.
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// Content is the free-text body of the note.
	Content string `json:"content" validate:"max=100000"`

	// Timestamps are kept sorted ascending by Time.
	Timestamps Timestamps `json:"timestamps"`

	// Tags is a set of exact, case-sensitive labels.
	Tags Tags `json:"tags" validate:"dive,trimmed_required,max=50"`

	// FolderID references an optional folder; nil means "no folder".
	FolderID *string `json:"folder_id"`

	IsPublic bool  `json:"is_public"`
	Views    int64 `json:"views"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with Note.
func (n Note) TableName() string {
	return "notes"
}

// InFolder reports whether the note belongs to the folder with the given id.
func (n Note) InFolder(folderID string) bool {
	return n.FolderID != nil && *n.FolderID == folderID
}

// HasTag reports whether tag is already attached to the note.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Timestamp marks a moment of the video inside a note.
type Timestamp struct {
	ID string `json:"id"`

	// Time is the offset from the start of the video in seconds.
	Time float64 `json:"time"`

	Label string `json:"label"`
	Note  string `json:"note,omitempty"`
}

// Timestamps is persisted as a JSON array.
type Timestamps []Timestamp

// Sorted returns a copy of ts ordered ascending by Time. Equal offsets keep
// their insertion order.
func (ts Timestamps) Sorted() Timestamps {
	out := make(Timestamps, len(ts))
	copy(out, ts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// Value implements [driver.Valuer].
func (ts Timestamps) Value() (driver.Value, error) {
	if ts == nil {
		return "[]", nil
	}
	b, err := json.Marshal(ts)
	if err != nil {
		return nil, fmt.Errorf("error marshaling timestamps: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (ts *Timestamps) Scan(src any) error {
	raw, err := jsonSource(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*ts = Timestamps{}
		return nil
	}
	return json.Unmarshal(raw, ts)
}

// Tags is persisted as a JSON array.
type Tags []string

// Value implements [driver.Valuer].
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("error marshaling tags: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (t *Tags) Scan(src any) error {
	raw, err := jsonSource(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		*t = Tags{}
		return nil
	}
	return json.Unmarshal(raw, t)
}

var errUnsupportedJSONSource = errors.New("unsupported source type for json column")

func jsonSource(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnsupportedJSONSource, src)
	}
}

// NoteFilter narrows a remote note listing.
type NoteFilter struct {
	UserID   int64
	FolderID string
	Query    string
	Limit    uint64
}

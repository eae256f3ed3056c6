package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is a single note owned by exactly one user. All persistence-level
// queries filter by UserID so that one user can never see or modify notes
// of another.
type Note struct {
	// ID is the unique identifier of the note.
	ID uuid.UUID `json:"id"`

	// UserID is the identifier of the owning user.
	UserID uuid.UUID `json:"user_id"`

	// Title is a short caption of the note.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate describes a partial note update. A nil field leaves the
// corresponding column untouched.
type NoteUpdate struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the update carries no fields at all.
func (n NoteUpdate) IsEmpty() bool {
	return n.Title == nil && n.Content == nil
}

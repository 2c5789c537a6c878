package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is a title+text record owned by exactly one user. The owner is set
// at creation from the authenticated session and is never reassignable.
type Note struct {
	// NoteID is the server-assigned unique identifier of the note.
	NoteID uuid.UUID `json:"id"`

	// UserID is the identifier of the owning user.
	UserID int64 `json:"userId"`

	// Title is required and non-empty.
	Title string `json:"title"`

	// Text is the optional note body. Updates replace it wholesale:
	// omitting it on update clears the stored value.
	Text string `json:"text"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every successful update.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

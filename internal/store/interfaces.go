package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/notewall/notewall/models"
)

// UserRepository persists user accounts and resolves lookups by the unique
// columns used during authentication.
type UserRepository interface {
	// CreateUser inserts a new user and returns the stored row.
	// Returns ErrUsernameTaken or ErrEmailTaken on a unique violation.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// FindUserByUsername returns the user with the given username,
	// or ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	// FindUserByEmail returns the user with the given email,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// FindUserByID returns the user with the given ID, or ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID int64) (*models.User, error)
}

// NoteRepository persists notes. Ownership checks live in the service layer,
// so lookups here are by note ID alone.
type NoteRepository interface {
	// ListNotes returns all notes belonging to a user, oldest first.
	// An empty result is a non-nil empty slice.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	// FindNoteByID returns the note with the given ID, or ErrNoteNotFound.
	FindNoteByID(ctx context.Context, noteID uuid.UUID) (*models.Note, error)
	// CreateNote inserts a new note and returns the stored row.
	CreateNote(ctx context.Context, note models.Note) (*models.Note, error)
	// UpdateNote replaces a note's title and text and returns the updated
	// row, or ErrNoteNotFound.
	UpdateNote(ctx context.Context, note models.Note) (*models.Note, error)
	// DeleteNote removes a note, or returns ErrNoteNotFound.
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
}

// SessionRepository persists server-side sessions keyed by opaque token.
type SessionRepository interface {
	// CreateSession inserts a new session row.
	CreateSession(ctx context.Context, session models.Session) error
	// FindSessionByToken returns the session with the given token,
	// or ErrSessionNotFound. Expiry is not checked here.
	FindSessionByToken(ctx context.Context, token uuid.UUID) (*models.Session, error)
	// RefreshSession moves a session's expiration forward.
	RefreshSession(ctx context.Context, token uuid.UUID, expiresAt time.Time) error
	// DeleteSession removes a session. Deleting a missing session is not
	// an error.
	DeleteSession(ctx context.Context, token uuid.UUID) error
}

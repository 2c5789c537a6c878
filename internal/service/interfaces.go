package service

import (
	"context"

	"github.com/notewall/notewall/models"
)

// AuthService handles account registration, credential verification and
// identity lookups.
type AuthService interface {
	// SignUp registers a new account. Returns store.ErrUsernameTaken or
	// store.ErrEmailTaken when a conflicting account exists, and
	// ErrMissingParameters when a field is empty.
	SignUp(ctx context.Context, username, email, password string) (*models.User, error)
	// Login verifies the given credentials. Returns ErrInvalidCredentials
	// for both an unknown username and a wrong password.
	Login(ctx context.Context, username, password string) (*models.User, error)
	// CurrentUser returns the account behind an authenticated user ID.
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// NoteService handles note CRUD with per-user ownership enforcement.
// rawNoteID parameters carry the identifier exactly as received from the
// client; services validate it before touching storage.
type NoteService interface {
	// ListNotes returns every note owned by userID, oldest first.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)
	// GetNote returns a single note after checking that userID owns it.
	GetNote(ctx context.Context, userID int64, rawNoteID string) (*models.Note, error)
	// CreateNote stores a new note owned by userID.
	CreateNote(ctx context.Context, userID int64, title, text string) (*models.Note, error)
	// UpdateNote replaces a note's title and text. An empty text clears
	// the note body.
	UpdateNote(ctx context.Context, userID int64, rawNoteID, title, text string) (*models.Note, error)
	// DeleteNote removes a note after checking that userID owns it.
	DeleteNote(ctx context.Context, userID int64, rawNoteID string) error
}

// SessionService manages server-side sessions carried by an opaque cookie
// token.
type SessionService interface {
	// CreateSession issues a new session for userID and returns it.
	CreateSession(ctx context.Context, userID int64) (*models.Session, error)
	// ValidateSession resolves a raw cookie token into a live session,
	// extending its lifetime on success (rolling expiration). Returns
	// ErrNotAuthenticated for unparseable or unknown tokens and
	// ErrSessionExpired for sessions past their deadline.
	ValidateSession(ctx context.Context, rawToken string) (*models.Session, error)
	// DestroySession deletes the session behind a raw cookie token.
	// Unparseable or unknown tokens are ignored so logout is idempotent.
	DestroySession(ctx context.Context, rawToken string) error
}

var (
	_ AuthService    = (*Auth)(nil)
	_ NoteService    = (*Notes)(nil)
	_ SessionService = (*Sessions)(nil)
)

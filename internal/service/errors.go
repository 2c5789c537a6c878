package service

import "errors"

// Errors returned by services. The HTTP layer maps each of these onto a
// status code and a client-facing message.
var (
	// ErrMissingParameters indicates that a required request field is
	// empty or absent.
	ErrMissingParameters = errors.New("missing required parameters")
	// ErrInvalidCredentials indicates a failed login. It is returned for
	// both an unknown username and a wrong password so the two cases are
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidNoteID indicates that a note identifier is not a valid UUID.
	ErrInvalidNoteID = errors.New("invalid note id")
	// ErrNoteTitleRequired indicates a note create or update with an
	// empty title.
	ErrNoteTitleRequired = errors.New("note title is required")
	// ErrNotNoteOwner indicates that the note exists but belongs to a
	// different user.
	ErrNotNoteOwner = errors.New("note belongs to another user")
	// ErrNotAuthenticated indicates a request without a valid session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSessionExpired indicates that the presented session exists but
	// has passed its expiration time.
	ErrSessionExpired = errors.New("session expired")
)

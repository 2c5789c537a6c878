package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/internal/store"
	"github.com/notewall/notewall/models"
)

// Notes implements NoteService. All single-note operations follow the same
// check order: identifier validity, then existence, then ownership.
type Notes struct {
	notes store.NoteRepository
	log   *logger.Logger
}

// NewNoteService creates a Notes service.
func NewNoteService(notes store.NoteRepository, log *logger.Logger) *Notes {
	return &Notes{notes: notes, log: log}
}

// ListNotes returns every note owned by userID, oldest first.
func (s *Notes) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return s.notes.ListNotes(ctx, userID)
}

// GetNote returns the note with rawNoteID if userID owns it.
func (s *Notes) GetNote(ctx context.Context, userID int64, rawNoteID string) (*models.Note, error) {
	return s.findOwnedNote(ctx, userID, rawNoteID)
}

// CreateNote stores a new note owned by userID. The title is required, the
// text may be empty.
func (s *Notes) CreateNote(ctx context.Context, userID int64, title, text string) (*models.Note, error) {
	log := logger.FromContext(ctx)

	if title == "" {
		return nil, ErrNoteTitleRequired
	}

	note, err := s.notes.CreateNote(ctx, models.Note{
		NoteID: uuid.New(),
		UserID: userID,
		Title:  title,
		Text:   text,
	})
	if err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}

	log.Info().Str("note_id", note.NoteID.String()).Int64("user_id", userID).Msg("note created")

	return note, nil
}

// UpdateNote replaces the title and text of an owned note. The title check
// runs before the existence lookup so a bad payload never leaks whether the
// note exists. An empty text clears the note body.
func (s *Notes) UpdateNote(ctx context.Context, userID int64, rawNoteID, title, text string) (*models.Note, error) {
	noteID, err := uuid.Parse(rawNoteID)
	if err != nil {
		return nil, ErrInvalidNoteID
	}

	if title == "" {
		return nil, ErrNoteTitleRequired
	}

	if _, err := s.ownedNote(ctx, userID, noteID); err != nil {
		return nil, err
	}

	return s.notes.UpdateNote(ctx, models.Note{
		NoteID: noteID,
		UserID: userID,
		Title:  title,
		Text:   text,
	})
}

// DeleteNote removes an owned note.
func (s *Notes) DeleteNote(ctx context.Context, userID int64, rawNoteID string) error {
	note, err := s.findOwnedNote(ctx, userID, rawNoteID)
	if err != nil {
		return err
	}

	return s.notes.DeleteNote(ctx, note.NoteID)
}

// findOwnedNote parses rawNoteID and resolves it to a note owned by userID.
func (s *Notes) findOwnedNote(ctx context.Context, userID int64, rawNoteID string) (*models.Note, error) {
	noteID, err := uuid.Parse(rawNoteID)
	if err != nil {
		return nil, ErrInvalidNoteID
	}

	return s.ownedNote(ctx, userID, noteID)
}

func (s *Notes) ownedNote(ctx context.Context, userID int64, noteID uuid.UUID) (*models.Note, error) {
	note, err := s.notes.FindNoteByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if note.UserID != userID {
		return nil, ErrNotNoteOwner
	}

	return note, nil
}

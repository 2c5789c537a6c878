package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/models"
)

func noteRows(notes ...models.Note) *sqlmock.Rows {
	rows := sqlmock.NewRows(noteColumns)
	for _, note := range notes {
		rows.AddRow(note.NoteID, note.UserID, note.Title, note.Text, note.CreatedAt, note.UpdatedAt)
	}
	return rows
}

// ─────────────────────────────────────────────
// ListNotes
// ─────────────────────────────────────────────

// TestListNotes_Empty verifies a user without notes gets an empty non-nil
// slice, so the API serialises [] instead of null.
func TestListNotes_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	query, _, err := buildListNotesQuery(1).ToSql()
	require.NoError(t, err)

	mock.ExpectQuery(query).
		WithArgs(int64(1)).
		WillReturnRows(noteRows())

	notes, err := repo.ListNotes(context.Background(), 1)
	require.NoError(t, err)

	assert.NotNil(t, notes)
	assert.Empty(t, notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestListNotes_OrderedByCreation verifies rows come back in query order.
func TestListNotes_OrderedByCreation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	first := models.Note{NoteID: uuid.New(), UserID: 1, Title: "first", CreatedAt: time.Now().Add(-time.Hour)}
	second := models.Note{NoteID: uuid.New(), UserID: 1, Title: "second", CreatedAt: time.Now()}

	query, _, err := buildListNotesQuery(1).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY created_at ASC")

	mock.ExpectQuery(query).
		WithArgs(int64(1)).
		WillReturnRows(noteRows(first, second))

	notes, err := repo.ListNotes(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Title)
	assert.Equal(t, "second", notes[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// FindNoteByID
// ─────────────────────────────────────────────

// TestFindNoteByID_NotFound verifies an empty result maps onto the domain
// error.
func TestFindNoteByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	noteID := uuid.New()
	query, _, err := buildFindNoteQuery(noteID).ToSql()
	require.NoError(t, err)

	mock.ExpectQuery(query).
		WithArgs(noteID).
		WillReturnRows(noteRows())

	_, err = repo.FindNoteByID(context.Background(), noteID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// CreateNote / UpdateNote
// ─────────────────────────────────────────────

// TestCreateNote_Success verifies the insert returns the stored row with
// database timestamps.
func TestCreateNote_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	note := models.Note{NoteID: uuid.New(), UserID: 1, Title: "groceries", Text: "milk"}
	stored := note
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt

	query, _, err := buildCreateNoteQuery(note).ToSql()
	require.NoError(t, err)

	mock.ExpectQuery(query).
		WithArgs(note.NoteID, note.UserID, note.Title, note.Text).
		WillReturnRows(noteRows(stored))

	created, err := repo.CreateNote(context.Background(), note)
	require.NoError(t, err)

	assert.Equal(t, note.NoteID, created.NoteID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUpdateNote_NotFound verifies updating a vanished note maps onto the
// domain error.
func TestUpdateNote_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db, logger.Nop())

	note := models.Note{NoteID: uuid.New(), UserID: 1, Title: "gone", Text: ""}

	query, _, err := buildUpdateNoteQuery(note).ToSql()
	require.NoError(t, err)

	mock.ExpectQuery(query).
		WithArgs(note.Title, note.Text, sqlmock.AnyArg(), note.NoteID).
		WillReturnRows(noteRows())

	_, err = repo.UpdateNote(context.Background(), note)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// DeleteNote
// ─────────────────────────────────────────────

// TestDeleteNote verifies a matched row deletes cleanly and zero affected
// rows surface as not-found.
func TestDeleteNote(t *testing.T) {
	noteID := uuid.New()
	query, _, err := buildDeleteNoteQuery(noteID).ToSql()
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec(query).
			WithArgs(noteID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteNote(context.Background(), noteID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows affected", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNoteRepository(db, logger.Nop())

		mock.ExpectExec(query).
			WithArgs(noteID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteNote(context.Background(), noteID)
		assert.ErrorIs(t, err, ErrNoteNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

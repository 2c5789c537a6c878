package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/models"
)

// NotePostgresRepository is the PostgreSQL implementation of NoteRepository.
// Queries are assembled with squirrel.
type NotePostgresRepository struct {
	db  *DB
	log *logger.Logger
}

// NewNoteRepository creates a NotePostgresRepository on top of db.
func NewNoteRepository(db *DB, log *logger.Logger) *NotePostgresRepository {
	return &NotePostgresRepository{db: db, log: log}
}

// ListNotes returns all notes belonging to userID ordered by creation time,
// oldest first. A user without notes gets an empty non-nil slice.
func (r *NotePostgresRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID).ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to list notes")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := scanNoteFromRows(rows, &note); err != nil {
			return nil, errors.Join(ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return notes, nil
}

// FindNoteByID returns the note with the given ID regardless of owner.
func (r *NotePostgresRepository) FindNoteByID(ctx context.Context, noteID uuid.UUID) (*models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindNoteQuery(noteID).ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoteNotFound
		}

		log.Error().Err(err).Str("note_id", noteID.String()).Msg("failed to query note")
		return nil, errors.Join(ErrScanningRow, err)
	}

	return note, nil
}

// CreateNote inserts a new note row and returns it with timestamps set by
// the database.
func (r *NotePostgresRepository) CreateNote(ctx context.Context, note models.Note) (*models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(note).ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	created, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Error().Err(err).Str("note_id", note.NoteID.String()).Msg("failed to insert note")
		return nil, errors.Join(ErrScanningRow, err)
	}

	return created, nil
}

// UpdateNote replaces the title and text of an existing note and returns the
// updated row.
func (r *NotePostgresRepository) UpdateNote(ctx context.Context, note models.Note) (*models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(note).ToSql()
	if err != nil {
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	updated, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoteNotFound
		}

		log.Error().Err(err).Str("note_id", note.NoteID.String()).Msg("failed to update note")
		return nil, errors.Join(ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteNote removes a note row. Returns ErrNoteNotFound when no row matched.
func (r *NotePostgresRepository) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(noteID).ToSql()
	if err != nil {
		return errors.Join(ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Str("note_id", noteID.String()).Msg("failed to delete note")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func scanNote(row *sql.Row) (*models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.NoteID,
		&note.UserID,
		&note.Title,
		&note.Text,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &note, nil
}

func scanNoteFromRows(rows *sql.Rows, note *models.Note) error {
	return rows.Scan(
		&note.NoteID,
		&note.UserID,
		&note.Title,
		&note.Text,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
}

package store

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/notewall/notewall/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Plain SQL statements for the users and sessions tables. Note queries are
// assembled with squirrel below because their shape varies per call.
const (
	createUserQuery = `INSERT INTO users (username, email, password_hash)
VALUES ($1, $2, $3)
RETURNING user_id, username, email, password_hash, created_at, updated_at`

	findUserByUsernameQuery = `SELECT user_id, username, email, password_hash, created_at, updated_at
FROM users
WHERE username = $1`

	findUserByEmailQuery = `SELECT user_id, username, email, password_hash, created_at, updated_at
FROM users
WHERE email = $1`

	findUserByIDQuery = `SELECT user_id, username, email, password_hash, created_at, updated_at
FROM users
WHERE user_id = $1`

	createSessionQuery = `INSERT INTO sessions (token, user_id, expires_at)
VALUES ($1, $2, $3)`

	findSessionByTokenQuery = `SELECT token, user_id, expires_at
FROM sessions
WHERE token = $1`

	refreshSessionQuery = `UPDATE sessions
SET expires_at = $2
WHERE token = $1`

	deleteSessionQuery = `DELETE FROM sessions
WHERE token = $1`
)

var noteColumns = []string{"note_id", "user_id", "title", "text", "created_at", "updated_at"}

func buildListNotesQuery(userID int64) squirrel.SelectBuilder {
	return psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC")
}

func buildFindNoteQuery(noteID uuid.UUID) squirrel.SelectBuilder {
	return psql.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(squirrel.Eq{"note_id": noteID})
}

func buildCreateNoteQuery(note models.Note) squirrel.InsertBuilder {
	return psql.
		Insert(models.Note{}.TableName()).
		Columns("note_id", "user_id", "title", "text").
		Values(note.NoteID, note.UserID, note.Title, note.Text).
		Suffix("RETURNING note_id, user_id, title, text, created_at, updated_at")
}

func buildUpdateNoteQuery(note models.Note) squirrel.UpdateBuilder {
	return psql.
		Update(models.Note{}.TableName()).
		Set("title", note.Title).
		Set("text", note.Text).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"note_id": note.NoteID}).
		Suffix("RETURNING note_id, user_id, title, text, created_at, updated_at")
}

func buildDeleteNoteQuery(noteID uuid.UUID) squirrel.DeleteBuilder {
	return psql.
		Delete(models.Note{}.TableName()).
		Where(squirrel.Eq{"note_id": noteID})
}

package store

import (
	"github.com/notewall/notewall/internal/logger"
)

// Repositories bundles every repository backed by the shared database
// connection.
type Repositories struct {
	UserRepository
	NoteRepository
	SessionRepository
}

// NewRepositories creates all repositories on top of one *DB handle.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, log),
		NoteRepository:    NewNoteRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
	}
}

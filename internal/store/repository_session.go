package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/models"
)

// SessionPostgresRepository is the PostgreSQL implementation of
// SessionRepository.
type SessionPostgresRepository struct {
	db  *DB
	log *logger.Logger
}

// NewSessionRepository creates a SessionPostgresRepository on top of db.
func NewSessionRepository(db *DB, log *logger.Logger) *SessionPostgresRepository {
	return &SessionPostgresRepository{db: db, log: log}
}

// CreateSession inserts a new session row.
func (r *SessionPostgresRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createSessionQuery, session.Token, session.UserID, session.ExpiresAt)
	if err != nil {
		log.Error().Err(err).Int64("user_id", session.UserID).Msg("failed to insert session")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// FindSessionByToken returns the session with the given token. Callers are
// responsible for checking the expiration time.
func (r *SessionPostgresRepository) FindSessionByToken(ctx context.Context, token uuid.UUID) (*models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	err := r.db.QueryRowContext(ctx, findSessionByTokenQuery, token).
		Scan(&session.Token, &session.UserID, &session.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}

		log.Error().Err(err).Msg("failed to query session")
		return nil, errors.Join(ErrScanningRow, err)
	}

	return &session, nil
}

// RefreshSession moves a session's expiration forward to expiresAt.
func (r *SessionPostgresRepository) RefreshSession(ctx context.Context, token uuid.UUID, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, refreshSessionQuery, token, expiresAt)
	if err != nil {
		log.Error().Err(err).Msg("failed to refresh session")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

// DeleteSession removes a session row. Deleting a token that no longer
// exists succeeds, so logout stays idempotent.
func (r *SessionPostgresRepository) DeleteSession(ctx context.Context, token uuid.UUID) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, deleteSessionQuery, token)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete session")
		return errors.Join(ErrExecutingStatement, err)
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/internal/store"
	"github.com/notewall/notewall/models"
)

// Sessions implements SessionService with rolling expiration: every
// successful validation pushes the deadline forward by the configured TTL.
type Sessions struct {
	sessions store.SessionRepository
	ttl      time.Duration
	log      *logger.Logger
}

// NewSessionService creates a Sessions service.
func NewSessionService(sessions store.SessionRepository, ttl time.Duration, log *logger.Logger) *Sessions {
	return &Sessions{sessions: sessions, ttl: ttl, log: log}
}

// CreateSession issues a fresh session token for userID.
func (s *Sessions) CreateSession(ctx context.Context, userID int64) (*models.Session, error) {
	session := models.Session{
		Token:     uuid.New(),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}

	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &session, nil
}

// ValidateSession resolves a raw cookie token into a live session. Expired
// sessions are deleted on sight and reported as ErrSessionExpired. A valid
// session gets its deadline pushed forward before it is returned.
func (s *Sessions) ValidateSession(ctx context.Context, rawToken string) (*models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := uuid.Parse(rawToken)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	session, err := s.sessions.FindSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	if time.Now().UTC().After(session.ExpiresAt) {
		if err := s.sessions.DeleteSession(ctx, token); err != nil {
			log.Warn().Err(err).Msg("failed to remove expired session")
		}
		return nil, ErrSessionExpired
	}

	session.ExpiresAt = time.Now().UTC().Add(s.ttl)
	if err := s.sessions.RefreshSession(ctx, token, session.ExpiresAt); err != nil {
		return nil, fmt.Errorf("refreshing session: %w", err)
	}

	return session, nil
}

// DestroySession deletes the session behind a raw cookie token. A token that
// does not parse or no longer exists is treated as already destroyed.
func (s *Sessions) DestroySession(ctx context.Context, rawToken string) error {
	token, err := uuid.Parse(rawToken)
	if err != nil {
		return nil
	}

	return s.sessions.DeleteSession(ctx, token)
}

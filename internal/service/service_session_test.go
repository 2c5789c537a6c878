package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/internal/store"
	"github.com/notewall/notewall/models"
)

// ─────────────────────────────────────────────
// Mock SessionRepository
// ─────────────────────────────────────────────

// mockSessionRepository implements store.SessionRepository for unit tests.
type mockSessionRepository struct {
	createSessionFn      func(ctx context.Context, session models.Session) error
	findSessionByTokenFn func(ctx context.Context, token uuid.UUID) (*models.Session, error)
	refreshSessionFn     func(ctx context.Context, token uuid.UUID, expiresAt time.Time) error
	deleteSessionFn      func(ctx context.Context, token uuid.UUID) error
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	return m.createSessionFn(ctx, session)
}

func (m *mockSessionRepository) FindSessionByToken(ctx context.Context, token uuid.UUID) (*models.Session, error) {
	return m.findSessionByTokenFn(ctx, token)
}

func (m *mockSessionRepository) RefreshSession(ctx context.Context, token uuid.UUID, expiresAt time.Time) error {
	return m.refreshSessionFn(ctx, token, expiresAt)
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, token uuid.UUID) error {
	return m.deleteSessionFn(ctx, token)
}

// ─────────────────────────────────────────────
// CreateSession
// ─────────────────────────────────────────────

// TestCreateSession_Success verifies a fresh token with a deadline one TTL
// in the future.
func TestCreateSession_Success(t *testing.T) {
	var stored models.Session
	repo := &mockSessionRepository{
		createSessionFn: func(_ context.Context, session models.Session) error {
			stored = session
			return nil
		},
	}

	sessions := NewSessionService(repo, time.Hour, logger.Nop())

	before := time.Now().UTC()
	session, err := sessions.CreateSession(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, stored.Token, session.Token)
	assert.NotEqual(t, uuid.Nil, session.Token)
	assert.Equal(t, int64(1), session.UserID)
	assert.WithinDuration(t, before.Add(time.Hour), session.ExpiresAt, time.Minute)
}

// ─────────────────────────────────────────────
// ValidateSession
// ─────────────────────────────────────────────

// TestValidateSession_UnparseableToken verifies a garbage cookie value is
// unauthenticated, with no repository lookup.
func TestValidateSession_UnparseableToken(t *testing.T) {
	repo := &mockSessionRepository{
		findSessionByTokenFn: func(context.Context, uuid.UUID) (*models.Session, error) {
			t.Fatal("lookup must not run for an unparseable token")
			return nil, nil
		},
	}
	sessions := NewSessionService(repo, time.Hour, logger.Nop())

	_, err := sessions.ValidateSession(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// TestValidateSession_UnknownToken verifies a well-formed but unknown token
// is unauthenticated.
func TestValidateSession_UnknownToken(t *testing.T) {
	repo := &mockSessionRepository{
		findSessionByTokenFn: func(context.Context, uuid.UUID) (*models.Session, error) {
			return nil, store.ErrSessionNotFound
		},
	}
	sessions := NewSessionService(repo, time.Hour, logger.Nop())

	_, err := sessions.ValidateSession(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// TestValidateSession_Expired verifies an expired session is removed on
// sight and reported as expired.
func TestValidateSession_Expired(t *testing.T) {
	token := uuid.New()

	deleted := false
	repo := &mockSessionRepository{
		findSessionByTokenFn: func(_ context.Context, got uuid.UUID) (*models.Session, error) {
			assert.Equal(t, token, got)
			return &models.Session{Token: token, UserID: 1, ExpiresAt: time.Now().UTC().Add(-time.Minute)}, nil
		},
		deleteSessionFn: func(_ context.Context, got uuid.UUID) error {
			deleted = true
			assert.Equal(t, token, got)
			return nil
		},
	}
	sessions := NewSessionService(repo, time.Hour, logger.Nop())

	_, err := sessions.ValidateSession(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, deleted, "expired session must be removed")
}

// TestValidateSession_RollingRefresh verifies a live session gets its
// deadline pushed forward by one TTL.
func TestValidateSession_RollingRefresh(t *testing.T) {
	token := uuid.New()
	oldDeadline := time.Now().UTC().Add(10 * time.Minute)

	var refreshedTo time.Time
	repo := &mockSessionRepository{
		findSessionByTokenFn: func(context.Context, uuid.UUID) (*models.Session, error) {
			return &models.Session{Token: token, UserID: 1, ExpiresAt: oldDeadline}, nil
		},
		refreshSessionFn: func(_ context.Context, got uuid.UUID, expiresAt time.Time) error {
			assert.Equal(t, token, got)
			refreshedTo = expiresAt
			return nil
		},
	}
	sessions := NewSessionService(repo, time.Hour, logger.Nop())

	session, err := sessions.ValidateSession(context.Background(), token.String())
	require.NoError(t, err)

	assert.Equal(t, int64(1), session.UserID)
	assert.True(t, refreshedTo.After(oldDeadline), "deadline must move forward")
	assert.Equal(t, refreshedTo, session.ExpiresAt)
}

// ─────────────────────────────────────────────
// DestroySession
// ─────────────────────────────────────────────

// TestDestroySession_Idempotent verifies garbage tokens are swallowed and
// valid tokens reach the repository delete.
func TestDestroySession_Idempotent(t *testing.T) {
	token := uuid.New()

	deleted := false
	repo := &mockSessionRepository{
		deleteSessionFn: func(_ context.Context, got uuid.UUID) error {
			deleted = true
			assert.Equal(t, token, got)
			return nil
		},
	}
	sessions := NewSessionService(repo, time.Hour, logger.Nop())

	require.NoError(t, sessions.DestroySession(context.Background(), "garbage"))
	assert.False(t, deleted)

	require.NoError(t, sessions.DestroySession(context.Background(), token.String()))
	assert.True(t, deleted)
}

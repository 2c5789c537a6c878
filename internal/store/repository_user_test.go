package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newMockDB returns a *DB backed by sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, log: logger.Nop()}, mock
}

var userColumns = []string{"user_id", "username", "email", "password_hash", "created_at", "updated_at"}

func userRow(user models.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
}

// uniqueViolation fabricates the driver error Postgres raises for a
// duplicate key on the given constraint.
func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint}
}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

// TestCreateUser_Success verifies the inserted row comes back fully scanned.
func TestCreateUser_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery(createUserQuery).
		WithArgs("alice", "alice@example.com", "hash").
		WillReturnRows(userRow(models.User{
			UserID: 1, Username: "alice", Email: "alice@example.com",
			PasswordHash: "hash", CreatedAt: now, UpdatedAt: now,
		}))

	user, err := repo.CreateUser(context.Background(), models.User{
		Username: "alice", Email: "alice@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "alice", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCreateUser_UniqueViolations verifies the violated constraint name
// decides which conflict error the caller sees.
func TestCreateUser_UniqueViolations(t *testing.T) {
	cases := []struct {
		name       string
		constraint string
		want       error
	}{
		{"duplicate username", "users_username_key", ErrUsernameTaken},
		{"duplicate email", "users_email_key", ErrEmailTaken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db, logger.Nop())

			mock.ExpectQuery(createUserQuery).
				WithArgs("alice", "alice@example.com", "hash").
				WillReturnError(uniqueViolation(tc.constraint))

			_, err := repo.CreateUser(context.Background(), models.User{
				Username: "alice", Email: "alice@example.com", PasswordHash: "hash",
			})
			assert.ErrorIs(t, err, tc.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ─────────────────────────────────────────────
// Lookups
// ─────────────────────────────────────────────

// TestFindUserByUsername_NotFound verifies an empty result maps onto the
// domain error rather than sql.ErrNoRows.
func TestFindUserByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(findUserByUsernameQuery).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestFindUserByID_Success verifies the by-ID lookup.
func TestFindUserByID_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	now := time.Now().UTC()
	mock.ExpectQuery(findUserByIDQuery).
		WithArgs(int64(42)).
		WillReturnRows(userRow(models.User{
			UserID: 42, Username: "alice", Email: "alice@example.com",
			PasswordHash: "hash", CreatedAt: now, UpdatedAt: now,
		}))

	user, err := repo.FindUserByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

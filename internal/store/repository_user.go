package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/models"
)

// UserPostgresRepository is the PostgreSQL implementation of UserRepository.
type UserPostgresRepository struct {
	db  *DB
	log *logger.Logger
}

// NewUserRepository creates a UserPostgresRepository on top of db.
func NewUserRepository(db *DB, log *logger.Logger) *UserPostgresRepository {
	return &UserPostgresRepository{db: db, log: log}
}

// CreateUser inserts a new user row. A unique violation on the username or
// email column is translated into ErrUsernameTaken or ErrEmailTaken based on
// the violated constraint name.
func (r *UserPostgresRepository) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUserQuery, user.Username, user.Email, user.PasswordHash)

	created, err := scanUser(row)
	if err != nil {
		if constraint := uniqueConstraintName(err); constraint != "" {
			if strings.Contains(constraint, "email") {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}

		log.Error().Err(err).Str("username", user.Username).Msg("failed to insert user")
		return nil, errors.Join(ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByUsername returns the user with the given username.
func (r *UserPostgresRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findUser(ctx, findUserByUsernameQuery, username)
}

// FindUserByEmail returns the user with the given email.
func (r *UserPostgresRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findUser(ctx, findUserByEmailQuery, email)
}

// FindUserByID returns the user with the given ID.
func (r *UserPostgresRepository) FindUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return r.findUser(ctx, findUserByIDQuery, userID)
}

func (r *UserPostgresRepository) findUser(ctx context.Context, query string, arg any) (*models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoUserWasFound
		}

		log.Error().Err(err).Msg("failed to query user")
		return nil, errors.Join(ErrScanningRow, err)
	}

	return user, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/internal/store"
	"github.com/notewall/notewall/models"
)

// Auth implements AuthService on top of a UserRepository. Passwords are
// hashed with bcrypt at the configured cost.
type Auth struct {
	users      store.UserRepository
	bcryptCost int
	log        *logger.Logger
}

// NewAuthService creates an Auth service.
func NewAuthService(users store.UserRepository, bcryptCost int, log *logger.Logger) *Auth {
	return &Auth{users: users, bcryptCost: bcryptCost, log: log}
}

// SignUp registers a new account. The username and email are checked for
// conflicts independently, so the caller learns which of the two is taken.
func (s *Auth) SignUp(ctx context.Context, username, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || email == "" || password == "" {
		return nil, ErrMissingParameters
	}

	if _, err := s.users.FindUserByUsername(ctx, username); err == nil {
		return nil, store.ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return nil, fmt.Errorf("checking username availability: %w", err)
	}

	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		return nil, store.ErrEmailTaken
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return nil, fmt.Errorf("checking email availability: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("user_id", user.UserID).Str("username", user.Username).Msg("user registered")

	return user, nil
}

// Login verifies the credentials against the stored bcrypt hash. An unknown
// username and a wrong password both yield ErrInvalidCredentials so a caller
// cannot probe for registered usernames.
func (s *Auth) Login(ctx context.Context, username, password string) (*models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return nil, ErrMissingParameters
	}

	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")

	return user, nil
}

// CurrentUser returns the account behind an authenticated user ID.
func (s *Auth) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.FindUserByID(ctx, userID)
}

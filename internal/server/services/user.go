// Package services contains the server-side business logic: account
// registration and login, and task CRUD scoped to the acting user.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkarpenko/taskdesk/internal/common"
	"github.com/mkarpenko/taskdesk/internal/server/config"
	"github.com/mkarpenko/taskdesk/internal/server/models"
	"github.com/mkarpenko/taskdesk/internal/server/repositories/repomanager"
	"github.com/mkarpenko/taskdesk/internal/server/repositories/users"
)

// UserService provides authentication-related operations:
// - Signup: validate, hash the password, create the user
// - Login: verify credentials
//
// Binding the authenticated user to a session is the transport layer's job.
type UserService struct {
	users      users.Repository
	bcryptCost int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		users:      m.Users(),
		bcryptCost: cfg.BcryptCost,
	}
}

// Signup creates a new account. The username must be non-empty and unique
// among existing usernames compared case-insensitively; the stored casing is
// whatever the user typed.
func (s *UserService) Signup(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	_, err := s.users.GetByUsername(ctx, username)
	if err == nil {
		return nil, common.ErrorConflict
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	u, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and returns the matching user. Unknown
// usernames and wrong passwords both yield ErrorUnauthorized so callers
// cannot distinguish them. The hash comparison is constant-time (bcrypt).
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

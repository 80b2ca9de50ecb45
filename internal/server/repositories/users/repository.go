// Package users stores account records.
package users

import (
	"context"

	"github.com/mkarpenko/taskdesk/internal/server/models"
)

// Repository persists User records. Usernames are matched
// case-insensitively; users are never updated or deleted.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the user whose username matches case-insensitively,
	// or common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

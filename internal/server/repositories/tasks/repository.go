// Package tasks stores task records scoped by owning user.
package tasks

import (
	"context"

	"github.com/mkarpenko/taskdesk/internal/server/models"
)

// Repository persists Task records. Single-record lookups match on both the
// task id and the owning user id; a task that exists but belongs to someone
// else is reported as common.ErrorNotFound.
type Repository interface {
	// ListByUser returns the user's tasks in insertion order.
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)

	Get(ctx context.Context, userID, id string) (*models.Task, error)

	Create(ctx context.Context, task *models.Task) error

	// Update replaces the stored record matching task.ID/task.UserID.
	Update(ctx context.Context, task *models.Task) error

	Delete(ctx context.Context, userID, id string) error
}

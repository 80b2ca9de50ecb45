package tasks

import (
	"context"
	"fmt"

	"github.com/mkarpenko/taskdesk/internal/common"
	"github.com/mkarpenko/taskdesk/internal/server/models"
	"github.com/mkarpenko/taskdesk/internal/server/storage"
)

// FileRepository keeps tasks in a whole-file JSON collection. Every mutation
// is a read-modify-write of the entire collection; concurrent writers race
// and the last write wins.
type FileRepository struct {
	tasks *storage.Collection[models.Task]
}

func NewFileRepository(c *storage.Collection[models.Task]) *FileRepository {
	return &FileRepository{tasks: c}
}

func (r *FileRepository) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	all, err := r.tasks.Load()
	if err != nil {
		return nil, fmt.Errorf("storage error: %w", err)
	}

	list := []models.Task{}
	for i := range all {
		if all[i].UserID == userID {
			list = append(list, all[i])
		}
	}
	return list, nil
}

func (r *FileRepository) Get(ctx context.Context, userID, id string) (*models.Task, error) {
	all, err := r.tasks.Load()
	if err != nil {
		return nil, fmt.Errorf("storage error: %w", err)
	}

	if i := indexOf(all, userID, id); i >= 0 {
		task := all[i]
		return &task, nil
	}
	return nil, common.ErrorNotFound
}

func (r *FileRepository) Create(ctx context.Context, task *models.Task) error {
	all, err := r.tasks.Load()
	if err != nil {
		return fmt.Errorf("storage error: %w", err)
	}

	all = append(all, *task)
	if err := r.tasks.Save(all); err != nil {
		return fmt.Errorf("storage error: %w", err)
	}
	return nil
}

func (r *FileRepository) Update(ctx context.Context, task *models.Task) error {
	all, err := r.tasks.Load()
	if err != nil {
		return fmt.Errorf("storage error: %w", err)
	}

	i := indexOf(all, task.UserID, task.ID)
	if i < 0 {
		return common.ErrorNotFound
	}

	all[i] = *task
	if err := r.tasks.Save(all); err != nil {
		return fmt.Errorf("storage error: %w", err)
	}
	return nil
}

func (r *FileRepository) Delete(ctx context.Context, userID, id string) error {
	all, err := r.tasks.Load()
	if err != nil {
		return fmt.Errorf("storage error: %w", err)
	}

	i := indexOf(all, userID, id)
	if i < 0 {
		return common.ErrorNotFound
	}

	all = append(all[:i], all[i+1:]...)
	if err := r.tasks.Save(all); err != nil {
		return fmt.Errorf("storage error: %w", err)
	}
	return nil
}

func indexOf(all []models.Task, userID, id string) int {
	for i := range all {
		if all[i].ID == id && all[i].UserID == userID {
			return i
		}
	}
	return -1
}

package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkarpenko/taskdesk/internal/common"
	"github.com/mkarpenko/taskdesk/internal/server/models"
	"github.com/mkarpenko/taskdesk/internal/server/storage"
)

// FileRepository keeps users in a whole-file JSON collection. Every operation
// re-reads the collection, mutates it, and re-writes it; nothing is cached
// across requests.
type FileRepository struct {
	users *storage.Collection[models.User]
}

func NewFileRepository(c *storage.Collection[models.User]) *FileRepository {
	return &FileRepository{users: c}
}

func (r *FileRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	all, err := r.users.Load()
	if err != nil {
		return nil, fmt.Errorf("storage error: %w", err)
	}

	all = append(all, *user)
	if err := r.users.Save(all); err != nil {
		return nil, fmt.Errorf("storage error: %w", err)
	}

	return user, nil
}

func (r *FileRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	all, err := r.users.Load()
	if err != nil {
		return nil, fmt.Errorf("storage error: %w", err)
	}

	for i := range all {
		if strings.EqualFold(all[i].Username, username) {
			u := all[i]
			return &u, nil
		}
	}

	return nil, common.ErrorNotFound
}

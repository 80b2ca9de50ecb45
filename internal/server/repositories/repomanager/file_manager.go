package repomanager

import (
	"fmt"
	"path/filepath"

	"github.com/mkarpenko/taskdesk/internal/filex"
	"github.com/mkarpenko/taskdesk/internal/server/models"
	"github.com/mkarpenko/taskdesk/internal/server/repositories/tasks"
	"github.com/mkarpenko/taskdesk/internal/server/repositories/users"
	"github.com/mkarpenko/taskdesk/internal/server/storage"
)

const (
	usersFile = "users.json"
	tasksFile = "tasks.json"
)

type FileRepositoryManager struct {
	users users.Repository
	tasks tasks.Repository
}

func (m *FileRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *FileRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

func (m *FileRepositoryManager) Close() error {
	return nil
}

// NewFileRepositoryManager prepares the data directory and wires the
// file-backed repositories over it.
func NewFileRepositoryManager(dataDir string) (RepositoryManager, error) {

	if err := filex.EnsureDir(dataDir); err != nil {
		return nil, fmt.Errorf("data dir init error: %w", err)
	}

	return &FileRepositoryManager{
		users: users.NewFileRepository(storage.NewCollection[models.User](filepath.Join(dataDir, usersFile))),
		tasks: tasks.NewFileRepository(storage.NewCollection[models.Task](filepath.Join(dataDir, tasksFile))),
	}, nil
}

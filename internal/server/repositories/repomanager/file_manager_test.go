package repomanager

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkarpenko/taskdesk/internal/server/models"
)

func TestNewFileRepositoryManager_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	m, err := NewFileRepositoryManager(dir)
	require.NoError(t, err)
	defer m.Close()

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestFileRepositoryManager_RepositoriesShareDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	m, err := NewFileRepositoryManager(dir)
	require.NoError(t, err)
	defer m.Close()

	ctx := context.Background()
	_, err = m.Users().Create(ctx, &models.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)
	require.NoError(t, m.Tasks().Create(ctx, &models.Task{ID: "t1", UserID: "u1", Title: "x", Priority: models.PriorityLow}))

	require.FileExists(t, filepath.Join(dir, "users.json"))
	require.FileExists(t, filepath.Join(dir, "tasks.json"))

	got, err := m.Users().GetByUsername(ctx, "ALICE")
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID)
}

// Package repomanager selects and wires the storage backend: whole-file JSON
// collections by default, PostgreSQL when a DSN is configured.
package repomanager

import (
	"github.com/mkarpenko/taskdesk/internal/server/repositories/tasks"
	"github.com/mkarpenko/taskdesk/internal/server/repositories/users"
)

// RepositoryManager hands out the record repositories for the active backend.
type RepositoryManager interface {
	Users() users.Repository
	Tasks() tasks.Repository
	Close() error
}

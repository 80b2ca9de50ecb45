package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkarpenko/taskdesk/internal/common"
	"github.com/mkarpenko/taskdesk/internal/server/models"
	"github.com/mkarpenko/taskdesk/internal/server/repositories/repomanager"
	"github.com/mkarpenko/taskdesk/internal/server/repositories/tasks"
)

// TaskService provides CRUD over tasks. Every operation takes the acting
// user's id; ownership is the sole authorization boundary, so a task owned by
// someone else is indistinguishable from a missing one.
type TaskService struct {
	tasks tasks.Repository
}

func NewTaskService(m repomanager.RepositoryManager) *TaskService {
	return &TaskService{tasks: m.Tasks()}
}

// List returns the user's tasks in storage (insertion) order. The result is
// never nil, so it always serializes as a JSON array.
func (s *TaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	list, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	if list == nil {
		list = []models.Task{}
	}
	return list, nil
}

// Create validates input, stamps both timestamps, and persists the task.
// The priority must already be one of the defined levels; defaulting an
// absent field is the caller's concern, so an empty string is rejected the
// same as any other unknown value.
func (s *TaskService) Create(ctx context.Context, userID, title, description string, priority models.Priority) (*models.Task, error) {
	if title == "" {
		return nil, common.ErrorValidation
	}
	if !priority.Valid() {
		return nil, common.ErrorValidation
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Priority:    priority,
		Done:        false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return task, nil
}

// Update applies a partial patch to the user's task. Unset fields keep their
// prior value; UpdatedAt is refreshed unconditionally. The existence check
// runs before validation, so a missing task reports not-found even when the
// patch is also invalid.
func (s *TaskService) Update(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error) {
	task, err := s.tasks.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, common.ErrorValidation
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Done != nil {
		task.Done = *patch.Done
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the user's task and returns the removed record.
func (s *TaskService) Delete(ctx context.Context, userID, id string) (*models.Task, error) {
	task, err := s.tasks.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Delete(ctx, userID, id); err != nil {
		return nil, err
	}
	return task, nil
}

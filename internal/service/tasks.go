package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/LivingPOTATO0/task-manager-backend/internal/errs"
	"github.com/LivingPOTATO0/task-manager-backend/internal/model"
	"github.com/LivingPOTATO0/task-manager-backend/internal/repository"
)

// StatusPending is the status assigned to every new task.
const StatusPending = "pending"

// TaskService defines user-scoped task operations.
type TaskService interface {
	// Create stores a new pending task and returns its ID.
	Create(ctx context.Context, userID uuid.UUID, inputText string) (uuid.UUID, error)
	// List returns the user's tasks, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	// Get returns one of the user's tasks.
	Get(ctx context.Context, userID, taskID uuid.UUID) (*model.Task, error)
	// Update changes status and/or result of one of the user's tasks.
	Update(ctx context.Context, userID, taskID uuid.UUID, upd model.TaskUpdate) error
	// Delete removes one of the user's tasks.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

type TaskServiceImpl struct {
	tasks repository.TaskRepository
}

// NewTaskService constructs TaskService.
func NewTaskService(tasks repository.TaskRepository) *TaskServiceImpl {
	return &TaskServiceImpl{tasks: tasks}
}

// Create validates input and stores a new pending task.
func (s *TaskServiceImpl) Create(ctx context.Context, userID uuid.UUID, inputText string) (uuid.UUID, error) {
	if inputText == "" {
		return uuid.Nil, fmt.Errorf("%w: inputText is required", errs.ErrValidation)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	t := &model.Task{
		ID:        id,
		UserID:    userID,
		InputText: inputText,
		Status:    StatusPending,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns the user's tasks, newest first.
func (s *TaskServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

// Get returns one of the user's tasks.
func (s *TaskServiceImpl) Get(ctx context.Context, userID, taskID uuid.UUID) (*model.Task, error) {
	return s.tasks.Get(ctx, userID, taskID)
}

// Update rejects an empty update before touching the store.
func (s *TaskServiceImpl) Update(ctx context.Context, userID, taskID uuid.UUID, upd model.TaskUpdate) error {
	if upd.Status == nil && upd.Result == nil {
		return fmt.Errorf("%w: no fields to update", errs.ErrValidation)
	}
	return s.tasks.Update(ctx, userID, taskID, upd)
}

// Delete removes one of the user's tasks.
func (s *TaskServiceImpl) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	return s.tasks.Delete(ctx, userID, taskID)
}

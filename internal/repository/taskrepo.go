package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/LivingPOTATO0/task-manager-backend/internal/model"
)

// TaskRepository provides user-scoped CRUD access to tasks. Every operation
// takes the owner's ID; a task belonging to another user behaves as absent.
type TaskRepository interface {
	// Create inserts a new task.
	Create(ctx context.Context, t *model.Task) error
	// ListByUser returns all tasks of a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	// Get returns a single task owned by the user.
	Get(ctx context.Context, userID, taskID uuid.UUID) (*model.Task, error)
	// Update applies the non-nil fields of upd to an owned task.
	Update(ctx context.Context, userID, taskID uuid.UUID, upd model.TaskUpdate) error
	// Delete removes an owned task.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

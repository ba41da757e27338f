package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/LivingPOTATO0/task-manager-backend/internal/errs"
	"github.com/LivingPOTATO0/task-manager-backend/internal/model"
)

// TaskRepo implements TaskRepository using PostgreSQL.
type TaskRepo struct{ db *DB }

// NewTaskRepo constructs a task repository.
func NewTaskRepo(db *DB) *TaskRepo { return &TaskRepo{db: db} }

// Create inserts a new task row.
func (r *TaskRepo) Create(ctx context.Context, t *model.Task) error {
	const q = `
INSERT INTO tasks (id, user_id, input_text, status)
VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, q, t.ID, t.UserID, t.InputText, t.Status)
	return err
}

// ListByUser returns all tasks of a user, newest first.
func (r *TaskRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	const q = `
SELECT id, user_id, input_text, status, result, created_at, updated_at
FROM tasks
WHERE user_id=$1
ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.InputText, &t.Status, &t.Result, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Get returns a single task owned by the user.
func (r *TaskRepo) Get(ctx context.Context, userID, taskID uuid.UUID) (*model.Task, error) {
	const q = `
SELECT id, user_id, input_text, status, result, created_at, updated_at
FROM tasks
WHERE id=$1 AND user_id=$2`
	row := r.db.Pool.QueryRow(ctx, q, taskID, userID)
	var t model.Task
	if err := row.Scan(&t.ID, &t.UserID, &t.InputText, &t.Status, &t.Result, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update applies the non-nil fields of upd to an owned task.
func (r *TaskRepo) Update(ctx context.Context, userID, taskID uuid.UUID, upd model.TaskUpdate) error {
	sets := []string{"updated_at = now()"}
	args := []any{taskID, userID}
	if upd.Status != nil {
		args = append(args, *upd.Status)
		sets = append(sets, "status = $"+strconv.Itoa(len(args)))
	}
	if upd.Result != nil {
		args = append(args, *upd.Result)
		sets = append(sets, "result = $"+strconv.Itoa(len(args)))
	}

	q := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = $1 AND user_id = $2"
	tag, err := r.db.Pool.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes an owned task.
func (r *TaskRepo) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	const q = `DELETE FROM tasks WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, taskID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"

	"github.com/LivingPOTATO0/task-manager-backend/internal/model"
)

type taskDTO struct {
	ID        string    `json:"id"`
	InputText string    `json:"inputText"`
	Status    string    `json:"status"`
	Result    *string   `json:"result"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTaskDTO(t model.Task) taskDTO {
	return taskDTO{
		ID:        t.ID.String(),
		InputText: t.InputText,
		Status:    t.Status,
		Result:    t.Result,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// principal returns the user ID placed in the context by AuthRequired.
// Task routes are never registered without the gate, so absence is a
// programming error and reads as an internal failure.
func principal(c *gin.Context) (uuid.UUID, bool) {
	id, ok := UserIDFromCtx(c.Request.Context())
	if !ok {
		abortError(c, http.StatusInternalServerError, "Internal server error")
	}
	return id, ok
}

type createTaskRequest struct {
	InputText string `json:"inputText"`
}

// CreateTask stores a new pending task for the caller.
func (h *Handlers) CreateTask(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.InputText == "" {
		respondError(c, http.StatusBadRequest, "inputText is required")
		return
	}

	id, err := h.tasks.Create(c.Request.Context(), userID, req.InputText)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, Response{
		Message: "Task created successfully",
		Data:    gin.H{"id": id.String()},
	})
}

// ListTasks returns the caller's tasks, newest first.
func (h *Handlers) ListTasks(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.List(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	out := make([]taskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskDTO(t))
	}
	respondOK(c, http.StatusOK, Response{Data: out})
}

// GetTask returns one of the caller's tasks.
func (h *Handlers) GetTask(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	taskID, err := uuid.FromString(c.Param("taskId"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Task not found")
		return
	}

	t, err := h.tasks.Get(c.Request.Context(), userID, taskID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, Response{Data: toTaskDTO(*t)})
}

type updateTaskRequest struct {
	Status *string `json:"status"`
	Result *string `json:"result"`
}

// UpdateTask changes status and/or result of one of the caller's tasks.
func (h *Handlers) UpdateTask(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	taskID, err := uuid.FromString(c.Param("taskId"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Task not found")
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "No fields to update")
		return
	}
	if req.Status == nil && req.Result == nil {
		respondError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	upd := model.TaskUpdate{Status: req.Status, Result: req.Result}
	if err := h.tasks.Update(c.Request.Context(), userID, taskID, upd); err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, Response{Message: "Task updated successfully"})
}

// DeleteTask removes one of the caller's tasks.
func (h *Handlers) DeleteTask(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	taskID, err := uuid.FromString(c.Param("taskId"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), userID, taskID); err != nil {
		h.respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, Response{Message: "Task deleted successfully"})
}

// Package httpserver exposes the task-manager HTTP JSON API.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LivingPOTATO0/task-manager-backend/internal/errs"
)

// Response is the uniform JSON envelope used by every endpoint.
type Response struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
	Data        any    `json:"data,omitempty"`
	Error       string `json:"error,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}

const (
	statusOK    = "OK"
	statusError = "ERROR"
)

func respondOK(c *gin.Context, code int, resp Response) {
	resp.Status = statusOK
	c.JSON(code, resp)
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Status: statusError, Message: message})
}

func abortError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, Response{Status: statusError, Message: message})
}

// respondServiceError maps sentinel errors to their HTTP shape. The fallback
// is a 500 whose detail leaks only outside production.
func (h *Handlers) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		respondError(c, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, errs.ErrAlreadyExists):
		respondError(c, http.StatusConflict, "User already exists")
	case errors.Is(err, errs.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, errs.ErrTokenInvalid):
		respondError(c, http.StatusForbidden, "Invalid or expired token")
	case errors.Is(err, errs.ErrNotFound):
		respondError(c, http.StatusNotFound, "Task not found")
	default:
		resp := Response{Status: statusError, Message: "Internal server error"}
		if !h.production {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

// validationMessage strips the sentinel prefix so clients see only the detail.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := errs.ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

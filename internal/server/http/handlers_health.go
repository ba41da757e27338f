package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness.
func (h *Handlers) Health(c *gin.Context) {
	respondOK(c, http.StatusOK, Response{
		Message:   "Server is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthDB reports backing-store connectivity.
func (h *Handlers) HealthDB(c *gin.Context) {
	ts := time.Now().UTC().Format(time.RFC3339)
	if err := h.db.Ping(c.Request.Context()); err != nil {
		resp := Response{Status: statusError, Message: "Database connection failed", Timestamp: ts}
		if !h.production {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	respondOK(c, http.StatusOK, Response{
		Message:   "Database connection is healthy",
		Timestamp: ts,
	})
}

package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LivingPOTATO0/task-manager-backend/internal/service"
)

// Pinger checks backing-store connectivity for the DB health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers wires services into HTTP endpoints.
type Handlers struct {
	auth       service.AuthService
	tasks      service.TaskService
	db         Pinger
	cookies    CookiePolicy
	production bool
}

// NewHandlers constructs the handler set.
func NewHandlers(auth service.AuthService, tasks service.TaskService, db Pinger, cookies CookiePolicy, production bool) *Handlers {
	return &Handlers{auth: auth, tasks: tasks, db: db, cookies: cookies, production: production}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Register creates an account and starts a session.
func (h *Handlers) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" || req.Name == "" {
		respondError(c, http.StatusBadRequest, "Email, password, and name are required")
		return
	}

	userID, pair, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	h.cookies.Set(c, pair.RefreshToken)
	respondOK(c, http.StatusCreated, Response{
		Message:     "User registered successfully",
		AccessToken: pair.AccessToken,
		Data:        gin.H{"id": userID.String()},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and starts a session.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	h.cookies.Set(c, pair.RefreshToken)
	respondOK(c, http.StatusOK, Response{
		Message:     "Login successful",
		AccessToken: pair.AccessToken,
	})
}

// Refresh rotates the refresh cookie into a new token pair.
func (h *Handlers) Refresh(c *gin.Context) {
	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil || cookie == "" {
		respondError(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), cookie)
	if err != nil {
		respondError(c, http.StatusForbidden, "Invalid refresh token")
		return
	}

	h.cookies.Set(c, pair.RefreshToken)
	respondOK(c, http.StatusOK, Response{
		Message:     "Token refreshed",
		AccessToken: pair.AccessToken,
	})
}

// Logout clears the refresh cookie. Idempotent; nothing is verified because
// there is no server-side session state to tear down.
func (h *Handlers) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	respondOK(c, http.StatusOK, Response{Message: "Logout successful"})
}

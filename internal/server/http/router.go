package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LivingPOTATO0/task-manager-backend/internal/token"
)

// NewRouter wires gin routes and middleware.
func NewRouter(h *Handlers, tokens *token.Manager, log *zap.Logger, allowedOrigins []string, production bool) *gin.Engine {
	r := gin.New()
	r.Use(Recovery(log, production))
	r.Use(RequestLogger(log))
	r.Use(CORS(allowedOrigins))

	api := r.Group("/api")
	{
		health := api.Group("/health")
		{
			health.GET("", h.Health)
			health.GET("/db", h.HealthDB)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/refresh", h.Refresh)
			auth.POST("/logout", h.Logout)
		}

		tasks := api.Group("/tasks")
		tasks.Use(AuthRequired(tokens))
		{
			tasks.POST("", h.CreateTask)
			tasks.GET("", h.ListTasks)
			tasks.GET("/:taskId", h.GetTask)
			tasks.PUT("/:taskId", h.UpdateTask)
			tasks.DELETE("/:taskId", h.DeleteTask)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Route not found")
	})

	return r
}

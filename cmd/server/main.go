// Command server starts the task-manager HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/LivingPOTATO0/task-manager-backend/internal/config"
	"github.com/LivingPOTATO0/task-manager-backend/internal/migrate"
	"github.com/LivingPOTATO0/task-manager-backend/internal/repository/postgres"
	httpserver "github.com/LivingPOTATO0/task-manager-backend/internal/server/http"
	"github.com/LivingPOTATO0/task-manager-backend/internal/service"
	"github.com/LivingPOTATO0/task-manager-backend/internal/token"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the API until a
// termination signal arrives.
func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("env", cfg.Environment),
	)

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	userRepo := postgres.NewUserRepo(db)
	taskRepo := postgres.NewTaskRepo(db)

	tokens := token.NewManager(
		[]byte(cfg.AccessTokenSecret), []byte(cfg.RefreshTokenSecret),
		cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
	)
	authSvc := service.NewAuthService(userRepo, tokens, cfg.BcryptCost)
	taskSvc := service.NewTaskService(taskRepo)

	cookies := httpserver.CookiePolicy{MaxAge: cfg.RefreshTokenTTL, Production: cfg.Production()}
	handlers := httpserver.NewHandlers(authSvc, taskSvc, db, cookies, cfg.Production())
	router := httpserver.NewRouter(handlers, tokens, logger, cfg.CORSAllowedOrigins, cfg.Production())

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}

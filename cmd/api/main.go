// Package main is the entry point for the Budget Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/infra/db"
	"github.com/budget-tracker/backend/internal/infra/dependency"
	"github.com/budget-tracker/backend/internal/integration/persistence"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Budget Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"storage_driver", cfg.Storage.Driver,
	)

	// Build the snapshot store for the configured driver
	store, storeHealth, cleanup, err := buildStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize snapshot store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Wire dependencies
	injector := dependency.NewInjector(cfg, store, storeHealth)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Start the goal notification worker
	notifierCtx, stopNotifier := context.WithCancel(context.Background())
	defer stopNotifier()
	if cfg.Notification.WorkerEnabled {
		go injector.Notifier.Start(notifierCtx)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// buildStore creates the snapshot store selected by STORAGE_DRIVER along
// with its health check and cleanup hook.
func buildStore(cfg *config.Config) (adapter.SnapshotStore, func() bool, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		client := redis.NewClient(opts)

		health := func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err() == nil
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close redis client", "error", err)
			}
		}
		return persistence.NewRedisStore(client, cfg.Storage.RedisKey), health, cleanup, nil

	case config.StorageDriverDatabase:
		database, err := db.NewConnection(&cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(&model.SnapshotModel{}); err != nil {
			return nil, nil, nil, err
		}
		slog.Info("Database migrations completed successfully")

		cleanup := func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}
		return persistence.NewGormStore(database.DB()), database.HealthCheck, cleanup, nil

	case config.StorageDriverFile:
		health := func() bool { return true }
		return persistence.NewFileStore(cfg.Storage.FilePath), health, func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

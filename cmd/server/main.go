/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the shift scheduling server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration from environment
  2. Initialize SQLite store
  3. Optionally seed the demo roster (empty database + SEED_DEMO=true)
  4. Configure HTTP router
  5. Start server with graceful shutdown

ENVIRONMENT:
  SERVER_PORT     HTTP port (default 8080)
  DATABASE_PATH   SQLite database path, ":memory:" for in-memory
  CORS_ORIGINS    Comma-separated allowed origins
  SEED_DEMO       Load demo data on first run (default false)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete
  3. Close database connection
  4. Exit

SEE ALSO:
  - config/config.go: Configuration knobs
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/taverna/shift-engine/api"
	"github.com/taverna/shift-engine/config"
	"github.com/taverna/shift-engine/schedule"
	"github.com/taverna/shift-engine/store/sqlite"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.Environment == "production" {
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("failed to initialize database")
	}
	defer store.Close()

	if cfg.SeedDemo {
		if err := seedIfEmpty(store, logger); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	handler := api.NewHandler(store, logger)
	router := api.NewRouter(handler, cfg.CORS.Origins)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("forced shutdown")
	}

	logger.Info().Msg("server stopped")
}

// seedIfEmpty loads the demo roster only when no employees exist, so
// restarting with SEED_DEMO=true does not duplicate data.
func seedIfEmpty(store *sqlite.Store, logger zerolog.Logger) error {
	ctx := context.Background()
	n, err := store.CountEmployees(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info().Int("employees", n).Msg("database not empty, skipping seed")
		return nil
	}
	if err := api.SeedDemo(ctx, store, schedule.DateOf(time.Now())); err != nil {
		return err
	}
	logger.Info().Msg("demo roster seeded")
	return nil
}

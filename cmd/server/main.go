package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/dreamjournal/internal/adapter/httpserver"
	"github.com/pscheid92/dreamjournal/internal/adapter/memory"
	"github.com/pscheid92/dreamjournal/internal/adapter/postgres"
	"github.com/pscheid92/dreamjournal/internal/adapter/redis"
	"github.com/pscheid92/dreamjournal/internal/domain"
	"github.com/pscheid92/dreamjournal/internal/journal"
	"github.com/pscheid92/dreamjournal/internal/platform/config"
	"github.com/pscheid92/dreamjournal/internal/platform/logging"
	"github.com/pscheid92/dreamjournal/internal/sentiment"
)

const startupTimeout = 10 * time.Second

// docstore bundles one backend's stores with its health check and teardown.
type docstore struct {
	entries      domain.DocumentStore
	daybook      domain.DaybookStore
	healthChecks []httpserver.HealthCheck
	close        func()
}

func main() {
	cfg := setupConfig()
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	store := setupDocstore(cfg)
	defer store.close()

	classifier := sentiment.NewClassifier()
	entries := journal.NewEntryStore(store.entries, classifier)
	service := journal.NewService(entries, store.daybook)

	srv := httpserver.NewServer(cfg, service, store.healthChecks)
	done := runGracefulShutdown(srv)

	slog.Info("Dream journal started", "backend", cfg.DocstoreBackend, "env", cfg.AppEnv)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
	slog.Info("Shutdown complete")
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDocstore(cfg *config.Config) docstore {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	switch cfg.DocstoreBackend {
	case config.BackendPostgres:
		return setupPostgres(ctx, cfg)
	case config.BackendRedis:
		return setupRedis(ctx, cfg)
	default:
		slog.Info("Using in-memory document store; entries will not survive restarts")
		store := memory.NewStore(clockwork.NewRealClock())
		return docstore{entries: store, daybook: store, close: func() {}}
	}
}

func setupPostgres(ctx context.Context, cfg *config.Config) docstore {
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return docstore{
		entries: postgres.NewEntryRepository(pool),
		daybook: postgres.NewDaybookRepository(pool),
		healthChecks: []httpserver.HealthCheck{
			{Name: "postgres", Check: pool.Ping},
		},
		close: pool.Close,
	}
}

func setupRedis(ctx context.Context, cfg *config.Config) docstore {
	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}

	return docstore{
		entries: redis.NewEntryStore(client, clockwork.NewRealClock()),
		daybook: redis.NewDaybookStore(client),
		healthChecks: []httpserver.HealthCheck{
			{Name: "redis", Check: func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}},
		},
		close: func() {
			if err := client.Close(); err != nil {
				slog.Error("Failed to close redis client", "error", err)
			}
		},
	}
}

func runGracefulShutdown(srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

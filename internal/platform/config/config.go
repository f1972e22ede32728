// Package config loads and validates service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Docstore backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// DocstoreBackend selects where entries are persisted: memory, postgres, or redis.
	DocstoreBackend string `env:"DOCSTORE_BACKEND" default:"memory"`
	DatabaseURL     string `env:"DATABASE_URL"`
	RedisURL        string `env:"REDIS_URL"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.DocstoreBackend {
	case BackendMemory:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DOCSTORE_BACKEND=%s", BackendPostgres)
		}
	case BackendRedis:
		if cfg.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when DOCSTORE_BACKEND=%s", BackendRedis)
		}
	default:
		return fmt.Errorf("DOCSTORE_BACKEND must be one of %s, %s, %s; got %q",
			BackendMemory, BackendPostgres, BackendRedis, cfg.DocstoreBackend)
	}

	return nil
}

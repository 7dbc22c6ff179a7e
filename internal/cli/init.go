// Package cli provides common initialization for the pocketbook
// command: logging, environment loading, configuration, and opening
// the backing store.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"

	"pocketbook/internal/config"
	"pocketbook/internal/kv"
	applog "pocketbook/internal/log"
	"pocketbook/internal/storage"
)

// SetupLogger initializes structured logging with default settings
// and installs it as the process default.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadConfig loads configuration and validates it.
func LoadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenStore opens the configured key-value backend.
func OpenStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.DataBackend {
	case "memory":
		return kv.NewMemory(), nil
	case "sqlite":
		store, err := kv.NewSQLite(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.DataBackend)
}

// OpenRepository opens the store and wires the repository over it.
// The returned cleanup closes the store.
func OpenRepository(cfg *config.Config) (*storage.Repository, func() error, error) {
	store, err := OpenStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	repo := storage.New(store)
	repo.SetDefaultGoal(cfg.DefaultGoal)
	return repo, store.Close, nil
}

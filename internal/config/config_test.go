package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				DataBackend: "sqlite",
				DBPath:      "./test.db",
				DefaultGoal: decimal.NewFromInt(1000),
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend: "memory",
				DefaultGoal: decimal.NewFromInt(1000),
			},
			wantErr: false,
		},
		{
			name: "invalid data backend",
			config: Config{
				DataBackend: "sheets",
				DefaultGoal: decimal.NewFromInt(1000),
			},
			wantErr:     true,
			errorString: "invalid data backend 'sheets': must be one of [memory sqlite]",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				DataBackend: "sqlite",
				DBPath:      "",
				DefaultGoal: decimal.NewFromInt(1000),
			},
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name: "non-positive default goal",
			config: Config{
				DataBackend: "memory",
				DefaultGoal: decimal.Zero,
			},
			wantErr:     true,
			errorString: "invalid default goal 0: must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestConfig_ValidateCreatesDBDirectory(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		DataBackend: "sqlite",
		DBPath:      filepath.Join(dir, "nested", "pocketbook.db"),
		DefaultGoal: decimal.NewFromInt(1000),
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("unexpected default backend: %q", cfg.DataBackend)
	}
	if cfg.DBPath == "" {
		t.Fatalf("expected a default db path")
	}
	if !cfg.DefaultGoal.Equal(decimal.NewFromInt(1_000_000)) {
		t.Fatalf("unexpected default goal: %s", cfg.DefaultGoal)
	}
	if cfg.ClearGoalOnReset {
		t.Fatalf("reset must keep the goal by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("POCKETBOOK_BACKEND", "memory")
	t.Setenv("POCKETBOOK_DEFAULT_GOAL", "2500")
	t.Setenv("POCKETBOOK_CLEAR_GOAL_ON_RESET", "true")

	cfg := Load()
	if cfg.DataBackend != "memory" {
		t.Fatalf("env backend not applied: %q", cfg.DataBackend)
	}
	if !cfg.DefaultGoal.Equal(decimal.NewFromInt(2500)) {
		t.Fatalf("env goal not applied: %s", cfg.DefaultGoal)
	}
	if !cfg.ClearGoalOnReset {
		t.Fatalf("env clear-goal flag not applied")
	}
}

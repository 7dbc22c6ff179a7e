package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Config struct {
	// Database
	DBPath string

	// Backend selection
	DataBackend string

	// Goal reported before the user sets one
	DefaultGoal decimal.Decimal

	// Whether a full reset also removes the stored goal amount. The
	// app historically left it in place.
	ClearGoalOnReset bool
}

func Load() *Config {
	cfg := &Config{
		DBPath:           getEnv("POCKETBOOK_DB_PATH", "./data/pocketbook.db"),
		DataBackend:      getEnv("POCKETBOOK_BACKEND", "sqlite"),
		DefaultGoal:      getEnvDecimal("POCKETBOOK_DEFAULT_GOAL", decimal.NewFromInt(1_000_000)),
		ClearGoalOnReset: getEnvBool("POCKETBOOK_CLEAR_GOAL_ON_RESET", false),
	}
	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	if c.DataBackend == "sqlite" {
		if c.DBPath == "" {
			errors = append(errors, "database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.DBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.DefaultGoal.Sign() <= 0 {
		errors = append(errors, fmt.Sprintf("invalid default goal %s: must be positive", c.DefaultGoal))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Database. Driver is "sqlite" or "postgres"; DatabaseURL is only
	// consulted for postgres, DBPath only for sqlite.
	DBDriver    string
	DBPath      string
	DatabaseURL string

	// Ranking
	EloKFactor   float64
	HistoryLimit int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("TASKELO_ENV", "development"),
		LogLevel:  getEnv("TASKELO_LOG_LEVEL", "info"),
		LogFormat: getEnv("TASKELO_LOG_FORMAT", ""),

		DBDriver:    getEnv("TASKELO_DB_DRIVER", "sqlite"),
		DBPath:      getEnv("TASKELO_DB_PATH", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		EloKFactor:   getFloatEnv("TASKELO_ELO_K", 32),
		HistoryLimit: getIntEnv("TASKELO_HISTORY_LIMIT", 20),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

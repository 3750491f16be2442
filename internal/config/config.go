package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process-wide configuration. It is loaded once at startup
// and treated as read-only afterwards.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	DatabaseURL string

	// Session settings. SessionSecret signs every session token; rotating it
	// invalidates all outstanding sessions.
	SessionSecret string
	SessionMaxAge time.Duration

	// Seed values for the primary administrator account (user id 1),
	// applied only when the users table is empty.
	AdminPassword  string
	AdminFirstName string
	AdminLastName  string
}

// LoadConfig reads configuration from .env (if present) and the environment.
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8000"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin"),
		AdminFirstName: getEnv("ADMIN_FIRST_NAME", "System"),
		AdminLastName:  getEnv("ADMIN_LAST_NAME", "Administrator"),
	}

	maxAge, err := strconv.Atoi(getEnv("SESSION_MAX_AGE", "3600"))
	if err != nil || maxAge <= 0 {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE: %q", os.Getenv("SESSION_MAX_AGE"))
	}
	cfg.SessionMaxAge = time.Duration(maxAge) * time.Second

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

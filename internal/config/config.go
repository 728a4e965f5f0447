// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, rate limits, the usage log database, and observability sinks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	Debug           bool // Debug mode exposes internal error details in replies
	ShutdownTimeout time.Duration

	// Time Configuration
	Timezone string // IANA timezone name used for "today"/"tomorrow" resolution

	// Data Configuration
	DataDir        string        // Data directory for the SQLite usage log
	UsageRetention time.Duration // How long per-intent usage rows are kept

	// Rate Limiting (Token Bucket Algorithm)
	ChatRateLimitBurst     float64 // Maximum burst tokens per client IP
	ChatRateLimitPerSec    float64 // Tokens refilled per second per client IP
	RateLimitCleanupPeriod time.Duration

	// Metrics Authentication
	MetricsUsername string // Username for /metrics endpoint Basic Auth
	MetricsPassword string // Password for /metrics endpoint Basic Auth (empty = no auth)

	// Better Stack log shipping (optional)
	BetterStackToken    string
	BetterStackEndpoint string

	// Sentry error reporting via Better Stack (optional)
	SentryToken string
	SentryHost  string
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Debug:           getBoolEnv("DEBUG", false),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),

		Timezone: getEnv("TIMEZONE", "Local"),

		DataDir:        getEnv("DATA_DIR", getDefaultDataDir()),
		UsageRetention: getDurationEnv("USAGE_RETENTION", 90*24*time.Hour),

		ChatRateLimitBurst:     getFloatEnv("CHAT_RATE_LIMIT_BURST", 10.0),
		ChatRateLimitPerSec:    getFloatEnv("CHAT_RATE_LIMIT_PER_SEC", 0.5), // 1 per 2s
		RateLimitCleanupPeriod: getDurationEnv("RATE_LIMIT_CLEANUP_PERIOD", 5*time.Minute),

		MetricsUsername: getEnv("METRICS_USERNAME", "prometheus"),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),

		BetterStackToken:    getEnv("BETTERSTACK_TOKEN", ""),
		BetterStackEndpoint: getEnv("BETTERSTACK_ENDPOINT", "https://in.logs.betterstack.com"),

		SentryToken: getEnv("SENTRY_TOKEN", ""),
		SentryHost:  getEnv("SENTRY_HOST", "errors.betterstack.com"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("DATA_DIR is required"))
	}
	if c.UsageRetention <= 0 {
		errs = append(errs, fmt.Errorf("USAGE_RETENTION must be positive, got %v", c.UsageRetention))
	}
	if c.ChatRateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("CHAT_RATE_LIMIT_BURST must be positive, got %v", c.ChatRateLimitBurst))
	}
	if c.ChatRateLimitPerSec <= 0 {
		errs = append(errs, fmt.Errorf("CHAT_RATE_LIMIT_PER_SEC must be positive, got %v", c.ChatRateLimitPerSec))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// SQLitePath returns the full path to the SQLite usage log database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "usage.db")
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getDefaultDataDir returns platform-specific default data directory
func getDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		return "./data"
	}
	return "/data"
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment after an
// optional .env file has been loaded.
type Config struct {
	Port            string
	DatabaseURL     string
	AutoMigrate     bool
	CORSOrigins     string
	AuthRateLimit   int
	AuthRateWindow  time.Duration
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load reads the configuration. A missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var (
		cfg Config
		err error
	)
	if cfg.DatabaseURL, err = RequiredString("DATABASE_URL"); err != nil {
		return cfg, err
	}
	if cfg.Port, err = Port("PORT", "8000"); err != nil {
		return cfg, err
	}
	if cfg.AutoMigrate, err = Bool("AUTO_MIGRATE", true); err != nil {
		return cfg, err
	}
	if cfg.AuthRateLimit, err = Int("AUTH_RATE_LIMIT", 20); err != nil {
		return cfg, err
	}
	if cfg.AuthRateLimit < 0 {
		return cfg, fmt.Errorf("AUTH_RATE_LIMIT must not be negative (got %d)", cfg.AuthRateLimit)
	}
	if cfg.AuthRateWindow, err = Duration("AUTH_RATE_WINDOW", time.Minute); err != nil {
		return cfg, err
	}
	if cfg.ShutdownTimeout, err = Duration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return cfg, err
	}
	cfg.CORSOrigins = String("CORS_ORIGINS", "*")
	cfg.LogLevel = strings.ToLower(String("LOG_LEVEL", "info"))
	return cfg, nil
}

// String returns the value of key, or fallback when it is unset or empty.
func String(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// RequiredString returns the value of key and fails when it is unset.
func RequiredString(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

// Port returns key (or fallback) after checking it is a TCP port number.
func Port(key, fallback string) (string, error) {
	v := String(key, fallback)
	p, err := strconv.Atoi(v)
	if err != nil || p < 1 || p > 65535 {
		return "", fmt.Errorf("%s must be a valid TCP port (got %q)", key, v)
	}
	return v, nil
}

// Bool parses key with strconv.ParseBool.
func Bool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean (got %q)", key, v)
	}
	return b, nil
}

// Int parses key as a decimal integer.
func Int(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (got %q)", key, v)
	}
	return n, nil
}

// Duration parses key with time.ParseDuration; the result must be positive.
func Duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration (got %q)", key, v)
	}
	return d, nil
}

// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Dataset served by the API
	DataPath string

	// Search
	MaxQueryLength int

	// HTTP timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Logging
	Debug bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("TOCVIEW_PORT", "8080"),

		DataPath: os.Getenv("TOCVIEW_DATA"),

		MaxQueryLength: envInt("TOCVIEW_MAX_QUERY_LENGTH", 256),

		ReadTimeout:     envDuration("TOCVIEW_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    envDuration("TOCVIEW_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: envDuration("TOCVIEW_SHUTDOWN_TIMEOUT", 10*time.Second),

		Debug: envBool("TOCVIEW_DEBUG", false),
	}

	if cfg.MaxQueryLength <= 0 {
		cfg.MaxQueryLength = 256
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("TOCVIEW_DATA is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server and CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// LogFormat selects the slog handler: "json" (default) or "text",
	// which uses tint for colored human-readable output.
	LogFormat string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies on the HTTP server. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Logging holds the settings shared by the API server and the CLI.
type Logging struct {
	// Level is the minimum log level. Defaults to "info".
	Level string

	// Format is "json" (default) or "text".
	Format string
}

// LoadLogging reads only LOG_LEVEL and LOG_FORMAT, so callers that never
// serve HTTP are not failed by server-only settings.
func LoadLogging() (Logging, error) {
	l := Logging{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}
	if l.Format != "json" && l.Format != "text" {
		return Logging{}, fmt.Errorf("invalid environment variables: LOG_FORMAT")
	}
	return l, nil
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing every variable whose value is invalid.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var invalid []string

	if l, err := LoadLogging(); err != nil {
		invalid = append(invalid, "LOG_FORMAT")
	} else {
		cfg.LogLevel, cfg.LogFormat = l.Level, l.Format
	}

	n, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || n <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = n

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

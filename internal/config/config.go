// Package config centralises configuration parsing for the fittracker API.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration values for the HTTP API.
type Config struct {
	HTTPAddress     string
	JWTSecret       string
	JWTIssuer       string
	AuthDisabled    bool          // Serves every route without bearer tokens; local dev only.
	CORSOrigin      string        // Empty disables CORS headers.
	ShutdownTimeout time.Duration // Grace period for in-flight requests on SIGINT/SIGTERM.
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:       getEnv("JWT_ISSUER", "fittracker.local"),
		AuthDisabled:    getBoolEnv("AUTH_DISABLED", false),
		CORSOrigin:      getEnv("CORS_ORIGIN", ""),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
)

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables injected by the deployment
// manifests; nothing else is read from disk.
type AppConfig struct {
	// AppName identifies the service in probe and status payloads.
	AppName string
	// Version is the deployed version string reported by /api/status.
	Version string
	// Environment is the deployment environment name (development, staging, production).
	Environment string
	Port        string
	// MetricsEnabled controls whether the Prometheus middleware and the
	// /metrics scrape endpoint are installed.
	MetricsEnabled bool
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppName:        getEnv("APP_NAME", "demo-api"),
		Version:        getEnv("APP_VERSION", "1.0.0"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		Port:           getEnv("PORT", "8080"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

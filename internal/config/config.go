package config

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration.
type Config struct {
	JobServiceURL string
	LogLevel      zerolog.Level
}

// Load loads application configuration from environment variables.
func Load() *Config {
	return &Config{
		JobServiceURL: getEnvOrDefault("JOB_SERVICE_URL", "http://localhost:8000"),
		LogLevel:      getLogLevel(),
	}
}

// Init initializes logging from the loaded configuration.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(c.LogLevel)

	log.Info().
		Str("job_service_url", c.JobServiceURL).
		Str("log_level", c.LogLevel.String()).
		Msg("Application configuration loaded")
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getLogLevel parses log level from environment or returns default.
func getLogLevel() zerolog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

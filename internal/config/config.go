package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
// Note: This is a stateless configuration - no database needed, all
// project state is held in memory and generation is simulated
type Config struct {
	// Environment
	Environment string
	Port        string

	// Simulated backend latencies
	GenerationDelay     time.Duration // full-track generation
	SectionDelay        time.Duration // section-only generation
	InterpretationDelay time.Duration // note interpretation

	// Version history cap per project (0 = unbounded)
	VersionRetentionLimit int

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	CloudWatchEnabled bool   // Feature flag for CloudWatch metrics

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from an upstream gateway
	AuthMode string
}

func Load() *Config {
	return &Config{
		Environment:           getEnv("ENVIRONMENT", "development"),
		Port:                  getEnv("PORT", "8080"),
		GenerationDelay:       getEnvMillis("GENERATION_DELAY_MS", 2000),
		SectionDelay:          getEnvMillis("SECTION_GENERATION_DELAY_MS", 1500),
		InterpretationDelay:   getEnvMillis("INTERPRETATION_DELAY_MS", 1000),
		VersionRetentionLimit: getEnvInt("VERSION_RETENTION_LIMIT", 0),
		SentryDSN:             getEnv("SENTRY_DSN", ""),
		CloudWatchEnabled:     getEnv("CLOUDWATCH_ENABLED", "false") == "true",
		AuthMode:              getEnv("AUTH_MODE", "none"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvMillis(key string, defaultValue int) time.Duration {
	return time.Duration(getEnvInt(key, defaultValue)) * time.Millisecond
}

// IsProduction returns true for production deployments
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsGatewayMode returns true if running behind an auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// Package config loads runtime settings from the environment
package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
type Config struct {
	Environment string
	Port        int

	// Generation defaults
	Scale string

	// MIDI export
	Tonic uint8   // MIDI note number of middle-octave S
	Tempo float64 // beats per minute

	// Observability
	SentryDSN string
}

// Load reads the configuration from environment variables. Callers load a
// .env file first when one is present.
func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnvInt("PORT", 8080),
		Scale:       getEnv("ALANKAR_SCALE", "SRGMPDN"),
		Tonic:       uint8(clamp(getEnvInt("ALANKAR_TONIC", 60), 0, 127)),
		Tempo:       getEnvFloat("ALANKAR_TEMPO", 120),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
	}
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

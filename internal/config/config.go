// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress     string
	StaticDir       string
	KafkaBrokers    []string
	RosterTopic     string
	EventsEnabled   bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		StaticDir:       getEnv("STATIC_DIR", "./static"),
		RosterTopic:     getEnv("ROSTER_TOPIC", "roster_events"),
		EventsEnabled:   getBoolEnv("EVENTS_ENABLED", false),
		ReadTimeout:     getDurationEnv("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDurationEnv("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     getDurationEnv("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	brokers := getEnv("KAFKA_BROKERS", "kafka:9092")
	cfg.KafkaBrokers = splitAndTrim(brokers)
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
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

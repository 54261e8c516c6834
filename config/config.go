// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every tunable of the server, the worker and the terminal UI.
type Config struct {
	Port            string
	DatabaseURL     string // Postgres DSN; empty selects SQLite
	SQLitePath      string
	CatalogPath     string // optional YAML catalog, empty uses the built-in seed
	AllowedOrigins  []string
	NotificationTTL time.Duration
	AdvanceDelay    time.Duration // pause between sign-up and the questionnaire
	ClockInterval   time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "3003"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      getEnv("SQLITE_PATH", "gpsshowcase.db"),
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		NotificationTTL: getDuration("NOTIFICATION_TTL", 3*time.Second),
		AdvanceDelay:    getDuration("SIGNUP_ADVANCE_DELAY", 1500*time.Millisecond),
		ClockInterval:   getDuration("CLOCK_INTERVAL", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %v", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

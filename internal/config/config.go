package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP server
	Port string

	// Dataset backend: json, memory or sqlite
	DataBackend string

	// JSON fixture path (json backend)
	FixturePath string

	// SQLite snapshot path (sqlite backend)
	SQLiteDBPath string

	// Report cache
	CacheTTL     time.Duration
	CacheEntries int

	// Logging
	LogLevel slog.Level
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8081"),
		DataBackend:  getEnv("DATA_BACKEND", "json"),
		FixturePath:  getEnv("FIXTURE_PATH", "./data/userdata.json"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/denizkartim.db"),
		CacheTTL:     getEnvDuration("CACHE_TTL", 5*time.Minute),
		CacheEntries: getEnvInt("CACHE_ENTRIES", 100),
		LogLevel:     getEnvLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

// Validate checks the configuration, collecting every problem into one error.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "json", "memory", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [json memory sqlite]", c.DataBackend))
	}

	if c.DataBackend == "json" {
		if c.FixturePath == "" {
			errs = append(errs, "fixture path cannot be empty when using json backend")
		} else if _, err := os.Stat(c.FixturePath); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("fixture file does not exist: %s", c.FixturePath))
		}
	}

	if c.DataBackend == "sqlite" && c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite snapshot path cannot be empty when using sqlite backend")
	}

	if c.CacheTTL < time.Second {
		errs = append(errs, fmt.Sprintf("invalid cache TTL %v: must be at least 1 second", c.CacheTTL))
	}
	if c.CacheEntries < 1 {
		errs = append(errs, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheEntries))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return defaultValue
	}
}

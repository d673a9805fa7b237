package config

import (
	"log/slog"
	"path/filepath"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "FIXTURE_PATH", "SQLITE_DB_PATH", "CACHE_TTL", "CACHE_ENTRIES", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()
	if cfg.Port != "8081" {
		t.Errorf("Port = %s, want 8081", cfg.Port)
	}
	if cfg.DataBackend != "json" {
		t.Errorf("DataBackend = %s, want json", cfg.DataBackend)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9090" || cfg.DataBackend != "memory" || cfg.CacheTTL != 30*time.Second || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	fixture := filepath.Join(t.TempDir(), "userdata.json")
	if err := os.WriteFile(fixture, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	valid := &Config{
		Port:         "8081",
		DataBackend:  "json",
		FixturePath:  fixture,
		SQLiteDBPath: "x.db",
		CacheTTL:     time.Minute,
		CacheEntries: 10,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Port = "nope" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"bad backend", func(c *Config) { c.DataBackend = "postgres" }, "invalid data backend"},
		{"missing fixture", func(c *Config) { c.FixturePath = "/does/not/exist.json" }, "does not exist"},
		{"empty sqlite path", func(c *Config) { c.DataBackend = "sqlite"; c.SQLiteDBPath = "" }, "cannot be empty"},
		{"tiny ttl", func(c *Config) { c.CacheTTL = time.Millisecond }, "cache TTL"},
		{"zero cache", func(c *Config) { c.CacheEntries = 0 }, "cache size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

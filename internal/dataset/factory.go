package dataset

import (
	"fmt"
	"log/slog"

	"denizkartim/internal/config"
	"denizkartim/internal/core"
	"denizkartim/internal/dataset/jsonfile"
	"denizkartim/internal/dataset/memory"
	"denizkartim/internal/storage"
)

// BackendType selects a dataset backend.
type BackendType string

const (
	JSONBackend   BackendType = "json"
	MemoryBackend BackendType = "memory"
	SQLiteBackend BackendType = "sqlite"
)

// IsValid returns true if the backend type is known.
func (bt BackendType) IsValid() bool {
	switch bt {
	case JSONBackend, MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result holds the opened reader and an optional cleanup.
type Result struct {
	Reader  Reader
	Cleanup CleanupFunc
}

// Open builds the dataset reader selected by the application config.
func Open(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch BackendType(cfg.DataBackend) {
	case JSONBackend:
		logger.Info("Initialized JSON fixture backend", "backend", cfg.DataBackend, "path", cfg.FixturePath)
		return &Result{Reader: jsonfile.New(cfg.FixturePath)}, nil
	case MemoryBackend:
		logger.Info("Initialized memory backend", "backend", cfg.DataBackend)
		return &Result{Reader: memory.New(&core.Dataset{})}, nil
	case SQLiteBackend:
		repo, err := storage.NewSnapshotRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite snapshot: %w", err)
		}
		logger.Info("Initialized SQLite snapshot backend", "backend", cfg.DataBackend, "db_path", cfg.SQLiteDBPath)
		return &Result{Reader: repo, Cleanup: repo.Close}, nil
	default:
		return nil, fmt.Errorf("invalid data backend: %s", cfg.DataBackend)
	}
}

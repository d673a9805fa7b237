// Command fixture-import loads the JSON fixture and writes it into the
// SQLite snapshot used by the sqlite data backend.
package main

import (
	"context"
	"os"
	"time"

	"denizkartim/internal/config"
	"denizkartim/internal/dataset/jsonfile"
	applog "denizkartim/internal/log"
	"denizkartim/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{Level: cfg.LogLevel, Component: applog.ComponentImport})
	applog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	data, err := jsonfile.New(cfg.FixturePath).Load(ctx)
	if err != nil {
		logger.Error("Failed to load fixture", applog.FieldError, err, "path", cfg.FixturePath)
		os.Exit(1)
	}

	repo, err := storage.NewSnapshotRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open snapshot database", applog.FieldError, err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close snapshot database", applog.FieldError, err)
		}
	}()

	if err := repo.Import(ctx, data); err != nil {
		logger.Error("Import failed", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Snapshot imported",
		"path", cfg.SQLiteDBPath,
		"connections", len(data.Meta),
		"accounts", len(data.Accounts),
		"cards", len(data.Cards))
}

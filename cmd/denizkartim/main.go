package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"denizkartim/internal/config"
	"denizkartim/internal/dataset"
	apphttp "denizkartim/internal/http"
	"denizkartim/internal/insights"
	applog "denizkartim/internal/log"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; env vars win.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{Level: cfg.LogLevel, Component: applog.ComponentApp})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err)
		os.Exit(1)
	}

	backend, err := dataset.Open(cfg, logger.Logger)
	if err != nil {
		logger.Error("Failed to open dataset backend", applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	if backend.Cleanup != nil {
		defer func() {
			if err := backend.Cleanup(); err != nil {
				logger.Error("Backend cleanup error", applog.FieldError, err)
			}
		}()
	}

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	data, err := backend.Reader.Load(loadCtx)
	loadCancel()
	if err != nil {
		logger.Error("Failed to load dataset", applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	logger.Info("Dataset loaded",
		applog.FieldBackend, cfg.DataBackend,
		"accounts", len(data.Accounts),
		"cards", len(data.Cards))

	service := insights.NewService(data)

	srv := apphttp.NewServer(":"+cfg.Port, service, apphttp.CacheOptions{
		TTL:        cfg.CacheTTL,
		MaxEntries: cfg.CacheEntries,
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting denizkartim server", "port", cfg.Port, applog.FieldBackend, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dineatlas/directory-backend/internal/config"
	"github.com/dineatlas/directory-backend/internal/docstore"
	"github.com/dineatlas/directory-backend/internal/identity"
	"github.com/dineatlas/directory-backend/internal/logging"
	"github.com/dineatlas/directory-backend/internal/server"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	ctx := context.Background()
	store, err := docstore.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open document store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}

	verifier, err := identity.New(cfg)
	if err != nil {
		slog.Error("failed to configure identity verifier", "provider", cfg.AuthProvider, "error", err)
		os.Exit(1)
	}

	storeLogs := logging.NewStoreHandler(store)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		storeLogs,
	)))

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			TracesSampleRate: 0.1,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	app := server.New(cfg, store, verifier)

	go func() {
		slog.Info("starting server", "port", cfg.Port, "store", store.Backend())
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	storeLogs.Stop()
	sentry.Flush(2 * time.Second)
	if err := store.Close(); err != nil {
		slog.Error("store close error", "error", err)
	}
}

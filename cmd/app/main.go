package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skarn-dev/rupture-planner/internal/catalog"
	"github.com/skarn-dev/rupture-planner/internal/config"
	"github.com/skarn-dev/rupture-planner/internal/metrics"
	"github.com/skarn-dev/rupture-planner/internal/planner"
	"github.com/skarn-dev/rupture-planner/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	// Load the game data snapshot before accepting traffic. A planner with
	// no catalog can only return 503s.
	loader := catalog.NewLoaderWithSchema(cfg.SchemaPath)
	snapshot, err := loader.Load(cfg.DataPath)
	if err != nil {
		slog.Error("Failed to load game data snapshot", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}

	provider := catalog.NewProvider()
	provider.Swap(snapshot)
	metrics.RecordCatalogLoad(map[string]int{
		"items":        len(snapshot.Data().Items),
		"recipes":      len(snapshot.Data().Recipes),
		"buildings":    len(snapshot.Data().Buildings),
		"schematics":   len(snapshot.Data().Schematics),
		"corporations": len(snapshot.Data().Corporations),
	})
	slog.Info("Game data snapshot loaded",
		"path", cfg.DataPath,
		"version", snapshot.Version(),
		"items", len(snapshot.Data().Items),
		"recipes", len(snapshot.Data().Recipes))

	service, err := planner.NewService(provider, cfg.PlanCacheSize)
	if err != nil {
		slog.Error("Failed to create planner service", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
		DataPath:       cfg.DataPath,
	}, provider, service, loader)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

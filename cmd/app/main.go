// @title Tournament Rewards API
// @version 1.0
// @description Tournament lifecycle and reward distribution engine
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/tournament-rewards/internal/bootstrap"
	"github.com/osse101/tournament-rewards/internal/config"
	"github.com/osse101/tournament-rewards/internal/database"
	"github.com/osse101/tournament-rewards/internal/server"
	"github.com/osse101/tournament-rewards/migrations"
)

// shutdownTimeout bounds the whole graceful shutdown sequence
const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		migrator, err := database.NewMigrator(pool, migrations.FS)
		if err != nil {
			return err
		}
		err = migrator.Up(ctx)
		_ = migrator.Close()
		if err != nil {
			return err
		}
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(pool)
	svcs, err := bootstrap.InitializeServices(ctx, cfg, repos, publisher)
	if err != nil {
		return err
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Config:   cfg,
	}); err != nil {
		return err
	}

	workers := bootstrap.StartWorkers(cfg, svcs.Rewards)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Dependencies{
		DBPool:      pool,
		Rewards:     svcs.Rewards,
		Tournaments: svcs.Tournament,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Workers:            workers,
		ResilientPublisher: publisher,
	})

	return err
}

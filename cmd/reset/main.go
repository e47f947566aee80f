// Command reset drops and recreates the configured database. Development only.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/tournament-rewards/internal/config"
	"github.com/osse101/tournament-rewards/internal/database"
	"github.com/osse101/tournament-rewards/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Environment == logger.EnvironmentProduction {
		slog.Error("Refusing to reset a production database", "db_name", cfg.DBName)
		os.Exit(1)
	}

	if err := reset(context.Background(), cfg); err != nil {
		slog.Error("Database reset failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database reset complete; run 'rewardsctl migrate up' to apply migrations", "db_name", cfg.DBName)
}

func reset(ctx context.Context, cfg *config.Config) error {
	// Connect to the maintenance database so the target can be dropped
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	pool, err := database.NewPool(serverConnString, 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL server: %w", err)
	}
	defer pool.Close()

	slog.Info("Terminating existing connections", "db_name", cfg.DBName)
	if _, err := pool.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
		slog.Warn("Failed to terminate connections", "error", err)
	}

	ident := pgx.Identifier{cfg.DBName}.Sanitize()
	if _, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}
	if _, err := pool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/osse101/tournament-rewards/internal/bootstrap"
	"github.com/osse101/tournament-rewards/internal/config"
	"github.com/osse101/tournament-rewards/internal/database"
	"github.com/osse101/tournament-rewards/migrations"
)

const (
	flagTournament = "tournament"
	flagForce      = "force"
	flagActor      = "actor"
	flagReason     = "reason"

	defaultActor    = "rewardsctl"
	shutdownTimeout = 10 * time.Second
)

func tournamentFlag() cli.Flag {
	return &cli.Int64Flag{Name: flagTournament, Aliases: []string{"t"}, Usage: "tournament id", Required: true}
}

func actorFlag() cli.Flag {
	return &cli.StringFlag{Name: flagActor, Usage: "actor recorded in the audit trail", Value: defaultActor}
}

// session is what every command needs: config, an open pool and the services over it
type session struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	services *bootstrap.Services
	shutdown func()
}

func connect() (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

// newSession wires services the same way cmd/app does so events and announcements fire
func newSession(c *cli.Context) (*session, error) {
	cfg, pool, err := connect()
	if err != nil {
		return nil, err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		pool.Close()
		return nil, err
	}
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{EventBus: bus, Config: cfg}); err != nil {
		pool.Close()
		return nil, err
	}

	svcs, err := bootstrap.InitializeServices(c.Context, cfg, bootstrap.InitializeRepositories(pool), publisher)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &session{
		cfg:      cfg,
		pool:     pool,
		services: svcs,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{ResilientPublisher: publisher})
			pool.Close()
		},
	}, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newMigrateCommand() *cli.Command {
	withMigrator := func(fn func(ctx context.Context, m *database.Migrator) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			_, pool, err := connect()
			if err != nil {
				return err
			}
			defer pool.Close()

			m, err := database.NewMigrator(pool, migrations.FS)
			if err != nil {
				return err
			}
			defer m.Close()
			return fn(c.Context, m)
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withMigrator(func(ctx context.Context, m *database.Migrator) error {
					return m.Up(ctx)
				}),
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: withMigrator(func(ctx context.Context, m *database.Migrator) error {
					return m.Down(ctx)
				}),
			},
			{
				Name:  "status",
				Usage: "list migrations and whether they are applied",
				Action: withMigrator(func(ctx context.Context, m *database.Migrator) error {
					statuses, err := m.Status(ctx)
					if err != nil {
						return err
					}
					for _, s := range statuses {
						state := "pending"
						if s.Applied {
							state = "applied"
						}
						fmt.Printf("%05d  %-8s %s\n", s.Version, state, s.Source)
					}
					return nil
				}),
			},
		},
	}
}

func newDistributeCommand() *cli.Command {
	return &cli.Command{
		Name:  "distribute",
		Usage: "distribute rewards for a COMPLETED tournament",
		Flags: []cli.Flag{
			tournamentFlag(),
			&cli.BoolFlag{Name: flagForce, Usage: "re-run over an already distributed tournament"},
			actorFlag(),
		},
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			defer s.shutdown()

			result, err := s.services.Rewards.Distribute(c.Context, c.Int64(flagTournament), c.Bool(flagForce), c.String(flagActor))
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func newResetCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "move a REWARDS_DISTRIBUTED tournament back to COMPLETED",
		Flags: []cli.Flag{
			tournamentFlag(),
			&cli.StringFlag{Name: flagReason, Usage: "audit reason", Required: true},
			actorFlag(),
		},
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			defer s.shutdown()

			change, err := s.services.Tournament.ResetToCompleted(c.Context, c.Int64(flagTournament), c.String(flagActor), c.String(flagReason))
			if err != nil {
				return err
			}
			return printJSON(change)
		},
	}
}

func newPurgeCommand() *cli.Command {
	return &cli.Command{
		Name:  "purge",
		Usage: "delete a tournament that no ledger transaction references",
		Flags: []cli.Flag{
			tournamentFlag(),
			actorFlag(),
		},
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			defer s.shutdown()

			id := c.Int64(flagTournament)
			if err := s.services.Tournament.Purge(c.Context, id, c.String(flagActor)); err != nil {
				return err
			}
			fmt.Printf("tournament %d purged\n", id)
			return nil
		},
	}
}

package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/tournament-rewards/internal/database"
	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/migrations"
)

var (
	testPool    *pgxpool.Pool
	testPoolErr error
	testPoolMux sync.Mutex
)

// setupTestDB starts one postgres container per package run and applies the goose migrations.
// The test is skipped in short mode or when Docker is unavailable.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testPoolMux.Lock()
	defer testPoolMux.Unlock()

	if testPool == nil && testPoolErr == nil {
		testPool, testPoolErr = startPostgres(t)
	}
	if testPoolErr != nil {
		t.Skipf("Skipping integration test: %v", testPoolErr)
	}
	return testPool
}

func startPostgres(t *testing.T) (pool *pgxpool.Pool, err error) {
	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("postgres container panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		return nil, err
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	pool, err = database.NewPool(connStr, 10, time.Minute, time.Hour)
	if err != nil {
		return nil, err
	}

	migrator, err := database.NewMigrator(pool, migrations.FS)
	if err != nil {
		return nil, err
	}
	defer migrator.Close()

	if err := migrator.Up(ctx); err != nil {
		return nil, err
	}
	return pool, nil
}

type seedTournament struct {
	name           string
	state          domain.LifecycleState
	specialization string
	policy         string
	typeID         *int64
	autoDistribute bool
	completedAt    *time.Time
}

// insertTournament writes a tournament row directly, bypassing the lifecycle
func insertTournament(ctx context.Context, t *testing.T, pool *pgxpool.Pool, s seedTournament) int64 {
	t.Helper()
	var policy []byte
	if s.policy != "" {
		policy = []byte(s.policy)
	}

	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO tournaments (name, tournament_type_id, specialization, lifecycle_state, reward_policy, auto_distribute, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		s.name, s.typeID, s.specialization, string(s.state), policy, s.autoDistribute, s.completedAt,
	).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert tournament: %v", err)
	}
	return id
}

func insertTournamentType(ctx context.Context, t *testing.T, pool *pgxpool.Pool, key string, policy json.RawMessage) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(ctx, `
		INSERT INTO tournament_types (type_key, display_name, default_reward_policy)
		VALUES ($1, $1, $2)
		RETURNING id`, key, []byte(policy)).Scan(&id)
	if err != nil {
		t.Fatalf("failed to insert tournament type: %v", err)
	}
	return id
}

// insertRankings stores one ranking per participant; the slice index + 1 is the rank
func insertRankings(ctx context.Context, t *testing.T, pool *pgxpool.Pool, tournamentID int64, participants ...uuid.UUID) {
	t.Helper()
	for i, p := range participants {
		_, err := pool.Exec(ctx,
			`INSERT INTO rankings (tournament_id, participant_id, rank) VALUES ($1, $2, $3)`,
			tournamentID, p, i+1)
		if err != nil {
			t.Fatalf("failed to insert ranking: %v", err)
		}
	}
}

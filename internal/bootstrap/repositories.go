package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/tournament-rewards/internal/database/postgres"
	"github.com/osse101/tournament-rewards/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Rewards    repository.Rewards
	Tournament repository.Tournament
}

// InitializeRepositories creates all repository implementations over one pool
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Rewards:    postgres.NewRewardsRepository(dbPool),
		Tournament: postgres.NewTournamentRepository(dbPool),
	}
}

package repository

import (
	"context"

	"github.com/osse101/tournament-rewards/internal/domain"
)

// Tournament defines the data access required by the lifecycle administration service
type Tournament interface {
	GetTournament(ctx context.Context, id int64) (*domain.Tournament, error)
	ListStatusHistory(ctx context.Context, tournamentID int64) ([]domain.StatusChange, error)

	// Transaction support
	BeginTournamentTx(ctx context.Context) (TournamentTx, error)
}

// TournamentTx extends Tx with lifecycle administration operations
type TournamentTx interface {
	Tx // Commit, Rollback

	GetTournament(ctx context.Context, id int64) (*domain.Tournament, error)
	UpdateTournamentStateIfMatches(ctx context.Context, id int64, expectedState, newState domain.LifecycleState) (int64, error)
	InsertStatusChange(ctx context.Context, change *domain.StatusChange) error

	// CountLedgerTransactions counts ledger rows referencing the tournament
	CountLedgerTransactions(ctx context.Context, tournamentID int64) (int64, error)
	// DeleteTournament removes the tournament with its rankings, participations, runs and status history
	DeleteTournament(ctx context.Context, id int64) error
}

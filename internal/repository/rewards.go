package repository

import (
	"context"
	"time"

	"github.com/osse101/tournament-rewards/internal/domain"
)

// Rewards defines the data access required by the reward distribution service
type Rewards interface {
	GetTournament(ctx context.Context, id int64) (*domain.Tournament, error)
	GetTournamentType(ctx context.Context, id int64) (*domain.TournamentType, error)
	ListParticipations(ctx context.Context, tournamentID int64) ([]domain.Participation, error)
	ListDistributionRuns(ctx context.Context, tournamentID int64) ([]domain.DistributionRun, error)
	GetSkillProfile(ctx context.Context, participantID string) (*domain.SkillProfile, error)
	ListLedgerTransactions(ctx context.Context, participantID string, limit int) ([]domain.LedgerTransaction, error)
	ListBalances(ctx context.Context, participantID string) ([]domain.Balance, error)

	// ListAutoDistributable returns ids of auto_distribute tournaments completed before the cutoff
	ListAutoDistributable(ctx context.Context, completedBefore time.Time, limit int) ([]int64, error)

	// Transaction support
	BeginRewardsTx(ctx context.Context) (RewardsTx, error)
}

// RewardsTx extends Tx with the operations of one distribution batch.
// Everything a run writes goes through a single RewardsTx so the batch commits or rolls back as a unit.
type RewardsTx interface {
	Tx // Commit, Rollback

	GetTournament(ctx context.Context, id int64) (*domain.Tournament, error)
	UpdateTournamentStateIfMatches(ctx context.Context, id int64, expectedState, newState domain.LifecycleState) (int64, error)
	IncrementRewardsRunCount(ctx context.Context, id int64) error
	InsertStatusChange(ctx context.Context, change *domain.StatusChange) error
	InsertDistributionRun(ctx context.Context, run *domain.DistributionRun) error

	GetRankings(ctx context.Context, tournamentID int64) ([]domain.Ranking, error)
	GetParticipations(ctx context.Context, tournamentID int64) ([]domain.Participation, error)

	// InsertParticipation returns domain.ErrAlreadyRewarded on a (tournament, participant) conflict
	InsertParticipation(ctx context.Context, p *domain.Participation) error
	UpsertParticipation(ctx context.Context, p *domain.Participation) error
	DeleteParticipation(ctx context.Context, tournamentID int64, participantID string) error

	// LockSkillValues creates missing skills at baseline, then locks every skill row of the given participants
	LockSkillValues(ctx context.Context, keys []domain.SkillKey, baseline float64) ([]domain.SkillValue, error)
	UpdateSkillValue(ctx context.Context, v *domain.SkillValue) error
	InsertSkillChange(ctx context.Context, c *domain.SkillChange) error

	// LockBalances creates missing balance rows at zero, then locks them
	LockBalances(ctx context.Context, keys []domain.BalanceKey) ([]domain.Balance, error)
	UpdateBalance(ctx context.Context, b *domain.Balance) error
	InsertLedgerTransaction(ctx context.Context, t *domain.LedgerTransaction) error
}

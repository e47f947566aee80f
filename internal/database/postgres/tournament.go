package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/tournament-rewards/internal/database/generated"
	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/repository"
)

// TournamentRepository implements repository.Tournament for PostgreSQL
type TournamentRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewTournamentRepository creates a new TournamentRepository
func NewTournamentRepository(db *pgxpool.Pool) *TournamentRepository {
	return &TournamentRepository{
		db: db,
		q:  generated.New(db),
	}
}

// GetTournament returns domain.ErrTournamentNotFound for unknown ids
func (r *TournamentRepository) GetTournament(ctx context.Context, id int64) (*domain.Tournament, error) {
	return getTournament(ctx, r.q, id)
}

// ListStatusHistory returns the audited transitions of a tournament, oldest first
func (r *TournamentRepository) ListStatusHistory(ctx context.Context, tournamentID int64) ([]domain.StatusChange, error) {
	rows, err := r.q.ListStatusHistory(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListStatusHistory, err)
	}

	history := make([]domain.StatusChange, 0, len(rows))
	for _, row := range rows {
		history = append(history, domain.StatusChange{
			ID:           row.ID,
			TournamentID: row.TournamentID,
			FromState:    domain.LifecycleState(row.FromState),
			ToState:      domain.LifecycleState(row.ToState),
			ActorID:      row.ActorID,
			Reason:       row.Reason,
			CreatedAt:    row.CreatedAt.Time,
		})
	}
	return history, nil
}

// BeginTournamentTx starts a transaction for lifecycle administration
func (r *TournamentRepository) BeginTournamentTx(ctx context.Context) (repository.TournamentTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTournamentTransaction, err)
	}
	return &tournamentTx{
		pgTx: pgTx{tx: tx},
		q:    r.q.WithTx(tx),
	}, nil
}

type tournamentTx struct {
	pgTx
	q *generated.Queries
}

var _ repository.TournamentTx = (*tournamentTx)(nil)

func (t *tournamentTx) GetTournament(ctx context.Context, id int64) (*domain.Tournament, error) {
	return getTournament(ctx, t.q, id)
}

// UpdateTournamentStateIfMatches performs the CAS transition within the transaction
func (t *tournamentTx) UpdateTournamentStateIfMatches(ctx context.Context, id int64, expected, next domain.LifecycleState) (int64, error) {
	return updateTournamentStateIfMatches(ctx, t.q, id, expected, next)
}

func (t *tournamentTx) InsertStatusChange(ctx context.Context, change *domain.StatusChange) error {
	return insertStatusChange(ctx, t.q, change)
}

func (t *tournamentTx) CountLedgerTransactions(ctx context.Context, tournamentID int64) (int64, error) {
	count, err := t.q.CountLedgerTransactionsForTournament(ctx, pgtype.Int8{Int64: tournamentID, Valid: true})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCountLedger, err)
	}
	return count, nil
}

// DeleteTournament relies on ON DELETE CASCADE for rankings, participations, runs and history.
// The ledger reference is RESTRICT, so a tournament with ledger rows cannot be removed.
func (t *tournamentTx) DeleteTournament(ctx context.Context, id int64) error {
	result, err := t.q.DeleteTournament(ctx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: id %d", domain.ErrTournamentHasLedgerEntries, id)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteTournament, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrTournamentNotFound, id)
	}
	return nil
}

var _ repository.Tournament = (*TournamentRepository)(nil)

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/osse101/tournament-rewards/internal/database/generated"
	"github.com/osse101/tournament-rewards/internal/domain"
)

// pgTx adapts pgx.Tx to repository.Tx; Rollback after Commit is not an error
type pgTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *pgTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

// ---- Common Helper Functions ----

// parseParticipantUUID parses a participant ID string with consistent error message.
func parseParticipantUUID(participantID string) (uuid.UUID, error) {
	u, err := uuid.Parse(participantID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid participant id %q", domain.ErrInvalidInput, participantID)
	}
	return u, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation
}

func ptrTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func ptrInt64(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Int64
	return &v
}

func int64ToInt8(i *int64) pgtype.Int8 {
	if i == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *i, Valid: true}
}

func ptrUUID(u pgtype.UUID) *uuid.UUID {
	if !u.Valid {
		return nil
	}
	v := uuid.UUID(u.Bytes)
	return &v
}

func uuidToPg(u *uuid.UUID) pgtype.UUID {
	if u == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *u, Valid: true}
}

// ---- End Common Helper Functions ----

// getTournament loads a tournament row; pgx.ErrNoRows maps to domain.ErrTournamentNotFound
func getTournament(ctx context.Context, q *generated.Queries, id int64) (*domain.Tournament, error) {
	row, err := q.GetTournament(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrTournamentNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetTournament, err)
	}
	return mapTournament(row), nil
}

func mapTournament(row generated.Tournament) *domain.Tournament {
	t := &domain.Tournament{
		ID:               row.ID,
		Name:             row.Name,
		TournamentTypeID: ptrInt64(row.TournamentTypeID),
		Specialization:   row.Specialization,
		State:            domain.LifecycleState(row.LifecycleState),
		AutoDistribute:   row.AutoDistribute,
		RewardsRunCount:  int(row.RewardsRunCount),
		CompletedAt:      ptrTime(row.CompletedAt),
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
	if len(row.RewardPolicy) > 0 {
		t.RewardPolicy = row.RewardPolicy
	}
	return t
}

func updateTournamentStateIfMatches(ctx context.Context, q *generated.Queries, id int64, expected, next domain.LifecycleState) (int64, error) {
	result, err := q.UpdateTournamentStateIfMatches(ctx, generated.UpdateTournamentStateIfMatchesParams{
		NewState:      string(next),
		ID:            id,
		ExpectedState: string(expected),
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateTournament, err)
	}
	return result.RowsAffected(), nil
}

func insertStatusChange(ctx context.Context, q *generated.Queries, change *domain.StatusChange) error {
	row, err := q.InsertStatusChange(ctx, generated.InsertStatusChangeParams{
		TournamentID: change.TournamentID,
		FromState:    string(change.FromState),
		ToState:      string(change.ToState),
		ActorID:      change.ActorID,
		Reason:       change.Reason,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordStatusChange, err)
	}
	change.ID = row.ID
	change.CreatedAt = row.CreatedAt.Time
	return nil
}

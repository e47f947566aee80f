// Package tournament holds the administrative lifecycle operations on a tournament.
// Distribution itself lives in package rewards.
package tournament

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/event"
	"github.com/osse101/tournament-rewards/internal/lifecycle"
	"github.com/osse101/tournament-rewards/internal/logger"
	"github.com/osse101/tournament-rewards/internal/repository"
)

// Service defines lifecycle administration operations
type Service interface {
	Get(ctx context.Context, id int64) (*domain.Tournament, error)
	ListStatusHistory(ctx context.Context, id int64) ([]domain.StatusChange, error)

	// Transition moves a tournament one step along the transition table
	Transition(ctx context.Context, id int64, to domain.LifecycleState, actorID, reason string) (*domain.StatusChange, error)
	// ResetToCompleted is the audited override from REWARDS_DISTRIBUTED back to COMPLETED
	ResetToCompleted(ctx context.Context, id int64, actorID, reason string) (*domain.StatusChange, error)
	// Purge deletes a tournament that no ledger transaction references
	Purge(ctx context.Context, id int64, actorID string) error
}

type service struct {
	repo      repository.Tournament
	publisher event.Publisher
}

// NewService creates a new tournament service. publisher may be nil.
func NewService(repo repository.Tournament, publisher event.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *service) Get(ctx context.Context, id int64) (*domain.Tournament, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.repo.GetTournament(ctx, id)
}

func (s *service) ListStatusHistory(ctx context.Context, id int64) ([]domain.StatusChange, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListStatusHistory(ctx, id)
}

func (s *service) Transition(ctx context.Context, id int64, to domain.LifecycleState, actorID, reason string) (*domain.StatusChange, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	change, err := s.move(ctx, id, actorID, reason, func(t *domain.Tournament) (domain.LifecycleState, error) {
		return to, lifecycle.ValidateTransition(t.State, to)
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgTransitionGuard, "tournament_id", id, "to_state", to, "error", err)
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgTransitioned,
		"tournament_id", id, "from_state", change.FromState, "to_state", change.ToState, "actor_id", change.ActorID)
	return change, nil
}

func (s *service) ResetToCompleted(ctx context.Context, id int64, actorID, reason string) (*domain.StatusChange, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrReasonRequired
	}
	change, err := s.move(ctx, id, actorID, reason, func(t *domain.Tournament) (domain.LifecycleState, error) {
		return domain.StateCompleted, lifecycle.GuardReset(t.ID, t.State)
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Warn(LogMsgResetCompleted, "tournament_id", id, "actor_id", change.ActorID, "reason", change.Reason)
	return change, nil
}

// move applies a guarded state change and its history row in one transaction
func (s *service) move(ctx context.Context, id int64, actorID, reason string, guard func(*domain.Tournament) (domain.LifecycleState, error)) (*domain.StatusChange, error) {
	if actorID == "" {
		actorID = DefaultActorID
	}

	tx, err := s.repo.BeginTournamentTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	t, err := tx.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	to, err := guard(t)
	if err != nil {
		return nil, err
	}

	rows, err := tx.UpdateTournamentStateIfMatches(ctx, id, t.State, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedUpdateState, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidState, ErrMsgConcurrentChange)
	}

	change := &domain.StatusChange{
		TournamentID: id,
		FromState:    t.State,
		ToState:      to,
		ActorID:      actorID,
		Reason:       strings.TrimSpace(reason),
	}
	if err := tx.InsertStatusChange(ctx, change); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRecordHistory, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCommit, err)
	}

	s.publish(ctx, event.NewTournamentStateChangedEvent(*change))
	return change, nil
}

func (s *service) Purge(ctx context.Context, id int64, actorID string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if actorID == "" {
		actorID = DefaultActorID
	}

	tx, err := s.repo.BeginTournamentTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetTournament(ctx, id); err != nil {
		return err
	}

	count, err := tx.CountLedgerTransactions(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCountLedger, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %d transactions", domain.ErrTournamentHasLedgerEntries, count)
	}

	if err := tx.DeleteTournament(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedDelete, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCommit, err)
	}

	logger.FromContext(ctx).Warn(LogMsgPurged, "tournament_id", id, "actor_id", actorID)
	s.publish(ctx, event.NewTournamentPurgedEvent(id, actorID))
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidTournamentID)
	}
	return nil
}

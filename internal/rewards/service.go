// Package rewards turns a completed tournament's rankings into recorded rewards.
package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/event"
	"github.com/osse101/tournament-rewards/internal/policy"
	"github.com/osse101/tournament-rewards/internal/repository"
	"github.com/osse101/tournament-rewards/internal/skill"
)

// Service defines the reward distribution operations
type Service interface {
	// Distribute rewards a COMPLETED tournament, or re-runs a REWARDS_DISTRIBUTED one when force is set
	Distribute(ctx context.Context, tournamentID int64, force bool, actorID string) (*domain.DistributionResult, error)
	// DistributeDue runs Distribute for auto_distribute tournaments completed at least grace ago
	DistributeDue(ctx context.Context, grace time.Duration, limit int) (*SweepResult, error)

	ListParticipations(ctx context.Context, tournamentID int64) ([]domain.Participation, error)
	ListRuns(ctx context.Context, tournamentID int64) ([]domain.DistributionRun, error)
	GetSkillProfile(ctx context.Context, participantID string) (*domain.SkillProfile, error)
	ListLedger(ctx context.Context, participantID string, limit int) ([]domain.LedgerTransaction, error)
	ListBalances(ctx context.Context, participantID string) ([]domain.Balance, error)
	PolicyCacheStats() policy.CacheStats
}

// Config holds the tunables of the reward service
type Config struct {
	BaseXP int64
	// ComputeLimit bounds the goroutines computing awards
	ComputeLimit int
}

type service struct {
	repo      repository.Rewards
	resolver  *policy.Resolver
	calc      *skill.Calculator
	publisher event.Publisher
	cfg       Config
	now       func() time.Time
	newRunID  func() uuid.UUID
}

// NewService creates a new reward service. publisher may be nil.
func NewService(repo repository.Rewards, resolver *policy.Resolver, calc *skill.Calculator, publisher event.Publisher, cfg Config) Service {
	if cfg.BaseXP <= 0 {
		cfg.BaseXP = DefaultBaseXP
	}
	if cfg.ComputeLimit <= 0 {
		cfg.ComputeLimit = DefaultComputeLimit
	}
	return &service{
		repo:      repo,
		resolver:  resolver,
		calc:      calc,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
		newRunID:  uuid.New,
	}
}

func (s *service) ListParticipations(ctx context.Context, tournamentID int64) ([]domain.Participation, error) {
	if _, err := s.repo.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	return s.repo.ListParticipations(ctx, tournamentID)
}

func (s *service) ListRuns(ctx context.Context, tournamentID int64) ([]domain.DistributionRun, error) {
	if _, err := s.repo.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	return s.repo.ListDistributionRuns(ctx, tournamentID)
}

func (s *service) GetSkillProfile(ctx context.Context, participantID string) (*domain.SkillProfile, error) {
	if participantID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidParticipant)
	}
	return s.repo.GetSkillProfile(ctx, participantID)
}

// ListLedger returns the newest transactions first. limit is clamped to [1, MaxLedgerLimit].
func (s *service) ListLedger(ctx context.Context, participantID string, limit int) ([]domain.LedgerTransaction, error) {
	if participantID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidParticipant)
	}
	switch {
	case limit <= 0:
		limit = DefaultLedgerLimit
	case limit > MaxLedgerLimit:
		limit = MaxLedgerLimit
	}
	return s.repo.ListLedgerTransactions(ctx, participantID, limit)
}

func (s *service) ListBalances(ctx context.Context, participantID string) ([]domain.Balance, error) {
	if participantID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidParticipant)
	}
	return s.repo.ListBalances(ctx, participantID)
}

func (s *service) PolicyCacheStats() policy.CacheStats {
	return s.resolver.Stats()
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}

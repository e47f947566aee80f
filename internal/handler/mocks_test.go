package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/policy"
	"github.com/osse101/tournament-rewards/internal/rewards"
)

// MockRewardsService mocks rewards.Service
type MockRewardsService struct {
	mock.Mock
}

func (m *MockRewardsService) Distribute(ctx context.Context, tournamentID int64, force bool, actorID string) (*domain.DistributionResult, error) {
	args := m.Called(ctx, tournamentID, force, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DistributionResult), args.Error(1)
}

func (m *MockRewardsService) DistributeDue(ctx context.Context, grace time.Duration, limit int) (*rewards.SweepResult, error) {
	args := m.Called(ctx, grace, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rewards.SweepResult), args.Error(1)
}

func (m *MockRewardsService) ListParticipations(ctx context.Context, tournamentID int64) ([]domain.Participation, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participation), args.Error(1)
}

func (m *MockRewardsService) ListRuns(ctx context.Context, tournamentID int64) ([]domain.DistributionRun, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DistributionRun), args.Error(1)
}

func (m *MockRewardsService) GetSkillProfile(ctx context.Context, participantID string) (*domain.SkillProfile, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SkillProfile), args.Error(1)
}

func (m *MockRewardsService) ListLedger(ctx context.Context, participantID string, limit int) ([]domain.LedgerTransaction, error) {
	args := m.Called(ctx, participantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerTransaction), args.Error(1)
}

func (m *MockRewardsService) ListBalances(ctx context.Context, participantID string) ([]domain.Balance, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Balance), args.Error(1)
}

func (m *MockRewardsService) PolicyCacheStats() policy.CacheStats {
	args := m.Called()
	return args.Get(0).(policy.CacheStats)
}

// MockTournamentService mocks tournament.Service
type MockTournamentService struct {
	mock.Mock
}

func (m *MockTournamentService) Get(ctx context.Context, id int64) (*domain.Tournament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tournament), args.Error(1)
}

func (m *MockTournamentService) ListStatusHistory(ctx context.Context, id int64) ([]domain.StatusChange, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusChange), args.Error(1)
}

func (m *MockTournamentService) Transition(ctx context.Context, id int64, to domain.LifecycleState, actorID, reason string) (*domain.StatusChange, error) {
	args := m.Called(ctx, id, to, actorID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusChange), args.Error(1)
}

func (m *MockTournamentService) ResetToCompleted(ctx context.Context, id int64, actorID, reason string) (*domain.StatusChange, error) {
	args := m.Called(ctx, id, actorID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusChange), args.Error(1)
}

func (m *MockTournamentService) Purge(ctx context.Context, id int64, actorID string) error {
	args := m.Called(ctx, id, actorID)
	return args.Error(0)
}

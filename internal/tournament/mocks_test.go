package tournament

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/event"
	"github.com/osse101/tournament-rewards/internal/repository"
)

// MockRepository implements repository.Tournament for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetTournament(ctx context.Context, id int64) (*domain.Tournament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tournament), args.Error(1)
}

func (m *MockRepository) ListStatusHistory(ctx context.Context, tournamentID int64) ([]domain.StatusChange, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusChange), args.Error(1)
}

func (m *MockRepository) BeginTournamentTx(ctx context.Context) (repository.TournamentTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.TournamentTx), args.Error(1)
}

// MockTx implements repository.TournamentTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetTournament(ctx context.Context, id int64) (*domain.Tournament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tournament), args.Error(1)
}

func (m *MockTx) UpdateTournamentStateIfMatches(ctx context.Context, id int64, expectedState, newState domain.LifecycleState) (int64, error) {
	args := m.Called(ctx, id, expectedState, newState)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) InsertStatusChange(ctx context.Context, change *domain.StatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func (m *MockTx) CountLedgerTransactions(ctx context.Context, tournamentID int64) (int64, error) {
	args := m.Called(ctx, tournamentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) DeleteTournament(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPublisher implements event.Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.Called(ctx, evt)
}

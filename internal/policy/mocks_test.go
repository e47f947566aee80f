package policy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/tournament-rewards/internal/domain"
)

type MockTemplateSource struct {
	mock.Mock
}

func (m *MockTemplateSource) GetTournamentType(ctx context.Context, id int64) (*domain.TournamentType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TournamentType), args.Error(1)
}

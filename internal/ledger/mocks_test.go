package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/tournament-rewards/internal/domain"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) InsertLedgerTransaction(ctx context.Context, t *domain.LedgerTransaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockWriter) UpdateBalance(ctx context.Context, b *domain.Balance) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

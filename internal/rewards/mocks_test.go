package rewards

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/tournament-rewards/internal/event"
)

// MockPublisher records published events
type MockPublisher struct {
	mock.Mock
	mu     sync.Mutex
	events []event.Event
}

func (m *MockPublisher) PublishWithRetry(ctx context.Context, evt event.Event) {
	m.mu.Lock()
	m.events = append(m.events, evt)
	m.mu.Unlock()
	m.Called(ctx, evt)
}

func (m *MockPublisher) ofType(t event.Type) []event.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []event.Event
	for _, e := range m.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newMockPublisher() *MockPublisher {
	p := new(MockPublisher)
	p.On("PublishWithRetry", mock.Anything, mock.Anything).Return()
	return p
}

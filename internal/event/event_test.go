package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/tournament-rewards/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestNewRewardsDistributedEvent(t *testing.T) {
	runID := uuid.New()
	tournament := &domain.Tournament{ID: 9, Name: "Spring Cup"}
	result := &domain.DistributionResult{
		TournamentID:         9,
		RunID:                runID,
		ParticipantsRewarded: 1,
		Summary:              domain.DistributionSummary{TotalXPAwarded: 150, TotalCreditsAwarded: 500},
		PolicySource:         domain.PolicySourceTemplate,
		Awards: []domain.ParticipantAward{
			{ParticipantID: "p1", Rank: 1, Tier: domain.TierFirstPlace, XP: 150, Credits: 500},
		},
	}

	evt := NewRewardsDistributedEvent(tournament, result, "admin", []string{"absent"}, 1500*time.Millisecond)

	assert.Equal(t, RewardsDistributed, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, runID.String(), evt.GetMetadataValue("run_id"))

	payload, err := DecodePayload[RewardsDistributedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "Spring Cup", payload.TournamentName)
	assert.Equal(t, int64(1500), payload.DurationMs)
	assert.Equal(t, []string{"absent"}, payload.PolicyFallback)
	require.Len(t, payload.Awards, 1)
	assert.Equal(t, int64(500), payload.Awards[0].Credits)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{
		"tournament_id": 3,
		"from_state":    "COMPLETED",
		"to_state":      "REWARDS_DISTRIBUTED",
		"actor_id":      "system",
	}

	payload, err := DecodePayload[TournamentStateChangedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, int64(3), payload.TournamentID)
	assert.Equal(t, domain.StateRewardsDistributed, payload.ToState)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
}

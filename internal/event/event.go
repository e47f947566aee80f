package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/tournament-rewards/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from map metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	RewardsDistributed     Type = domain.EventTypeRewardsDistributed
	TournamentStateChanged Type = domain.EventTypeTournamentStateChanged
	TournamentPurged       Type = domain.EventTypeTournamentPurged
	DistributionRejected   Type = domain.EventTypeDistributionRejected
)

// AwardV1 is one participant's award inside a RewardsDistributed event
type AwardV1 struct {
	ParticipantID string            `json:"participant_id"`
	Rank          int               `json:"rank"`
	Tier          domain.RewardTier `json:"tier"`
	XP            int64             `json:"xp"`
	Credits       int64             `json:"credits"`
}

// RewardsDistributedPayloadV1 is the typed payload for rewards.distributed events
type RewardsDistributedPayloadV1 struct {
	TournamentID     int64               `json:"tournament_id"`
	TournamentName   string              `json:"tournament_name"`
	RunID            uuid.UUID           `json:"run_id"`
	Forced           bool                `json:"forced"`
	ActorID          string              `json:"actor_id"`
	ParticipantCount int                 `json:"participant_count"`
	TotalXP          int64               `json:"total_xp"`
	TotalCredits     int64               `json:"total_credits"`
	PolicySource     domain.PolicySource `json:"policy_source"`
	PolicyFallback   []string            `json:"policy_fallback,omitempty"`
	DurationMs       int64               `json:"duration_ms"`
	Awards           []AwardV1           `json:"awards"`
	Timestamp        int64               `json:"timestamp"`
}

// TournamentStateChangedPayloadV1 is the typed payload for tournament.state_changed events
type TournamentStateChangedPayloadV1 struct {
	TournamentID int64                 `json:"tournament_id"`
	FromState    domain.LifecycleState `json:"from_state"`
	ToState      domain.LifecycleState `json:"to_state"`
	ActorID      string                `json:"actor_id"`
	Reason       string                `json:"reason,omitempty"`
	Timestamp    int64                 `json:"timestamp"`
}

// TournamentPurgedPayloadV1 is the typed payload for tournament.purged events
type TournamentPurgedPayloadV1 struct {
	TournamentID int64  `json:"tournament_id"`
	ActorID      string `json:"actor_id"`
	Timestamp    int64  `json:"timestamp"`
}

// DistributionRejectedPayloadV1 is the typed payload for rewards.rejected events
type DistributionRejectedPayloadV1 struct {
	TournamentID int64  `json:"tournament_id"`
	Forced       bool   `json:"forced"`
	Outcome      string `json:"outcome"`
	Error        string `json:"error"`
	Timestamp    int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewRewardsDistributedEvent builds a rewards.distributed event from a committed run
func NewRewardsDistributedEvent(t *domain.Tournament, result *domain.DistributionResult, actorID string, fallback []string, elapsed time.Duration) Event {
	awards := make([]AwardV1, 0, len(result.Awards))
	for _, a := range result.Awards {
		awards = append(awards, AwardV1{
			ParticipantID: a.ParticipantID,
			Rank:          a.Rank,
			Tier:          a.Tier,
			XP:            a.XP,
			Credits:       a.Credits,
		})
	}

	return Event{
		Version: EventSchemaVersion,
		Type:    RewardsDistributed,
		Payload: RewardsDistributedPayloadV1{
			TournamentID:     t.ID,
			TournamentName:   t.Name,
			RunID:            result.RunID,
			Forced:           result.Forced,
			ActorID:          actorID,
			ParticipantCount: result.ParticipantsRewarded,
			TotalXP:          result.Summary.TotalXPAwarded,
			TotalCredits:     result.Summary.TotalCreditsAwarded,
			PolicySource:     result.PolicySource,
			PolicyFallback:   fallback,
			DurationMs:       elapsed.Milliseconds(),
			Awards:           awards,
			Timestamp:        time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"run_id": result.RunID.String(),
		},
	}
}

// NewTournamentStateChangedEvent builds a tournament.state_changed event
func NewTournamentStateChangedEvent(change domain.StatusChange) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TournamentStateChanged,
		Payload: TournamentStateChangedPayloadV1{
			TournamentID: change.TournamentID,
			FromState:    change.FromState,
			ToState:      change.ToState,
			ActorID:      change.ActorID,
			Reason:       change.Reason,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewTournamentPurgedEvent builds a tournament.purged event
func NewTournamentPurgedEvent(tournamentID int64, actorID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TournamentPurged,
		Payload: TournamentPurgedPayloadV1{
			TournamentID: tournamentID,
			ActorID:      actorID,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewDistributionRejectedEvent builds a rewards.rejected event
func NewDistributionRejectedEvent(tournamentID int64, forced bool, outcome string, err error) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DistributionRejected,
		Payload: DistributionRejectedPayloadV1{
			TournamentID: tournamentID,
			Forced:       forced,
			Outcome:      outcome,
			Error:        err.Error(),
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

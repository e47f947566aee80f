package metrics

import (
	"context"
	"time"

	"github.com/osse101/tournament-rewards/internal/domain"
	"github.com/osse101/tournament-rewards/internal/event"
	"github.com/osse101/tournament-rewards/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RewardsDistributed,
		event.DistributionRejected,
		event.TournamentStateChanged,
		event.TournamentPurged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.RewardsDistributed:
		err = recordDistribution(evt)
	case event.DistributionRejected:
		err = recordRejection(evt)
	case event.TournamentStateChanged:
		err = recordTransition(evt)
	}
	if err != nil {
		// A malformed payload is a publisher bug; metrics must not fail the publish
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordDistribution(evt event.Event) error {
	p, err := event.DecodePayload[event.RewardsDistributedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}

	Distributions.WithLabelValues(OutcomeSuccess).Inc()
	XPAwarded.Add(float64(p.TotalXP))
	if p.TotalCredits > 0 {
		CreditsAwarded.Add(float64(p.TotalCredits))
	}
	DistributionDuration.Observe((time.Duration(p.DurationMs) * time.Millisecond).Seconds())
	if p.PolicySource != "" && p.PolicySource != domain.PolicySourceTournament {
		PolicyFallbacks.WithLabelValues(string(p.PolicySource)).Inc()
	}
	return nil
}

func recordRejection(evt event.Event) error {
	p, err := event.DecodePayload[event.DistributionRejectedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	Distributions.WithLabelValues(p.Outcome).Inc()
	return nil
}

func recordTransition(evt event.Event) error {
	p, err := event.DecodePayload[event.TournamentStateChangedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	LifecycleTransitions.WithLabelValues(string(p.FromState), string(p.ToState)).Inc()
	return nil
}

package bootstrap

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/osse101/tournament-rewards/internal/announce"
	"github.com/osse101/tournament-rewards/internal/config"
	"github.com/osse101/tournament-rewards/internal/event"
	"github.com/osse101/tournament-rewards/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Config   *config.Config
	// Sender overrides the Discord webhook sender; tests set it
	Sender announce.Sender
}

// RegisterEventHandlers sets up the metrics collector and, when a webhook is
// configured, the Discord results announcer.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	sender := deps.Sender
	if sender == nil {
		if deps.Config.DiscordWebhookURL == "" {
			slog.Info(announce.LogMsgAnnouncerDisabled)
			return nil
		}
		webhook, err := announce.NewWebhookSender(deps.Config.DiscordWebhookURL)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedCreateAnnouncer, err)
		}
		sender = webhook
	}

	announce.NewAnnouncer(sender, language.English).Subscribe(deps.EventBus)
	slog.Info(announce.LogMsgAnnouncerRegistered)

	return nil
}

package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/tournament-rewards/internal/event"
)

// stoppableServer is the part of server.Server used during shutdown
type stoppableServer interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             stoppableServer
	Workers            *Workers
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and sweeper (let a running sweep finish)
// 3. Worker pool
// 4. Event publisher (flush pending events)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if w := components.Workers; w != nil {
		w.Scheduler.Stop()
		if err := w.AutoDistribute.Shutdown(ctx); err != nil {
			slog.Error(LogMsgAutoDistributeShutdownFailed, "error", err)
		}
		w.Pool.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

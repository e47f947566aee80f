package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/osse101/tournament-rewards/internal/logger"
	"github.com/osse101/tournament-rewards/internal/rewards"
)

// DueDistributor distributes tournaments that are due for automatic rewards
type DueDistributor interface {
	DistributeDue(ctx context.Context, grace time.Duration, limit int) (*rewards.SweepResult, error)
}

// AutoDistributeWorker is the scheduled sweep over auto_distribute tournaments.
// At most one sweep runs at a time; a tick that arrives while one is running is dropped.
type AutoDistributeWorker struct {
	BaseWorker
	distributor DueDistributor
	grace       time.Duration
	batch       int
	running     atomic.Bool
}

// NewAutoDistributeWorker creates a new AutoDistributeWorker
func NewAutoDistributeWorker(distributor DueDistributor, grace time.Duration, batch int) *AutoDistributeWorker {
	w := &AutoDistributeWorker{
		distributor: distributor,
		grace:       grace,
		batch:       batch,
	}
	w.init()
	return w
}

// Process runs one sweep. It implements Job.
func (w *AutoDistributeWorker) Process(ctx context.Context) error {
	if !w.begin() {
		return nil
	}
	defer w.end()

	log := logger.FromContext(ctx)
	if !w.running.CompareAndSwap(false, true) {
		log.Debug(LogMsgAutoDistributeOverlap)
		return nil
	}
	defer w.running.Store(false)

	result, err := w.distributor.DistributeDue(ctx, w.grace, w.batch)
	if err != nil {
		log.Error(LogMsgAutoDistributeFailed, "error", err)
		return err
	}

	if result.Checked > 0 {
		log.Info(LogMsgAutoDistributeCompleted,
			"checked", result.Checked,
			"distributed", len(result.Distributed),
			"skipped", len(result.Skipped),
			"failed", len(result.Failed))
	}
	return nil
}

// Shutdown stops accepting sweeps and waits for the running one to finish
func (w *AutoDistributeWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, WorkerNameAutoDistribute)
}

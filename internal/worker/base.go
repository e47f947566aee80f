package worker

import (
	"context"
	"sync"

	"github.com/osse101/tournament-rewards/internal/logger"
)

// BaseWorker tracks in-flight executions so a worker can shut down gracefully
type BaseWorker struct {
	mu       sync.Mutex
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// begin registers an execution. It returns false once shutdown has started.
func (w *BaseWorker) begin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	w.wg.Add(1)
	return true
}

func (w *BaseWorker) end() {
	w.wg.Done()
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	w.init()
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}

// Package scheduler feeds periodic jobs into the worker pool.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/tournament-rewards/internal/logger"
	"github.com/osse101/tournament-rewards/internal/worker"
)

// Enqueuer accepts jobs without blocking
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

type entry struct {
	name     string
	interval time.Duration
	job      worker.Job
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	queue   Enqueuer
	entries []entry
	quit    chan struct{}
	wg      sync.WaitGroup
	started bool
	mu      sync.Mutex
}

// New creates a new scheduler
func New(queue Enqueuer) *Scheduler {
	return &Scheduler{
		queue: queue,
		quit:  make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval once Start is called.
// A non-positive interval disables the job.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	if interval <= 0 {
		logger.FromContext(context.Background()).Info(LogMsgJobDisabled, "job", name)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry{name: name, interval: interval, job: job})
	if s.started {
		s.run(s.entries[len(s.entries)-1])
	}
}

// Start launches a ticker per scheduled job
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	for _, e := range s.entries {
		s.run(e)
	}
}

func (s *Scheduler) run(e entry) {
	log := logger.FromContext(context.Background())
	log.Info(LogMsgJobScheduled, "job", e.name, "interval", e.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// A full queue means the previous tick is still waiting; skip this one
				if !s.queue.TryEnqueue(e.job) {
					log.Warn(LogMsgJobQueueFull, "job", e.name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.mu.Lock()
	select {
	case <-s.quit:
	default:
		close(s.quit)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

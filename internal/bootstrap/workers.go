package bootstrap

import (
	"log/slog"

	"github.com/osse101/tournament-rewards/internal/config"
	"github.com/osse101/tournament-rewards/internal/rewards"
	"github.com/osse101/tournament-rewards/internal/scheduler"
	"github.com/osse101/tournament-rewards/internal/worker"
)

// Workers holds the background processing components
type Workers struct {
	Pool           *worker.Pool
	Scheduler      *scheduler.Scheduler
	AutoDistribute *worker.AutoDistributeWorker
}

// StartWorkers starts the worker pool and schedules the auto-distribution sweep.
// With AUTO_DISTRIBUTE_INTERVAL unset the pool runs idle and nothing is scheduled.
func StartWorkers(cfg *config.Config, rewardsService rewards.Service) *Workers {
	pool := worker.NewPool(cfg.WorkerCount, WorkerQueueSize, 0)
	pool.Start()

	sweeper := worker.NewAutoDistributeWorker(rewardsService, cfg.AutoDistributeGrace, cfg.AutoDistributeBatch)

	sched := scheduler.New(pool)
	sched.Schedule(JobNameAutoDistribute, cfg.AutoDistributeInterval, sweeper)
	sched.Start()

	slog.Info(LogMsgWorkersStarted,
		"workers", cfg.WorkerCount,
		"auto_distribute_interval", cfg.AutoDistributeInterval,
		"auto_distribute_grace", cfg.AutoDistributeGrace)

	return &Workers{
		Pool:           pool,
		Scheduler:      sched,
		AutoDistribute: sweeper,
	}
}

package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// DefaultJobTimeout bounds a single job when the pool is created without one
const DefaultJobTimeout = 5 * time.Minute

// ============================================================================
// Log Messages - Auto Distribute Worker
// ============================================================================

// WorkerNameAutoDistribute names the sweeper in shutdown logs
const WorkerNameAutoDistribute = "auto distribute worker"

// Log messages for auto distribute worker operations
const (
	LogMsgAutoDistributeCompleted = "Auto distribute sweep completed"
	LogMsgAutoDistributeFailed    = "Auto distribute sweep failed"
	LogMsgAutoDistributeOverlap   = "Auto distribute sweep already running, tick dropped"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)

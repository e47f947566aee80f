package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgJobDisabled  = "Job disabled, interval not set"
	LogMsgJobQueueFull = "Worker queue full, scheduled run skipped"
)

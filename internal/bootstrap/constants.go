package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the number of log files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting tournament-rewards"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is used when DEAD_LETTER_PATH is empty
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Services and Workers
// =============================================================================

const (
	// WorkerQueueSize holds a few pending sweeps; further ticks are skipped
	WorkerQueueSize = 4

	// JobNameAutoDistribute names the sweep in scheduler logs
	JobNameAutoDistribute = "auto_distribute"
)

const (
	LogMsgServicesInitialized = "Services initialized"
	LogMsgWorkersStarted      = "Workers started"

	ErrMsgFailedLoadDefaultPolicy = "failed to load default reward policy"
	ErrMsgInvalidSkillBounds      = "invalid skill bounds"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedCreateAnnouncer      = "failed to create results announcer"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer           = "Shutting down server..."
	LogMsgShuttingDownEventPublisher   = "Shutting down event publisher..."
	LogMsgServerStopped                = "Server stopped"
	LogMsgServerForcedShutdown         = "Server forced to shutdown"
	LogMsgResilientPublisherFailed     = "Resilient publisher shutdown failed"
	LogMsgAutoDistributeShutdownFailed = "Auto distribute worker shutdown failed"
)

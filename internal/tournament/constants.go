package tournament

// DefaultActorID is recorded when a caller does not identify itself
const DefaultActorID = "system"

// Log messages
const (
	LogMsgTransitioned    = "Tournament state changed"
	LogMsgResetCompleted  = "Tournament reset to COMPLETED"
	LogMsgPurged          = "Tournament purged"
	LogMsgTransitionGuard = "Tournament transition rejected"
)

// Error messages
const (
	ErrMsgInvalidTournamentID = "tournament id must be positive"
	ErrMsgConcurrentChange    = "tournament state changed concurrently"
	ErrMsgFailedBeginTx       = "failed to begin transaction"
	ErrMsgFailedCommit        = "failed to commit transaction"
	ErrMsgFailedUpdateState   = "failed to update tournament state"
	ErrMsgFailedRecordHistory = "failed to record status change"
	ErrMsgFailedCountLedger   = "failed to count ledger transactions"
	ErrMsgFailedDelete        = "failed to delete tournament"
)

package rewards

import "time"

// Defaults
const (
	DefaultBaseXP       = 100
	DefaultActorID      = "system"
	DefaultLedgerLimit  = 50
	MaxLedgerLimit      = 500
	DefaultSweepLimit   = 20
	DefaultSweepGrace   = 10 * time.Minute
	DefaultComputeLimit = 8
	ReasonDistributed   = "rewards distributed"
)

// Outcome labels for distribution attempts
const (
	OutcomeSuccess         = "success"
	OutcomeInvalidState    = "invalid_state"
	OutcomeNotFound        = "not_found"
	OutcomeInvalidRankings = "invalid_rankings"
	OutcomeConflict        = "conflict"
	OutcomeError           = "error"
)

// HintConcurrentChange is set on guard errors raised by a lost compare-and-swap
const HintConcurrentChange = "state changed by a concurrent request"

// Log messages
const (
	LogMsgDistributionStarted  = "Reward distribution started"
	LogMsgDistributionComplete = "Reward distribution committed"
	LogMsgDistributionRejected = "Reward distribution rejected"
	LogMsgDistributionFailed   = "Reward distribution failed"
	LogMsgSweepDistributed     = "Auto distribution committed"
	LogMsgSweepSkipped         = "Auto distribution skipped"
	LogMsgSweepFailed          = "Auto distribution failed"
)

// Error messages
const (
	ErrMsgInvalidTournamentID = "tournament id must be positive"
	ErrMsgInvalidParticipant  = "participant id is required"
	ErrMsgRankBelowOne        = "rank must be at least 1"
	ErrMsgDuplicateRanking    = "participant ranked more than once"
	ErrMsgFailedBeginTx       = "failed to begin distribution transaction"
	ErrMsgFailedCommit        = "failed to commit distribution"
	ErrMsgFailedTransition    = "failed to transition tournament"
	ErrMsgFailedReadRankings  = "failed to read rankings"
	ErrMsgFailedResolvePolicy = "failed to resolve reward policy"
	ErrMsgFailedLockBalances  = "failed to lock balances"
	ErrMsgFailedLockSkills    = "failed to lock skill values"
	ErrMsgFailedApplySkill    = "failed to apply skill delta"
	ErrMsgFailedParticipation = "failed to record participation"
	ErrMsgFailedRecordRun     = "failed to record distribution run"
)

package ledger

// Error messages
const (
	ErrMsgBalanceNotLocked   = "balance row was not locked for this batch"
	ErrMsgParticipantMissing = "participant id is required"
	ErrMsgScopeMissing       = "scope is required"
	ErrMsgUnknownKind        = "unknown transaction kind"
	ErrMsgUnknownCurrency    = "unknown currency"
	ErrMsgNegativeReward     = "tournament reward amount must not be negative"
	ErrMsgFailedToRecord     = "failed to record ledger transaction"
	ErrMsgFailedToFlush      = "failed to update balance"
)

// Descriptions written on generated transactions
const (
	DescTournamentReward = "tournament %d reward (%s)"
	DescReversal         = "tournament %d forced re-run: reversal of previous award"
)

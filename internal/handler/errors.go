package handler

// Machine-readable error codes returned in the "code" field
const (
	CodeInvalidTournamentState     = "INVALID_TOURNAMENT_STATE"
	CodeTournamentNotFound         = "TOURNAMENT_NOT_FOUND"
	CodeInvalidRankings            = "INVALID_RANKINGS"
	CodeAlreadyDistributed         = "ALREADY_DISTRIBUTED"
	CodeTournamentHasLedgerEntries = "TOURNAMENT_HAS_LEDGER_ENTRIES"
	CodeInvalidTransition          = "INVALID_TRANSITION"
	CodeReasonRequired             = "REASON_REQUIRED"
	CodeInvalidInput               = "INVALID_INPUT"
	CodeInvalidPolicy              = "INVALID_POLICY"
	CodeInvalidRequest             = "INVALID_REQUEST"
	CodeInternal                   = "INTERNAL"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgInvalidTournamentID  = "Invalid tournament ID"
	ErrMsgInvalidParticipantID = "Invalid participant ID"
	ErrMsgInvalidLimit         = "Invalid limit parameter"
	ErrMsgTournamentIDMismatch = "tournament_id in body does not match the path"
)

// Success messages for API responses
const (
	MsgTournamentPurged = "Tournament purged"
)

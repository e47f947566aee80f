package handler

// Request conventions
const (
	ParamID    = "id"
	ParamLimit = "limit"

	// HeaderActorID carries the caller identity recorded in audit rows
	HeaderActorID  = "X-Actor-ID"
	DefaultActorID = "api"

	MaxRequestBodyBytes    = 1 << 20
	MaxParticipantIDLength = 128
)

// Operation names used in logs
const (
	OpDistribute         = "Distribute rewards"
	OpGetTournament      = "Get tournament"
	OpTransition         = "Transition tournament"
	OpStatusHistory      = "List status history"
	OpListParticipations = "List participations"
	OpListRuns           = "List distribution runs"
	OpGetSkills          = "Get skill profile"
	OpListLedger         = "List ledger"
	OpListBalances       = "List balances"
	OpResetToCompleted   = "Reset to completed"
	OpPurge              = "Purge tournament"
)

package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation     = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a RESTRICT reference blocks a delete
	PgErrorCodeForeignKeyViolation = "23503"
)

// Constraint names referenced from Go code
const (
	ConstraintParticipationsUnique = "participations_tournament_participant_key"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction           = "failed to begin transaction"
	ErrMsgFailedToBeginRewardsTransaction    = "failed to begin rewards transaction"
	ErrMsgFailedToBeginTournamentTransaction = "failed to begin tournament transaction"
)

// Error Messages - Query Operations
const (
	ErrMsgFailedToGetTournament         = "failed to get tournament"
	ErrMsgFailedToGetTournamentType     = "failed to get tournament type"
	ErrMsgFailedToUpdateTournament      = "failed to update tournament state"
	ErrMsgFailedToRecordStatusChange    = "failed to record status change"
	ErrMsgFailedToGetRankings           = "failed to get rankings"
	ErrMsgFailedToGetParticipations     = "failed to get participations"
	ErrMsgFailedToWriteParticipation    = "failed to write participation"
	ErrMsgFailedToRecordRun             = "failed to record distribution run"
	ErrMsgFailedToDeleteParticipation   = "failed to delete participation"
	ErrMsgFailedToLockSkills            = "failed to lock skill values"
	ErrMsgFailedToUpdateSkill           = "failed to update skill value"
	ErrMsgFailedToRecordSkillChange     = "failed to record skill change"
	ErrMsgFailedToLockBalances          = "failed to lock balances"
	ErrMsgFailedToUpdateBalance         = "failed to update balance"
	ErrMsgFailedToInsertLedgerEntry     = "failed to insert ledger transaction"
	ErrMsgFailedToListLedger            = "failed to list ledger transactions"
	ErrMsgFailedToListBalances          = "failed to list balances"
	ErrMsgFailedToGetSkills             = "failed to get skill values"
	ErrMsgFailedToListRuns              = "failed to list distribution runs"
	ErrMsgFailedToListStatusHistory     = "failed to list status history"
	ErrMsgFailedToListAutoDistributable = "failed to list auto-distributable tournaments"
	ErrMsgFailedToCountLedger           = "failed to count ledger transactions"
	ErrMsgFailedToDeleteTournament      = "failed to delete tournament"
	ErrMsgFailedToMarshalSkillDeltas    = "failed to marshal skill deltas"
	ErrMsgFailedToUnmarshalSkillDeltas  = "failed to unmarshal skill deltas"
)

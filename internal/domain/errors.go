package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Tournament errors
	ErrMsgTournamentNotFound         = "tournament not found"
	ErrMsgInvalidState               = "invalid tournament state"
	ErrMsgInvalidTransition          = "invalid lifecycle transition"
	ErrMsgTournamentHasLedgerEntries = "tournament is referenced by ledger transactions"
	ErrMsgReasonRequired             = "a reason is required"

	// Distribution errors
	ErrMsgAlreadyRewarded   = "participant already rewarded for this tournament"
	ErrMsgInvalidRanking    = "invalid ranking"
	ErrMsgUnresolvedRankTie = "unresolved rank tie"

	// Policy errors
	ErrMsgInvalidPolicy = "invalid reward policy"

	// Ledger errors
	ErrMsgInvalidLedgerEntry = "invalid ledger entry"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrTournamentNotFound         = errors.New(ErrMsgTournamentNotFound)
	ErrInvalidState               = errors.New(ErrMsgInvalidState)
	ErrInvalidTransition          = errors.New(ErrMsgInvalidTransition)
	ErrTournamentHasLedgerEntries = errors.New(ErrMsgTournamentHasLedgerEntries)
	ErrReasonRequired             = errors.New(ErrMsgReasonRequired)

	ErrAlreadyRewarded   = errors.New(ErrMsgAlreadyRewarded)
	ErrInvalidRanking    = errors.New(ErrMsgInvalidRanking)
	ErrUnresolvedRankTie = errors.New(ErrMsgUnresolvedRankTie)

	ErrInvalidPolicy      = errors.New(ErrMsgInvalidPolicy)
	ErrInvalidLedgerEntry = errors.New(ErrMsgInvalidLedgerEntry)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)

// StateGuardError reports an operation attempted from a lifecycle state that does not permit it.
// errors.Is(err, ErrInvalidState) holds for every StateGuardError.
type StateGuardError struct {
	TournamentID int64
	Operation    string
	Current      LifecycleState
	Required     []LifecycleState
	Hint         string
}

// Error names the required and the current state in plain words
func (e *StateGuardError) Error() string {
	required := make([]string, len(e.Required))
	for i, s := range e.Required {
		required[i] = string(s)
	}
	msg := fmt.Sprintf("tournament must be %s, current state is %s", strings.Join(required, " or "), e.Current)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// Is lets errors.Is match the ErrInvalidState sentinel
func (e *StateGuardError) Is(target error) bool {
	return target == ErrInvalidState
}

// RankTieError names the rank shared by more than one participant
type RankTieError struct {
	Rank         int
	Participants []string
}

func (e *RankTieError) Error() string {
	return fmt.Sprintf("%s: rank %d is shared by %d participants", ErrMsgUnresolvedRankTie, e.Rank, len(e.Participants))
}

func (e *RankTieError) Unwrap() error {
	return ErrUnresolvedRankTie
}

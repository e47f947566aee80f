package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies a ledger entry
type TransactionKind string

const (
	KindTournamentReward TransactionKind = "tournament_reward"
	KindAdjustment       TransactionKind = "adjustment"
	KindRefund           TransactionKind = "refund"
)

// Currency is the unit a ledger entry moves
type Currency string

const (
	CurrencyCredits Currency = "credits"
	CurrencyXP      Currency = "xp"
)

// ScopeGeneral is the general-purpose balance scope.
// License scopes are written as "license:<specialization>".
const (
	ScopeGeneral       = "general"
	ScopeLicensePrefix = "license:"
)

// LicenseScope returns the balance scope for a license/specialization key.
// An empty key falls back to the general scope.
func LicenseScope(specialization string) string {
	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		return ScopeGeneral
	}
	return ScopeLicensePrefix + strings.ToLower(specialization)
}

// LedgerTransaction is an immutable record of one credit or XP movement
type LedgerTransaction struct {
	ID            uuid.UUID       `json:"id"`
	TournamentID  *int64          `json:"tournament_id,omitempty"`
	ParticipantID string          `json:"participant_id"`
	RunID         *uuid.UUID      `json:"run_id,omitempty"`
	Kind          TransactionKind `json:"kind"`
	Currency      Currency        `json:"currency"`
	Scope         string          `json:"scope"`
	Amount        int64           `json:"amount"`
	BalanceAfter  int64           `json:"balance_after"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BalanceKey identifies one running balance
type BalanceKey struct {
	ParticipantID string   `json:"participant_id"`
	Currency      Currency `json:"currency"`
	Scope         string   `json:"scope"`
}

// Balance is the denormalised running total for a BalanceKey
type Balance struct {
	BalanceKey
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updated_at"`
}

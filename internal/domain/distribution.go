package domain

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantAward is the computed reward for one ranked participant
type ParticipantAward struct {
	ParticipantID string             `json:"participant_id"`
	Rank          int                `json:"rank"`
	Tier          RewardTier         `json:"tier"`
	XP            int64              `json:"xp"`
	Credits       int64              `json:"credits"`
	Badges        []string           `json:"badges,omitempty"`
	SkillDeltas   map[string]float64 `json:"skill_deltas,omitempty"`
}

// Participation marks that a participant has been rewarded for a tournament.
// There is exactly one per (tournament, participant); forced re-runs update it in place.
type Participation struct {
	TournamentID      int64              `json:"tournament_id"`
	ParticipantID     string             `json:"participant_id"`
	RunID             uuid.UUID          `json:"run_id"`
	Rank              int                `json:"rank"`
	Tier              RewardTier         `json:"tier"`
	XPAwarded         int64              `json:"xp_awarded"`
	CreditsAwarded    int64              `json:"credits_awarded"`
	Badges            []string           `json:"badges,omitempty"`
	SkillDeltas       map[string]float64 `json:"skill_deltas,omitempty"` // applied after clamping, net of earlier runs
	DistributionCount int                `json:"distribution_count"`
	RewardedAt        time.Time          `json:"rewarded_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// DistributionSummary totals one run
type DistributionSummary struct {
	TotalXPAwarded      int64 `json:"total_xp_awarded"`
	TotalCreditsAwarded int64 `json:"total_credits_awarded"`
}

// DistributionResult is returned by a successful distribution
type DistributionResult struct {
	TournamentID         int64               `json:"tournament_id"`
	RunID                uuid.UUID           `json:"run_id"`
	Forced               bool                `json:"forced"`
	ParticipantsRewarded int                 `json:"rewards_distributed_count"`
	ParticipantsRevoked  int                 `json:"participants_revoked,omitempty"` // forced re-run only: rewarded before, unranked now
	Summary              DistributionSummary `json:"summary"`
	PolicySource         PolicySource        `json:"policy_source"`
	State                LifecycleState      `json:"lifecycle_state"`
	Awards               []ParticipantAward  `json:"awards"`
}

// DistributionRun is the audit row written once per successful distribution
type DistributionRun struct {
	RunID               uuid.UUID    `json:"run_id"`
	TournamentID        int64        `json:"tournament_id"`
	Forced              bool         `json:"forced"`
	ActorID             string       `json:"actor_id"`
	ParticipantCount    int          `json:"participant_count"`
	TotalXPAwarded      int64        `json:"total_xp_awarded"`
	TotalCreditsAwarded int64        `json:"total_credits_awarded"`
	PolicySource        PolicySource `json:"policy_source"`
	CreatedAt           time.Time    `json:"created_at"`
}

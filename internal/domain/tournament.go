package domain

import (
	"encoding/json"
	"time"
)

// LifecycleState is the administrative stage of a tournament
type LifecycleState string

// Lifecycle states in their normal order. CANCELLED is terminal and sits outside the main path.
const (
	StateDraft              LifecycleState = "DRAFT"
	StateSeekingCoordinator LifecycleState = "SEEKING_COORDINATOR"
	StateReadyForEnrollment LifecycleState = "READY_FOR_ENROLLMENT"
	StateEnrollmentOpen     LifecycleState = "ENROLLMENT_OPEN"
	StateInProgress         LifecycleState = "IN_PROGRESS"
	StateCompleted          LifecycleState = "COMPLETED"
	StateRewardsDistributed LifecycleState = "REWARDS_DISTRIBUTED"
	StateCancelled          LifecycleState = "CANCELLED"
)

// String implements fmt.Stringer
func (s LifecycleState) String() string {
	return string(s)
}

// Tournament is a bounded competitive program period with ranked participants
type Tournament struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	TournamentTypeID *int64          `json:"tournament_type_id,omitempty"`
	Specialization   string          `json:"specialization,omitempty"` // license scope for XP; empty means general
	State            LifecycleState  `json:"lifecycle_state"`
	RewardPolicy     json.RawMessage `json:"reward_policy,omitempty"` // embedded policy, may be null
	AutoDistribute   bool            `json:"auto_distribute"`
	RewardsRunCount  int             `json:"rewards_run_count"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// TournamentType is the template a tournament is created from
type TournamentType struct {
	ID                  int64           `json:"id"`
	TypeKey             string          `json:"type_key"`
	DisplayName         string          `json:"display_name"`
	DefaultRewardPolicy json.RawMessage `json:"default_reward_policy,omitempty"`
}

// StatusChange is one row of a tournament's lifecycle audit trail
type StatusChange struct {
	ID           int64          `json:"id"`
	TournamentID int64          `json:"tournament_id"`
	FromState    LifecycleState `json:"from_state"`
	ToState      LifecycleState `json:"to_state"`
	ActorID      string         `json:"actor_id"`
	Reason       string         `json:"reason,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Ranking is a participant's final standing in a tournament.
// Rankings are written by the results-submission process and only read here.
type Ranking struct {
	TournamentID  int64  `json:"tournament_id"`
	ParticipantID string `json:"participant_id"`
	Rank          int    `json:"rank"`
	Points        int64  `json:"points"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
}

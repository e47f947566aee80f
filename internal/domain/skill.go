package domain

import (
	"time"

	"github.com/google/uuid"
)

// SkillValue is one named skill on a participant's long-lived profile
type SkillValue struct {
	ParticipantID string    `json:"participant_id"`
	SkillName     string    `json:"skill_name"`
	Category      string    `json:"category,omitempty"`
	Baseline      float64   `json:"baseline"` // fixed at first observation
	Current       float64   `json:"current"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TotalDelta is how far the skill has moved since it was first observed
func (v SkillValue) TotalDelta() float64 {
	return v.Current - v.Baseline
}

// SkillKey identifies one named skill of one participant
type SkillKey struct {
	ParticipantID string
	SkillName     string
	Category      string
}

// SkillProfile groups every skill value of one participant
type SkillProfile struct {
	ParticipantID string       `json:"participant_id"`
	Skills        []SkillValue `json:"skills"`
}

// SkillChange is an append-only history entry for one applied delta
type SkillChange struct {
	ParticipantID  string    `json:"participant_id"`
	SkillName      string    `json:"skill_name"`
	TournamentID   int64     `json:"tournament_id"`
	RunID          uuid.UUID `json:"run_id"`
	RequestedDelta float64   `json:"requested_delta"`
	AppliedDelta   float64   `json:"applied_delta"`
	ValueBefore    float64   `json:"value_before"`
	ValueAfter     float64   `json:"value_after"`
	CreatedAt      time.Time `json:"created_at"`
}

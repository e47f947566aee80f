package domain

// RewardTier identifies which reward bracket a rank falls into
type RewardTier string

const (
	TierFirstPlace    RewardTier = "first_place"
	TierSecondPlace   RewardTier = "second_place"
	TierThirdPlace    RewardTier = "third_place"
	TierParticipation RewardTier = "participation"
)

// PolicySource records where the effective reward policy of a run came from
type PolicySource string

const (
	PolicySourceTournament PolicySource = "tournament"
	PolicySourceTemplate   PolicySource = "template"
	PolicySourceDefault    PolicySource = "default"
)

// TierReward is what a single tier pays out
type TierReward struct {
	XPMultiplier float64  `json:"xp_multiplier" yaml:"xp_multiplier" validate:"gte=0,lte=100"`
	Credits      int64    `json:"credits" yaml:"credits" validate:"gte=0"`
	Badges       []string `json:"badges,omitempty" yaml:"badges" validate:"dive,required,max=64"`
}

// SkillMapping weights how much a tournament result moves one named skill
type SkillMapping struct {
	SkillName string  `json:"skill_name" yaml:"skill_name" validate:"required,max=64"`
	Weight    float64 `json:"weight" yaml:"weight" validate:"gte=0,lte=10"`
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	Category  string  `json:"category,omitempty" yaml:"category" validate:"max=64"`
}

// RewardPolicy is the data-defined reward configuration embedded in a tournament
type RewardPolicy struct {
	BaseXP        *int64         `json:"base_xp,omitempty" yaml:"base_xp" validate:"omitempty,gte=0"`
	SkillMappings []SkillMapping `json:"skill_mappings" yaml:"skill_mappings" validate:"unique=SkillName,dive"`
	FirstPlace    TierReward     `json:"first_place" yaml:"first_place"`
	SecondPlace   TierReward     `json:"second_place" yaml:"second_place"`
	ThirdPlace    TierReward     `json:"third_place" yaml:"third_place"`
	Participation TierReward     `json:"participation" yaml:"participation"`
}

// Tier returns the reward for the given tier
func (p *RewardPolicy) Tier(tier RewardTier) TierReward {
	switch tier {
	case TierFirstPlace:
		return p.FirstPlace
	case TierSecondPlace:
		return p.SecondPlace
	case TierThirdPlace:
		return p.ThirdPlace
	default:
		return p.Participation
	}
}

// EnabledMappings returns only the skill mappings that take part in progression
func (p *RewardPolicy) EnabledMappings() []SkillMapping {
	enabled := make([]SkillMapping, 0, len(p.SkillMappings))
	for _, m := range p.SkillMappings {
		if m.Enabled {
			enabled = append(enabled, m)
		}
	}
	return enabled
}

// TierForRank maps a rank to its reward tier. Rank 1 is best.
func TierForRank(rank int) RewardTier {
	switch rank {
	case 1:
		return TierFirstPlace
	case 2:
		return TierSecondPlace
	case 3:
		return TierThirdPlace
	default:
		return TierParticipation
	}
}

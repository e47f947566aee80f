// Package policy parses, validates and resolves reward policies. A tournament's
// embedded policy wins, then its tournament type's template, then the default.
package policy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/tournament-rewards/internal/domain"
)

// ErrPolicyAbsent is returned by Parse for an empty or JSON null document
var ErrPolicyAbsent = errors.New(ErrMsgPolicyAbsent)

var validate = validator.New()

// Default returns the documented fallback: a flat participation reward on every
// tier (xp multiplier 1, no credits, no badges) and no skill mapping.
func Default() *domain.RewardPolicy {
	flat := domain.TierReward{XPMultiplier: 1.0}
	return &domain.RewardPolicy{
		SkillMappings: []domain.SkillMapping{},
		FirstPlace:    flat,
		SecondPlace:   flat,
		ThirdPlace:    flat,
		Participation: flat,
	}
}

// Parse decodes an embedded JSON policy and validates it
func Parse(raw []byte) (*domain.RewardPolicy, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrPolicyAbsent
	}

	var p domain.RewardPolicy
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidPolicy, ErrMsgFailedDecodePolicy, err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks field bounds and that no lower tier out-rewards a higher one
func Validate(p *domain.RewardPolicy) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPolicy, err)
	}

	tiers := []domain.TierReward{p.FirstPlace, p.SecondPlace, p.ThirdPlace, p.Participation}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].XPMultiplier > tiers[i-1].XPMultiplier || tiers[i].Credits > tiers[i-1].Credits {
			return fmt.Errorf("%w: %s", domain.ErrInvalidPolicy, ErrMsgNotMonotonic)
		}
	}
	return nil
}

// LoadFile reads a YAML policy file. A missing file returns os.ErrNotExist wrapped.
func LoadFile(path string) (*domain.RewardPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedReadPolicy, err)
	}

	var p domain.RewardPolicy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidPolicy, ErrMsgFailedDecodePolicy, err)
	}
	if p.SkillMappings == nil {
		p.SkillMappings = []domain.SkillMapping{}
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// BaseXP returns the policy's base experience, or fallback when the policy leaves it unset
func BaseXP(p *domain.RewardPolicy, fallback int64) int64 {
	if p != nil && p.BaseXP != nil {
		return *p.BaseXP
	}
	return fallback
}

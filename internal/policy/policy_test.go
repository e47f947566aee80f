package policy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/tournament-rewards/internal/domain"
)

const scenarioPolicy = `{
	"skill_mappings": [
		{"skill_name": "tactics", "weight": 1.0, "enabled": true, "category": "strategy"},
		{"skill_name": "endurance", "weight": 0.5, "enabled": false}
	],
	"first_place":   {"xp_multiplier": 1.5, "credits": 500, "badges": ["gold"]},
	"second_place":  {"xp_multiplier": 1.3, "credits": 300},
	"third_place":   {"xp_multiplier": 1.2, "credits": 200},
	"participation": {"xp_multiplier": 1.0, "credits": 0}
}`

func TestParse_Valid(t *testing.T) {
	p, err := Parse([]byte(scenarioPolicy))
	require.NoError(t, err)

	assert.Equal(t, 1.5, p.FirstPlace.XPMultiplier)
	assert.Equal(t, int64(300), p.SecondPlace.Credits)
	assert.Equal(t, []string{"gold"}, p.FirstPlace.Badges)
	assert.Nil(t, p.BaseXP)

	enabled := p.EnabledMappings()
	require.Len(t, enabled, 1)
	assert.Equal(t, "tactics", enabled[0].SkillName)
}

func TestParse_Absent(t *testing.T) {
	for _, raw := range []string{"", "   ", "null"} {
		_, err := Parse([]byte(raw))
		assert.ErrorIs(t, err, ErrPolicyAbsent, "input %q", raw)
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"first_place": `},
		{"wrong type", `{"first_place": {"credits": "lots"}}`},
		{"negative credits", `{"first_place": {"xp_multiplier": 1, "credits": -5}}`},
		{"multiplier out of range", `{"first_place": {"xp_multiplier": 1000}}`},
		{"negative weight", `{"skill_mappings": [{"skill_name": "x", "weight": -1, "enabled": true}]}`},
		{"missing skill name", `{"skill_mappings": [{"weight": 1, "enabled": true}]}`},
		{"duplicate skill", `{"skill_mappings": [{"skill_name": "x", "weight": 1}, {"skill_name": "x", "weight": 2}]}`},
		{"not monotonic", `{"first_place": {"xp_multiplier": 1.0, "credits": 100}, "second_place": {"xp_multiplier": 1.2, "credits": 50}}`},
		{"participation beats third", `{"third_place": {"credits": 0}, "participation": {"credits": 10}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
			assert.NotErrorIs(t, err, ErrPolicyAbsent)
		})
	}
}

func TestDefault_IsValidAndFlat(t *testing.T) {
	d := Default()
	require.NoError(t, Validate(d))

	assert.Empty(t, d.SkillMappings)
	for _, tier := range []domain.RewardTier{domain.TierFirstPlace, domain.TierSecondPlace, domain.TierThirdPlace, domain.TierParticipation} {
		assert.Equal(t, 1.0, d.Tier(tier).XPMultiplier)
		assert.Zero(t, d.Tier(tier).Credits)
	}

	// Each call returns a fresh value
	d.FirstPlace.Credits = 99
	assert.Zero(t, Default().FirstPlace.Credits)
}

func TestBaseXP(t *testing.T) {
	assert.Equal(t, int64(100), BaseXP(nil, 100))
	assert.Equal(t, int64(100), BaseXP(Default(), 100))

	custom := int64(250)
	assert.Equal(t, int64(250), BaseXP(&domain.RewardPolicy{BaseXP: &custom}, 100))
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := `
base_xp: 120
skill_mappings:
  - skill_name: teamwork
    weight: 0.8
    enabled: true
first_place:
  xp_multiplier: 2
  credits: 50
  badges: [champion]
second_place:
  xp_multiplier: 1.5
  credits: 25
third_place:
  xp_multiplier: 1.25
  credits: 10
participation:
  xp_multiplier: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, p.BaseXP)
	assert.Equal(t, int64(120), *p.BaseXP)
	assert.Equal(t, []string{"champion"}, p.FirstPlace.Badges)
	assert.Equal(t, 0.8, p.SkillMappings[0].Weight)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("first_place:\n  credits: -1\n"), 0o600))

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
}

func TestLoadDefault(t *testing.T) {
	ctx := context.Background()

	p, err := LoadDefault(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	p, err = LoadDefault(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("first_place: [oops"), 0o600))
	_, err = LoadDefault(ctx, bad)
	assert.Error(t, err)
}

func TestRepoDefaultPolicyFile(t *testing.T) {
	p, err := LoadFile("../../configs/default_reward_policy.yaml")
	require.NoError(t, err)
	assert.Empty(t, p.EnabledMappings())
}

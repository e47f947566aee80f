package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/tournament-rewards/internal/domain"
)

const participant = "5a0e3f4e-8f4c-4a49-9bb8-0d8f5e1c2a11"

func newCalculator(t *testing.T) *Calculator {
	t.Helper()
	c, err := NewCalculator(DefaultBounds())
	require.NoError(t, err)
	return c
}

func TestTierBaseDelta_StrictlyDecreasing(t *testing.T) {
	tiers := []domain.RewardTier{
		domain.TierFirstPlace,
		domain.TierSecondPlace,
		domain.TierThirdPlace,
		domain.TierParticipation,
	}

	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, TierBaseDelta(tiers[i-1]), TierBaseDelta(tiers[i]))
	}
	assert.GreaterOrEqual(t, TierBaseDelta(domain.TierParticipation), 0.0)
	assert.Equal(t, BaseDeltaParticipation, TierBaseDelta(domain.RewardTier("unknown")))
}

func TestComputeDeltas(t *testing.T) {
	c := newCalculator(t)
	mappings := []domain.SkillMapping{
		{SkillName: "tactics", Weight: 1.0, Enabled: true, Category: "strategy"},
		{SkillName: "endurance", Weight: 0.5, Enabled: true},
		{SkillName: "disabled", Weight: 2.0, Enabled: false},
		{SkillName: "weightless", Weight: 0, Enabled: true},
	}

	deltas := c.ComputeDeltas(participant, domain.TierFirstPlace, mappings)

	require.Len(t, deltas, 2)
	assert.Equal(t, "endurance", deltas[0].Key.SkillName)
	assert.InDelta(t, 1.5, deltas[0].Amount, 1e-9)
	assert.Equal(t, "tactics", deltas[1].Key.SkillName)
	assert.Equal(t, "strategy", deltas[1].Key.Category)
	assert.Equal(t, participant, deltas[1].Key.ParticipantID)
	assert.InDelta(t, 3.0, deltas[1].Amount, 1e-9)
}

func TestComputeDeltas_NoMappings(t *testing.T) {
	c := newCalculator(t)
	assert.Empty(t, c.ComputeDeltas(participant, domain.TierFirstPlace, nil))
	assert.Nil(t, AsMap(nil))
}

func TestComputeDeltas_NeverNegative(t *testing.T) {
	c := newCalculator(t)
	mappings := []domain.SkillMapping{{SkillName: "a", Weight: 0.1, Enabled: true}}

	for _, tier := range []domain.RewardTier{domain.TierFirstPlace, domain.TierSecondPlace, domain.TierThirdPlace, domain.TierParticipation} {
		for _, d := range c.ComputeDeltas(participant, tier, mappings) {
			assert.GreaterOrEqual(t, d.Amount, 0.0, tier)
		}
	}
}

func TestApply_Clamps(t *testing.T) {
	c, err := NewCalculator(Bounds{Min: 0, Max: 10, Baseline: 0})
	require.NoError(t, err)

	key := domain.SkillKey{ParticipantID: participant, SkillName: "tactics"}
	current := domain.SkillValue{ParticipantID: participant, SkillName: "tactics", Baseline: 0, Current: 9}

	updated, change := c.Apply(current, Delta{Key: key, Amount: 3})
	assert.Equal(t, 10.0, updated.Current)
	assert.Equal(t, 3.0, change.Requested)
	assert.Equal(t, 1.0, change.Applied)
	assert.Equal(t, 9.0, change.Before)
	assert.Equal(t, 10.0, change.After)
	assert.Equal(t, 10.0, updated.TotalDelta())

	updated, change = c.Apply(updated, Delta{Key: key, Amount: -25})
	assert.Equal(t, 0.0, updated.Current)
	assert.Equal(t, -10.0, change.Applied)
}

func TestNewValue_StartsAtBaseline(t *testing.T) {
	c, err := NewCalculator(Bounds{Min: 0, Max: 100, Baseline: 20})
	require.NoError(t, err)

	v := c.NewValue(domain.SkillKey{ParticipantID: participant, SkillName: "x", Category: "y"})
	assert.Equal(t, 20.0, v.Baseline)
	assert.Equal(t, 20.0, v.Current)
	assert.Equal(t, "y", v.Category)
	assert.Zero(t, v.TotalDelta())
}

func TestNetDeltas(t *testing.T) {
	next := []Delta{
		{Key: domain.SkillKey{ParticipantID: participant, SkillName: "tactics"}, Amount: 2.0},
		{Key: domain.SkillKey{ParticipantID: participant, SkillName: "speed"}, Amount: 1.0},
	}
	previous := map[string]float64{"tactics": 3.0, "speed": 1.0, "dropped": 0.5}

	net := NetDeltas(participant, previous, next)

	assert.Equal(t, map[string]float64{"tactics": -1.0, "dropped": -0.5}, AsMap(net))
	assert.Equal(t, "dropped", net[0].Key.SkillName)
	assert.Equal(t, participant, net[0].Key.ParticipantID)
}

func TestAccumulate(t *testing.T) {
	changes := []Change{
		{Key: domain.SkillKey{ParticipantID: participant, SkillName: "tactics"}, Requested: -3.0, Applied: -1.0},
		{Key: domain.SkillKey{ParticipantID: participant, SkillName: "speed"}, Requested: 2.0, Applied: 2.0},
	}

	total := Accumulate(map[string]float64{"tactics": 1.0, "endurance": 0.5}, changes)

	assert.Equal(t, map[string]float64{"speed": 2.0, "endurance": 0.5}, total)
	assert.Nil(t, Accumulate(nil, nil))
}

func TestAccumulate_ClampedReversalRestoresValue(t *testing.T) {
	c := newCalculator(t)
	key := domain.SkillKey{ParticipantID: participant, SkillName: "tactics"}
	start := domain.SkillValue{ParticipantID: participant, SkillName: "tactics", Current: 99}

	raised, change := c.Apply(start, Delta{Key: key, Amount: 3.0})
	require.Equal(t, 100.0, raised.Current)
	applied := Accumulate(nil, []Change{change})
	assert.Equal(t, map[string]float64{"tactics": 1.0}, applied)

	reversal := NetDeltas(participant, applied, nil)
	require.Len(t, reversal, 1)
	restored, change := c.Apply(raised, reversal[0])

	assert.Equal(t, 99.0, restored.Current)
	assert.Nil(t, Accumulate(applied, []Change{change}))
}

func TestBounds_Validate(t *testing.T) {
	assert.NoError(t, DefaultBounds().Validate())

	_, err := NewCalculator(Bounds{Min: 10, Max: 0})
	assert.ErrorContains(t, err, ErrMsgInvalidBounds)

	_, err = NewCalculator(Bounds{Min: 0, Max: 10, Baseline: 11})
	assert.Error(t, err)
}

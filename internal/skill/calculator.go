// Package skill converts tournament results into skill profile changes.
// Everything here is pure; persistence is the caller's job.
package skill

import (
	"fmt"
	"math"
	"sort"

	"github.com/osse101/tournament-rewards/internal/domain"
)

var tierBaseDeltas = map[domain.RewardTier]float64{
	domain.TierFirstPlace:    BaseDeltaFirstPlace,
	domain.TierSecondPlace:   BaseDeltaSecondPlace,
	domain.TierThirdPlace:    BaseDeltaThirdPlace,
	domain.TierParticipation: BaseDeltaParticipation,
}

// TierBaseDelta returns the unweighted delta for a tier. Unknown tiers get the participation delta.
func TierBaseDelta(tier domain.RewardTier) float64 {
	if d, ok := tierBaseDeltas[tier]; ok {
		return d
	}
	return BaseDeltaParticipation
}

// Bounds limits the values a skill can take
type Bounds struct {
	Min      float64
	Max      float64
	Baseline float64
}

// DefaultBounds returns the bounds used when none are configured
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinValue, Max: DefaultMaxValue, Baseline: DefaultBaseline}
}

// Validate requires Min <= Baseline <= Max
func (b Bounds) Validate() error {
	if math.IsNaN(b.Min) || math.IsNaN(b.Max) || math.IsNaN(b.Baseline) {
		return fmt.Errorf("%s: NaN", ErrMsgInvalidBounds)
	}
	if b.Min > b.Max || b.Baseline < b.Min || b.Baseline > b.Max {
		return fmt.Errorf("%s: need min <= baseline <= max, got %g <= %g <= %g", ErrMsgInvalidBounds, b.Min, b.Baseline, b.Max)
	}
	return nil
}

// Delta is a requested change to one skill
type Delta struct {
	Key    domain.SkillKey
	Amount float64
}

// Change is a delta after it has been applied to a stored value
type Change struct {
	Key       domain.SkillKey
	Requested float64
	Applied   float64
	Before    float64
	After     float64
}

// Calculator computes and applies skill deltas
type Calculator struct {
	bounds Bounds
}

// NewCalculator validates bounds and returns a Calculator
func NewCalculator(bounds Bounds) (*Calculator, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{bounds: bounds}, nil
}

// Bounds returns the configured bounds
func (c *Calculator) Bounds() Bounds {
	return c.bounds
}

// ComputeDeltas returns one delta per enabled mapping, sorted by skill name.
// Zero deltas are dropped.
func (c *Calculator) ComputeDeltas(participantID string, tier domain.RewardTier, mappings []domain.SkillMapping) []Delta {
	base := TierBaseDelta(tier)

	bySkill := make(map[string]*Delta)
	for _, m := range mappings {
		if !m.Enabled || m.Weight <= 0 {
			continue
		}
		if d, ok := bySkill[m.SkillName]; ok {
			d.Amount += base * m.Weight
			continue
		}
		bySkill[m.SkillName] = &Delta{
			Key:    domain.SkillKey{ParticipantID: participantID, SkillName: m.SkillName, Category: m.Category},
			Amount: base * m.Weight,
		}
	}

	deltas := make([]Delta, 0, len(bySkill))
	for _, d := range bySkill {
		deltas = append(deltas, *d)
	}
	sortDeltas(deltas)
	return deltas
}

// NetDeltas returns next minus previous per skill. Skills only in previous get a negative delta.
// previous is keyed by skill name, as stored on the participation record.
func NetDeltas(participantID string, previous map[string]float64, next []Delta) []Delta {
	net := make(map[string]*Delta, len(next)+len(previous))
	for _, d := range next {
		d := d
		net[d.Key.SkillName] = &d
	}
	for name, amount := range previous {
		if d, ok := net[name]; ok {
			d.Amount -= amount
			continue
		}
		net[name] = &Delta{
			Key:    domain.SkillKey{ParticipantID: participantID, SkillName: name},
			Amount: -amount,
		}
	}

	out := make([]Delta, 0, len(net))
	for _, d := range net {
		if d.Amount != 0 {
			out = append(out, *d)
		}
	}
	sortDeltas(out)
	return out
}

// Accumulate adds the applied amounts of changes to previous and returns the net
// per-skill effect, keyed by skill name. Skills netting to zero are dropped.
func Accumulate(previous map[string]float64, changes []Change) map[string]float64 {
	total := make(map[string]float64, len(previous)+len(changes))
	for name, amount := range previous {
		total[name] = amount
	}
	for _, c := range changes {
		total[c.Key.SkillName] += c.Applied
	}

	for name, amount := range total {
		if math.Abs(amount) < zeroTolerance {
			delete(total, name)
		}
	}
	if len(total) == 0 {
		return nil
	}
	return total
}

// Apply adds delta to current and clamps the result to the bounds
func (c *Calculator) Apply(current domain.SkillValue, delta Delta) (domain.SkillValue, Change) {
	after := clamp(current.Current+delta.Amount, c.bounds.Min, c.bounds.Max)

	change := Change{
		Key:       delta.Key,
		Requested: delta.Amount,
		Applied:   after - current.Current,
		Before:    current.Current,
		After:     after,
	}
	current.Current = after
	return current, change
}

// NewValue returns the profile entry for a skill observed for the first time
func (c *Calculator) NewValue(key domain.SkillKey) domain.SkillValue {
	return domain.SkillValue{
		ParticipantID: key.ParticipantID,
		SkillName:     key.SkillName,
		Category:      key.Category,
		Baseline:      c.bounds.Baseline,
		Current:       c.bounds.Baseline,
	}
}

// AsMap converts deltas to the skill_name -> amount form stored on participation records
func AsMap(deltas []Delta) map[string]float64 {
	if len(deltas) == 0 {
		return nil
	}
	m := make(map[string]float64, len(deltas))
	for _, d := range deltas {
		m[d.Key.SkillName] = d.Amount
	}
	return m
}

func sortDeltas(deltas []Delta) {
	sort.Slice(deltas, func(i, j int) bool {
		return deltas[i].Key.SkillName < deltas[j].Key.SkillName
	})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

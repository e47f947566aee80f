package skill

// Default skill bounds
const (
	DefaultMinValue = 0.0
	DefaultMaxValue = 100.0
	DefaultBaseline = 0.0
)

// Base deltas per reward tier, before the mapping weight is applied
const (
	BaseDeltaFirstPlace    = 3.0
	BaseDeltaSecondPlace   = 2.0
	BaseDeltaThirdPlace    = 1.5
	BaseDeltaParticipation = 0.5
)

// zeroTolerance treats accumulated float noise as no change
const zeroTolerance = 1e-9

// Error messages
const (
	ErrMsgInvalidBounds = "invalid skill bounds"
)

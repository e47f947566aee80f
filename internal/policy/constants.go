package policy

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// CacheSchemaVersion invalidates cached template policies when the policy shape changes
const CacheSchemaVersion = "1.0"

// Fallback reasons, used as log attributes and the fallback metric label
const (
	ReasonAbsent            = "absent"
	ReasonMalformed         = "malformed"
	ReasonTemplateAbsent    = "template_absent"
	ReasonTemplateMalformed = "template_malformed"
)

// Log messages
const (
	LogMsgPolicyFallback     = "Reward policy unusable, falling back"
	LogMsgDefaultPolicyFile  = "Default reward policy file not found, using built-in default"
	LogMsgDefaultPolicyLoad  = "Loaded default reward policy"
	LogMsgTemplateCacheEvict = "Template policy cache entry invalidated"
)

// Error messages
const (
	ErrMsgPolicyAbsent       = "reward policy absent"
	ErrMsgNotMonotonic       = "tier rewards must not increase from first_place to participation"
	ErrMsgFailedReadPolicy   = "failed to read policy file"
	ErrMsgFailedDecodePolicy = "failed to decode policy"
)

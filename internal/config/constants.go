package config

import "time"

const (
	// Configuration file paths
	ConfigPathDefaultRewardPolicy = "configs/default_reward_policy.yaml"
	DefaultDeadLetterPath         = "logs/event_deadletter.jsonl"
)

// Defaults for values not present in the environment
const (
	DefaultPort                = 8080
	DefaultDBMaxConns          = 20
	DefaultDBMaxConnIdleTime   = 5 * time.Minute
	DefaultDBMaxConnLifetime   = 30 * time.Minute
	DefaultBaseXP              = 100
	DefaultPolicyCacheSize     = 128
	DefaultPolicyCacheTTL      = 10 * time.Minute
	DefaultAutoDistributeGrace = 10 * time.Minute
	DefaultAutoDistributeBatch = 20
	DefaultWorkerCount         = 2
	DefaultSkillMax            = 100
)

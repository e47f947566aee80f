package domain

// Event type constants used for event bus subscriptions and metrics.
//
// Event types follow the pattern: <entity>.<action> (e.g., "rewards.distributed")
const (
	// EventTypeRewardsDistributed is published after a distribution batch commits
	EventTypeRewardsDistributed = "rewards.distributed"

	// EventTypeTournamentStateChanged is published after any committed lifecycle change,
	// including the administrative reset
	EventTypeTournamentStateChanged = "tournament.state_changed"

	// EventTypeDistributionRejected is published when a distribution request fails, with the outcome
	EventTypeDistributionRejected = "rewards.rejected"

	// EventTypeTournamentPurged is published after an administrative purge
	EventTypeTournamentPurged = "tournament.purged"
)

package announce

// Embed layout
const (
	EmbedColor       = 0xF1C40F
	EmbedTitleFormat = "🏆 %s: rewards distributed"
	EmbedFooter      = "Tournament rewards"
	MaxPodiumFields  = 3
	WebhookUsername  = "Tournament Rewards"
)

// Log messages
const (
	LogMsgAnnouncerDisabled   = "Results announcer disabled, no webhook configured"
	LogMsgAnnouncerRegistered = "Results announcer registered"
	LogMsgAnnounceFailed      = "Failed to announce tournament results"
	LogMsgAnnounceBadPayload  = "Invalid payload for rewards distributed event"
)

// Error messages
const (
	ErrMsgInvalidWebhookURL = "invalid discord webhook url"
)

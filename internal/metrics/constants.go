package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Reward metric names
const (
	MetricNameDistributions        = "reward_distributions_total"
	MetricNameXPAwarded            = "reward_xp_awarded_total"
	MetricNameCreditsAwarded       = "reward_credits_awarded_total"
	MetricNameDistributionDuration = "reward_distribution_duration_seconds"
	MetricNamePolicyFallbacks      = "reward_policy_fallbacks_total"
	MetricNameLifecycleTransitions = "lifecycle_transitions_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Reward metric help text
const (
	HelpTextDistributions        = "Total number of reward distribution attempts by outcome"
	HelpTextXPAwarded            = "Total XP awarded by committed distributions"
	HelpTextCreditsAwarded       = "Total credits awarded by committed distributions"
	HelpTextDistributionDuration = "Duration of committed reward distributions in seconds"
	HelpTextPolicyFallbacks      = "Total number of distributions that did not use the tournament's own policy"
	HelpTextLifecycleTransitions = "Total number of tournament lifecycle transitions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelReason  = "reason"
	LabelFrom    = "from"
	LabelTo      = "to"
)

// OutcomeSuccess labels committed distributions. Rejections carry the outcome from their event.
const OutcomeSuccess = "success"

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DistributionBuckets covers small brackets through large leagues
var DistributionBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)

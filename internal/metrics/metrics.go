package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Reward Metrics
var (
	Distributions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDistributions,
			Help: HelpTextDistributions,
		},
		[]string{LabelOutcome},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)

	CreditsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsAwarded,
			Help: HelpTextCreditsAwarded,
		},
	)

	DistributionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDistributionDuration,
			Help:    HelpTextDistributionDuration,
			Buckets: DistributionBuckets,
		},
	)

	PolicyFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePolicyFallbacks,
			Help: HelpTextPolicyFallbacks,
		},
		[]string{LabelReason},
	)

	LifecycleTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLifecycleTransitions,
			Help: HelpTextLifecycleTransitions,
		},
		[]string{LabelFrom, LabelTo},
	)
)

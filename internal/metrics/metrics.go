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

// Classifier Metrics
var (
	ClassifierRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClassifierRequests,
			Help: HelpTextClassifierRequests,
		},
		[]string{LabelProvider, LabelResult},
	)

	ClassifierDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameClassifierDuration,
			Help:    HelpTextClassifierDuration,
			Buckets: ClassifierLatencyBuckets,
		},
		[]string{LabelProvider},
	)

	ClassifierCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClassifierCacheLookups,
			Help: HelpTextClassifierCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Business Metrics
var (
	WishesEvaluated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWishesEvaluated,
			Help: HelpTextWishesEvaluated,
		},
		[]string{LabelVariant, LabelOutcome},
	)

	WishProbability = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameWishProbability,
			Help:    HelpTextWishProbability,
			Buckets: ProbabilityBuckets,
		},
	)

	SupportClicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSupportClicks,
			Help: HelpTextSupportClicks,
		},
	)

	SharedSupports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSharedSupports,
			Help: HelpTextSharedSupports,
		},
		[]string{LabelResult},
	)

	WishResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWishResets,
			Help: HelpTextWishResets,
		},
	)

	PolicyReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePolicyReloads,
			Help: HelpTextPolicyReloads,
		},
		[]string{LabelResult},
	)
)

// Usage gauges, refreshed by the usage sampler job
var (
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)

	ClassifierCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameClassifierCacheEntries,
			Help: HelpTextClassifierCacheEntries,
		},
	)
)

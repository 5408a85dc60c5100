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

// Classifier metric names
const (
	MetricNameClassifierRequests     = "classifier_requests_total"
	MetricNameClassifierDuration     = "classifier_duration_seconds"
	MetricNameClassifierCacheLookups = "classifier_cache_lookups_total"
)

// Business metric names
const (
	MetricNameWishesEvaluated = "wishes_evaluated_total"
	MetricNameWishProbability = "wish_probability"
	MetricNameSupportClicks   = "support_clicks_total"
	MetricNameSharedSupports  = "shared_supports_total"
	MetricNameWishResets      = "wish_resets_total"
	MetricNamePolicyReloads   = "policy_reloads_total"
)

// Usage gauge names
const (
	MetricNameSessionsActive         = "sessions_active"
	MetricNameClassifierCacheEntries = "classifier_cache_entries"
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

// Classifier metric help text
const (
	HelpTextClassifierRequests     = "Total number of sentiment classifier calls by provider and result"
	HelpTextClassifierDuration     = "Sentiment classifier latency in seconds"
	HelpTextClassifierCacheLookups = "Classifier result cache lookups by result (hit or miss)"
)

// Business metric help text
const (
	HelpTextWishesEvaluated = "Total number of wishes evaluated by variant and outcome"
	HelpTextWishProbability = "Initial probability assigned to accepted wishes"
	HelpTextSupportClicks   = "Total number of support slots consumed by wish owners"
	HelpTextSharedSupports  = "Total number of friend support attempts by result"
	HelpTextWishResets      = "Total number of wishes cleared by their owner"
	HelpTextPolicyReloads   = "Total number of wish policy reloads by result"
)

// Usage gauge help text
const (
	HelpTextSessionsActive         = "Sessions currently held in the session store"
	HelpTextClassifierCacheEntries = "Verdicts currently held in the classifier cache"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelProvider = "provider"
	LabelResult   = "result"
	LabelVariant  = "variant"
	LabelOutcome  = "outcome"
)

// Label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)

// UnmatchedRoute is the path label for requests no route matched
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ClassifierLatencyBuckets covers local ONNX runs (milliseconds) up to slow hosted inference.
var ClassifierLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ProbabilityBuckets splits the 0-99.9 probability range.
var ProbabilityBuckets = []float64{50, 60, 65, 70, 75, 80, 85, 90, 95, 99.9}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected shape"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

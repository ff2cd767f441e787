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

// Command metric names
const (
	MetricNameCommandsTotal   = "closetbot_commands_total"
	MetricNameCommandDuration = "closetbot_command_duration_seconds"
	MetricNameItemsMoved      = "closetbot_items_moved_total"
)

// Store metric names
const (
	MetricNameStoreOperationDuration = "closetbot_store_operation_duration_seconds"
	MetricNameStoreErrors            = "closetbot_store_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal      = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration    = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight   = "Current number of HTTP requests being served"
	HelpTextCommandsTotal          = "Total number of chat commands handled, by outcome"
	HelpTextCommandDuration        = "Chat command handling latency in seconds"
	HelpTextItemsMoved             = "Total number of items moved, by destination"
	HelpTextStoreOperationDuration = "Item store operation latency in seconds"
	HelpTextStoreErrors            = "Total number of failed item store operations"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelCommand   = "command"
	LabelOutcome   = "outcome"
	LabelLocation  = "location"
	LabelOperation = "operation"
)

// RouteUnmatched labels requests that matched no registered route
const RouteUnmatched = "unmatched"

// Command outcomes
const (
	OutcomeOK         = "ok"
	OutcomeUsage      = "usage"
	OutcomeNotFound   = "not_found"
	OutcomeStoreError = "store_error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// StoreLatencyBuckets covers a round trip to a remote store, 1ms to 10s.
var StoreLatencyBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 10}

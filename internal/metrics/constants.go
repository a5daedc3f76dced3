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

// Game metric names
const (
	MetricNameActionsPerformed = "farm_actions_total"
	MetricNameActionsRejected  = "farm_actions_rejected_total"
	MetricNameCropsHarvested   = "farm_crops_harvested_total"
	MetricNameCoinsEarned      = "farm_coins_earned_total"
	MetricNameCoinsSpent       = "farm_coins_spent_total"
	MetricNameCropsWithered    = "farm_crops_withered_total"
	MetricNameLevelUps         = "farm_level_ups_total"
	MetricNameRegistrations    = "farm_registrations_total"
	MetricNameGamesOver        = "farm_games_over_total"
	MetricNameCurrentDay       = "farm_current_day"
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

// Game metric help text
const (
	HelpTextActionsPerformed = "Total number of farmer actions that succeeded"
	HelpTextActionsRejected  = "Total number of farmer actions refused by a game rule"
	HelpTextCropsHarvested   = "Total number of crops harvested"
	HelpTextCoinsEarned      = "Total coins earned from harvests"
	HelpTextCoinsSpent       = "Total coins spent on seeds, tools, fertilizer and titles"
	HelpTextCropsWithered    = "Total number of crops that withered when a day turned"
	HelpTextLevelUps         = "Total number of farmer levels gained"
	HelpTextRegistrations    = "Total number of title registrations"
	HelpTextGamesOver        = "Total number of finished games"
	HelpTextCurrentDay       = "Day counter of the running game"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelRoute  = "route"
	LabelStatus = "status"
	LabelType   = "type"
	LabelVerb   = "verb"
	LabelKind   = "kind"
	LabelCrop   = "crop"
	LabelTitle  = "title"
	LabelReason = "reason"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

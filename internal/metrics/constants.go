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
	MetricNameEventsPublished     = "events_published_total"
	MetricNameNotificationsByKind = "garden_notifications_total"
)

// Garden metric names
const (
	MetricNameGardenActions         = "garden_actions_total"
	MetricNameGardenHarvests        = "garden_harvests_total"
	MetricNameGardenCoinsEarned     = "garden_coins_earned_total"
	MetricNameGardenCoinsSpent      = "garden_coins_spent_total"
	MetricNameGardenXPExchanged     = "garden_xp_exchanged_total"
	MetricNameGardenPersistFailures = "garden_persist_failures_total"
	MetricNameGardenSessionsCached  = "garden_sessions_cached"
	MetricNameGardenTickDuration    = "garden_tick_duration_seconds"
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
	HelpTextEventsPublished     = "Total number of events published"
	HelpTextNotificationsByKind = "Garden notifications emitted, by kind"
)

// Garden metric help text
const (
	HelpTextGardenActions         = "Garden actions dispatched, by action and result"
	HelpTextGardenHarvests        = "Harvests completed, by variant"
	HelpTextGardenCoinsEarned     = "Coins paid out by harvests and exchanges"
	HelpTextGardenCoinsSpent      = "Coins spent in the seed and gear shops"
	HelpTextGardenXPExchanged     = "XP converted into coins"
	HelpTextGardenPersistFailures = "Snapshot writes that failed after the retry"
	HelpTextGardenSessionsCached  = "Garden sessions currently held in memory"
	HelpTextGardenTickDuration    = "Time spent applying one background tick to all cached sessions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelKind    = "kind"
	LabelAction  = "action"
	LabelResult  = "result"
	LabelVariant = "variant"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickDurationBuckets range from 100us to 5s
var TickDurationBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUnreadable = "Event payload could not be decoded"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)

package metrics

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

// Business metric names
const (
	MetricNameCharactersCreated = "characters_created_total"
	MetricNameLevelUps          = "level_ups_total"
	MetricNameQuizzesCompleted  = "sorting_quizzes_completed_total"
	MetricNameItemsTraded       = "items_traded_total"
	MetricNameMarketSales       = "market_sales_total"
	MetricNameGalleonsTraded    = "galleons_traded_total"
	MetricNameItemsUsed         = "items_used_total"
	MetricNameSpellsCast        = "spells_cast_total"
	MetricNameArtifactsClaimed  = "artifacts_claimed_total"
)

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

// Business metric help text
const (
	HelpTextCharactersCreated = "Total number of characters created"
	HelpTextLevelUps          = "Total number of levels gained across all characters"
	HelpTextQuizzesCompleted  = "Total number of completed sorting quizzes"
	HelpTextItemsTraded       = "Total number of items moved between characters"
	HelpTextMarketSales       = "Total number of completed market sales"
	HelpTextGalleonsTraded    = "Total galleons moved through market sales"
	HelpTextItemsUsed         = "Total number of consumables used"
	HelpTextSpellsCast        = "Total number of spells cast"
	HelpTextArtifactsClaimed  = "Total number of world artifacts claimed"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelHouse  = "house"
	LabelItem   = "item"
	LabelSpell  = "spell"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)

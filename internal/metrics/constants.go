package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRateLimited      = "http_requests_rate_limited_total"
)

// Snapshot metric names
const (
	MetricNameSnapshotsBuilt = "snapshots_built_total"
)

// PathLabelUnmatched labels requests that matched no route
const PathLabelUnmatched = "unmatched"

// Miner metric names
const (
	MetricNameWatchedMinutes = "miner_watched_minutes_total"
	MetricNameDropsClaimed   = "miner_drops_claimed_total"
	MetricNameMinerState     = "miner_state"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRateLimited      = "Total number of HTTP requests rejected by the rate limiter"
)

// Snapshot metric help text
const (
	HelpTextSnapshotsBuilt = "Total number of snapshots built, by kind"
)

// Miner metric help text
const (
	HelpTextWatchedMinutes = "Total number of minutes credited to drops"
	HelpTextDropsClaimed   = "Total number of drops claimed"
	HelpTextMinerState     = "Current miner state, 1 for the active state and 0 otherwise"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelState  = "state"
	LabelGame   = "game"
)

// Snapshot kinds
const (
	SnapshotKindStatus    = "status"
	SnapshotKindInventory = "inventory"
)

// HTTPLatencyBuckets are tuned for a local server answering from memory
var HTTPLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}

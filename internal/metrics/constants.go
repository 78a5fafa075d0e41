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

// Business metric names
const (
	MetricNameWalletOperations = "wallet_operations_total"
	MetricNameWalletBalance    = "wallet_balance"
	MetricNameWalletAmount     = "wallet_amount_total"
	MetricNameSlotRounds       = "slot_rounds_total"
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

// Business metric help text
const (
	HelpTextWalletOperations = "Total number of wallet operations by operation and result code"
	HelpTextWalletBalance    = "Current wallet balance"
	HelpTextWalletAmount     = "Total money moved through the wallet by direction"
	HelpTextSlotRounds       = "Total number of resolved slot rounds by payout band"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelCode      = "code"
	LabelDirection = "direction"
	LabelBand      = "band"
)

// ============================================================================
// Label Values
// ============================================================================

// Wallet operation label values
const (
	OperationDeposit  = "deposit"
	OperationWithdraw = "withdraw"
	OperationBet      = "bet"
)

// Money direction label values
const (
	DirectionDeposited = "deposited"
	DirectionWithdrawn = "withdrawn"
	DirectionStaked    = "staked"
	DirectionWon       = "won"
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
	LogMsgMetricsRecorded = "Metrics recorded for operation"
)

// PathLabelUnmatched is the path label for requests no route matched
const PathLabelUnmatched = "unmatched"

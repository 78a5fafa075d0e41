package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Metrics server starting"
	LogMsgServerStopped    = "Metrics server stopped"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderXSSProtection      = "X-XSS-Protection"
	HeaderReferrerPolicy     = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Routes
const (
	PathHealthz = "/healthz"
	PathVersion = "/version"
	PathMetrics = "/metrics"
	PathWallet  = "/wallet"
)

// ReadHeaderTimeoutSeconds bounds how long a client may take to send headers
const ReadHeaderTimeoutSeconds = 5

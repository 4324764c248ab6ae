package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertHighRate = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarted   = "Web server started on http://localhost:%d"
	LogMsgServerStopped   = "Web server stopped"
	LogMsgServeFailed     = "Web server terminated unexpectedly"
	LogMsgRequestStarted  = "Request started"
	LogMsgRequestComplete = "Request completed"
	LogMsgRequestHeaders  = "Request headers"
)

// HTTP header names
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRetryAfter     = "Retry-After"
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
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
	RouteIndex     = "/"
	RouteIcon      = "/icon.png"
	RouteStatus    = "/api/status"
	RouteInventory = "/api/inventory"
	RouteStatic    = "/static/*"
	PrefixStatic   = "/static/"
	RouteHealthz   = "/healthz"
	RouteReadyz    = "/readyz"
	RouteVersion   = "/version"
	RouteMetrics   = "/metrics"
	RouteSwagger   = "/swagger/*"
)

// QuietPaths are served without request logging
var QuietPaths = []string{
	RouteHealthz,
	RouteReadyz,
	RouteMetrics,
}

// PollPaths are hit by the dashboard every few seconds and are logged at debug level
var PollPaths = []string{
	"/api/",
	PrefixStatic,
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

const (
	readHeaderTimeout = 5 * time.Second
	rateLimitWindow   = time.Minute
	// rateLimitMaxClients bounds the number of tracked client addresses
	rateLimitMaxClients = 4096
	highRateLogEvery    = 100
)

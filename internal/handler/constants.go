package handler

import "time"

// Headers and content types
const (
	HeaderContentType = "Content-Type"
	HeaderAllow       = "Allow"
	ContentTypeJSON   = "application/json"
	ContentTypeText   = "text/plain; charset=utf-8"
)

// Web asset file names inside the web directory
const (
	IndexFile = "index.html"
	IconFile  = "icon.png"
)

// User-facing messages
const (
	ErrMsgIndexNotFound      = "Web Interface Error: index.html not found"
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgMethodNotAllowed   = "method not allowed"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgIndexMissing    = "index.html not found in web directory"
	LogMsgSnapshotBuilt   = "Snapshot built"
)

const (
	readinessTimeout    = 2 * time.Second
	initialBufferSize   = 1024
	maxPooledBufferSize = 64 * 1024
)

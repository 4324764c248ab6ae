package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgSessionFileNotFound = "session file not found"
	ErrMsgInvalidSession      = "invalid session file"
	ErrMsgWorkerNotStarted    = "worker has not reported a state yet"
	ErrMsgWorkerExited        = "worker has exited"
	ErrMsgDropNotFound        = "drop not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSessionFileNotFound = errors.New(ErrMsgSessionFileNotFound)
	ErrInvalidSession      = errors.New(ErrMsgInvalidSession)
	ErrWorkerNotStarted    = errors.New(ErrMsgWorkerNotStarted)
	ErrWorkerExited        = errors.New(ErrMsgWorkerExited)
	ErrDropNotFound        = errors.New(ErrMsgDropNotFound)
)

package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Watch Worker
// ============================================================================

const (
	LogMsgWatchWorkerStarting = "Watch worker starting"
	LogMsgWatchWorkerStopping = "Shutting down watch worker"
	LogMsgWatchWorkerStopped  = "Watch worker stopped"
	LogMsgSessionMissing      = "Session file not found, starting logged out with an empty inventory"
	LogMsgSessionLoaded       = "Session loaded"
	LogMsgGamesUpdated        = "Games to watch updated"
	LogMsgStateChanged        = "Miner state changed"
	LogMsgMinuteWatched       = "Minute watched"
	LogMsgDropClaimable       = "Drop ready to claim"
	LogMsgDropClaimed         = "Drop claimed"
	LogMsgClaimQueueFull      = "Claim queue full, will retry on next tick"
	LogMsgNothingToMine       = "No active campaign with minable drops"
	LogMsgShutdownTimedOut    = "Watch worker shutdown timed out"
)

// ============================================================================
// Configuration
// ============================================================================

const (
	// DefaultWatchInterval is one watched minute per tick
	DefaultWatchInterval = time.Minute

	claimWorkers   = 1
	claimQueueSize = 16
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)

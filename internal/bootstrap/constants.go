package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "miner_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new one
	LogFileRetentionCount = 10
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgStarting           = "Starting drops miner"
	LogMsgConfigLoaded       = "Configuration loaded"
	LogMsgConfigWarning      = "Configuration warning"
	LogMsgShuttingDown       = "Shutting down..."
	LogMsgServerStopFailed   = "Web server forced to shutdown"
	LogMsgWorkerStopFailed   = "Watch worker shutdown failed"
	LogMsgShutdownComplete   = "Shutdown complete"
	LogMsgOldLogDeleteFailed = "Failed to delete old log file"
)

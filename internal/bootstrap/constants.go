package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new one opens
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingMyFarm      = "Starting MyFarm"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgEventReceived              = "Event received"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Game Setup
// =============================================================================

const (
	LogMsgLayoutLoaded    = "Farm layout loaded"
	LogMsgLayoutGenerated = "Farm layout generated"
	ErrMsgFailedLayout    = "failed to prepare farm layout"
)

// =============================================================================
// Ops Server
// =============================================================================

const (
	LogMsgOpsServerDisabled = "Ops server disabled"
	LogMsgOpsServerFailed   = "Ops server failed"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	// ShutdownTimeout bounds the graceful stop of the ops server
	ShutdownTimeout = 5 * time.Second

	LogMsgShuttingDownServer   = "Shutting down ops server..."
	LogMsgServerForcedShutdown = "Ops server forced to shutdown"
	LogMsgShutdownComplete     = "Shutdown complete"
	LogMsgLogFileCloseFailed   = "Failed to close log file"
)

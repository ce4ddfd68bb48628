package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0o644
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

	// LogFileRetentionLimit is the number of log files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGardenBot   = "Starting GardenBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgDiscordNotifierRegistered  = "Discord notifier registered"
	LogMsgDiscordNotifierDisabled    = "Discord webhook not configured, notifier disabled"
	ErrMsgFailedCreateDiscordSession = "failed to create discord session"
	ErrMsgFailedCreateNotifier       = "failed to create discord notifier"
)

// =============================================================================
// Garden Store
// =============================================================================

const (
	LogMsgStoreOpened          = "Garden store opened"
	ErrMsgUnknownStoreBackend  = "unknown store backend"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrate        = "failed to run database migrations"
	ErrMsgFailedConnectRedis   = "failed to connect to redis"
	ErrMsgFailedOpenFileStore  = "failed to open file store"
	LogMsgStoreCloseFailed     = "Garden store close failed"
	LogMsgStoreNotListable     = "Garden store cannot list sessions, warmup skipped"
	LogMsgWarmupComplete       = "Session warmup complete"
	LogMsgWarmupSessionFailed  = "Failed to warm session"
	ErrMsgFailedListSessions   = "failed to list sessions"
	DefaultWarmupSessionsLimit = 256
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgStoppingScheduler          = "Stopping scheduler..."
	LogMsgStoppingWorkerPool         = "Stopping worker pool..."
	LogMsgFlushingGardens            = "Flushing garden sessions..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgGardenShutdownFailed       = "Garden service shutdown failed"
)

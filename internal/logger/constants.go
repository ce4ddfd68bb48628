package logger

import "log/slog"

// Accepted LOG_LEVEL values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// levels maps LOG_LEVEL values onto slog; anything else logs at info
var levels = map[string]slog.Level{
	LogLevelDebug:   slog.LevelDebug,
	LogLevelInfo:    slog.LevelInfo,
	LogLevelWarn:    slog.LevelWarn,
	LogLevelWarning: slog.LevelWarn,
	LogLevelError:   slog.LevelError,
}

// LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "garden-bot"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// ENVIRONMENT values
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Attribute keys stamped on every record, or per request
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeySessionID   = "session_id"
)

package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/GardenBot_Go/internal/config"
	"github.com/osse101/GardenBot_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, prunes old session logs and installs the
// process-wide logger. The caller must close the returned file.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDev(),
	)
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", logFileName)
	slog.Info(LogMsgStartingGardenBot,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"store_backend", cfg.StoreBackend)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"tick_interval", cfg.TickInterval,
		"session_cache_size", cfg.SessionCacheSize,
		"session_cache_ttl", cfg.SessionCacheTTL,
		"workers", cfg.WorkerCount)

	return logFile, nil
}

// cleanupLogs removes old session logs, keeping the most recent ones.
// Log names embed a sortable timestamp so lexical order is age order.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) < LogFileRetentionLimit {
		return
	}

	sort.Strings(logFiles)
	toDelete := len(logFiles) - LogFileRetentionCount
	for _, name := range logFiles[:toDelete] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Printf(LogMsgFailedDeleteOldLog, name, err)
		}
	}
}

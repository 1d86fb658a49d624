package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mirefall/GrimoireBot_Go/internal/config"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, cleans up old logs, sets up a MultiWriter for
// stdout and file output, and installs the default slog logger.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	// Create logs directory
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	// Cleanup old logs (keep the most recent)
	cleanupLogs(cfg.LogDir)

	// Create timestamped log file
	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	// Initialize logger with MultiWriter (stdout + file)
	mw := io.MultiWriter(os.Stdout, logFile)

	logConfig := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, version, cfg.Environment, false)
	logger.InitLoggerWithWriter(logConfig, mw)

	logger.Info(LogMsgLoggingInitialized,
		"level", cfg.LogLevel,
		"format", cfg.LogFormat,
		"file", logFileName)

	return logFile, nil
}

// cleanupLogs removes old session logs, keeping the most recent
// LogFileRetentionCount files. Failures are reported to stderr because the
// logger is not installed yet.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), LogFileExtension) {
			logs = append(logs, entry.Name())
		}
	}

	if len(logs) <= LogFileRetentionCount {
		return
	}

	// Timestamped names sort chronologically
	sort.Strings(logs)
	for _, name := range logs[:len(logs)-LogFileRetentionCount] {
		path := filepath.Join(logDir, name)
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, LogMsgFailedDeleteOldLog, path, err)
		}
	}
}

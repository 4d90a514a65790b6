package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DebugLogger provides debug logging for orchestrator operations. It wraps
// file-based logging with thread-safe access.
type DebugLogger struct {
	mu   sync.Mutex
	file *os.File
}

// NewDebugLogger creates a logger writing to the specified path. If the
// path is empty, returns a no-op logger. Creates parent directories if they
// don't exist.
func NewDebugLogger(logPath string) (*DebugLogger, error) {
	if logPath == "" {
		return &DebugLogger{}, nil
	}

	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := &DebugLogger{file: f}
	logger.Log("=== Orchestrator debug log started at %s ===", time.Now().Format(time.RFC3339))
	return logger, nil
}

// NewDebugLoggerForDir creates a debug logger under dir/.maestro/logs.
// Returns a no-op logger if the directory cannot be created.
func NewDebugLoggerForDir(dir string) *DebugLogger {
	logPath := filepath.Join(dir, ".maestro", "logs", "orchestrator-debug.log")
	logger, err := NewDebugLogger(logPath)
	if err != nil {
		return &DebugLogger{}
	}
	return logger
}

// NopLogger returns a no-op logger for testing or when logging is disabled.
func NopLogger() *DebugLogger {
	return &DebugLogger{}
}

// Log writes a timestamped message to the debug log. If the logger is nil
// or has no file, this is a no-op.
func (l *DebugLogger) Log(format string, args ...interface{}) {
	if l == nil || l.file == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.file, "[%s] %s\n", timestamp, msg)
	l.file.Sync()
}

// Close closes the log file. Safe to call on a nil or no-op logger.
func (l *DebugLogger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// Package logging provides the leveled logger used by the cover engine
// and its tooling. Entries are kept in an in-memory store and mirrored
// to an optional io.Writer.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is a central logger that writes to a store and an optional io.Writer.
type Logger struct {
	mu     sync.Mutex
	store  *Store
	writer io.Writer
	debug  bool
}

// NewLogger creates and initializes a new Logger instance.
func NewLogger() *Logger {
	return &Logger{
		store:  newStore(),
		writer: io.Discard, // Default to discarding output
	}
}

// SetWriter sets the output destination for the logger.
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	l.writer = w
}

// Store returns the internal entry store.
func (l *Logger) Store() *Store {
	return l.store
}

// SetDebug enables or disables debug-level logging.
func (l *Logger) SetDebug(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = enable
}

func (l *Logger) IsDebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

// logf is the internal handler for formatted logging.
func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if level == LevelDebug && !l.IsDebugEnabled() {
		return
	}

	entry := Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   fmt.Sprintf(format, v...),
	}
	l.store.Add(entry)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer, "%s %-5s %s\n", entry.Timestamp.Format("15:04:05.000"), level.String(), entry.Message)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(LevelInfo, format, v...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(LevelWarn, format, v...)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(LevelError, format, v...)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(LevelDebug, format, v...)
}

// ---- Global / Default Logger ----

var defaultLogger = NewLogger()

// SetDefault replaces the default logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// Default returns the current default logger.
func Default() *Logger {
	return defaultLogger
}

func IsDebugEnabled() bool {
	return defaultLogger.IsDebugEnabled()
}

// Infof logs a formatted informational message using the default logger.
func Infof(format string, v ...interface{}) {
	defaultLogger.Infof(format, v...)
}

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, v ...interface{}) {
	defaultLogger.Warnf(format, v...)
}

// Errorf logs a formatted error message using the default logger.
func Errorf(format string, v ...interface{}) {
	defaultLogger.Errorf(format, v...)
}

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, v ...interface{}) {
	defaultLogger.Debugf(format, v...)
}

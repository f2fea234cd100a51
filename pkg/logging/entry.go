package logging

import "time"

// Level defines the severity of a log entry.
type Level int

// Enum for log levels. The order is important for filtering.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of a Level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Entry represents a single, structured log message.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
}

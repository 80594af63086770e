package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level represents the severity of a log message
type Level int

const (
	// LevelDebug is for progress detail shown with --verbose
	LevelDebug Level = iota
	// LevelInfo is for normal operational messages
	LevelInfo
	// LevelWarn is for problems that do not stop the run
	LevelWarn
	// LevelError is for failures
	LevelError
)

var (
	mu       sync.Mutex
	output   io.Writer = os.Stderr
	minLevel           = LevelInfo
	prefix             = "[scss-lite]"
)

// SetOutput sets the output destination (primarily for testing)
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetLevel sets the minimum log level to display
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = level
}

// GetLevel returns the current minimum log level
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return minLevel
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info logs an info message
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	logf(LevelWarn, "Warning: "+format, args...)
}

// Error logs an error message
func Error(format string, args ...any) {
	logf(LevelError, "Error: "+format, args...)
}

func logf(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if level < minLevel || output == nil {
		return
	}

	fmt.Fprintf(output, prefix+" "+format+"\n", args...)
}

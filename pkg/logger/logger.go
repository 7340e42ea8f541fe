// Package logger provides file-backed diagnostic logging for gesture
// execution. Logging goes to a file rather than stdout so it never
// interleaves with harness output; until Init is called all messages
// are dropped.
package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
)

var (
	globalLogger *log.Logger
	logFile      *os.File
	mu           sync.Mutex
)

// Init initializes the global logger with the specified log file path.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	logFile = f
	globalLogger = log.New(f, "", log.Ltime|log.Lmicroseconds)
	return nil
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
		globalLogger = nil
	}
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	logf("[INFO] "+format, v...)
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	logf("[DEBUG] "+format, v...)
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	logf("[WARN] "+format, v...)
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	logf("[ERROR] "+format, v...)
}

func logf(format string, v ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Printf(format, v...)
	}
}

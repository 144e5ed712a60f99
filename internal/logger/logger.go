// Package logger provides the leveled diagnostics used by the rex CLI.
package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

// Logger writes prefixed diagnostic lines. Debug lines are dropped unless
// verbose output is enabled.
type Logger struct {
	mu            sync.Mutex
	debugLogger   *log.Logger
	warningLogger *log.Logger
	errorLogger   *log.Logger
	verbose       bool
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// New returns a Logger writing to w.
func New(w io.Writer, verbose bool) *Logger {
	const flags = log.LstdFlags | log.Lmsgprefix
	return &Logger{
		debugLogger:   log.New(w, "[DEBUG] ", flags),
		warningLogger: log.New(w, "[WARN] ", flags),
		errorLogger:   log.New(w, "[ERROR] ", flags),
		verbose:       verbose,
	}
}

// Default returns the process-wide Logger, writing to stderr.
func Default() *Logger {
	once.Do(func() {
		defaultLogger = New(os.Stderr, false)
	})
	return defaultLogger
}

// SetOutput redirects every level to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugLogger.SetOutput(w)
	l.warningLogger.SetOutput(w)
	l.errorLogger.SetOutput(w)
}

// Debug logs a debug message when verbose output is on.
func (l *Logger) Debug(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.verbose {
		l.debugLogger.Printf(format, args...)
	}
}

// Warning logs a warning message.
func (l *Logger) Warning(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warningLogger.Printf(format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorLogger.Printf(format, args...)
}

// Error logs an error message on the default Logger.
func Error(format string, args ...any) {
	Default().Error(format, args...)
}

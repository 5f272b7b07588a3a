// ABOUTME: Logrus-backed logger implementation with level and format support
// ABOUTME: Adapts the core Logger interface onto structured logrus entries

package logrus

import (
	"io"
	"os"
	"strings"

	sirupsen "github.com/sirupsen/logrus"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error (default info)
	Level string

	// Format is "json" or "text" (default text)
	Format string

	// Output defaults to stdout
	Output io.Writer
}

// Logger implements the Logger interface using logrus
type Logger struct {
	base *sirupsen.Logger
}

// NewLogger creates a new logrus-backed logger
func NewLogger(opts Options) *Logger {
	l := sirupsen.New()

	if opts.Output != nil {
		l.SetOutput(opts.Output)
	} else {
		l.SetOutput(os.Stdout)
	}

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&sirupsen.JSONFormatter{})
	} else {
		l.SetFormatter(&sirupsen.TextFormatter{FullTimestamp: true})
	}

	l.SetLevel(parseLevel(opts.Level))

	return &Logger{base: l}
}

func parseLevel(level string) sirupsen.Level {
	switch strings.ToLower(level) {
	case "debug":
		return sirupsen.DebugLevel
	case "warn", "warning":
		return sirupsen.WarnLevel
	case "error":
		return sirupsen.ErrorLevel
	default:
		return sirupsen.InfoLevel
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.withFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.withFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.withFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.withFields(fields).Error(msg)
}

func (l *Logger) withFields(fields map[string]interface{}) *sirupsen.Entry {
	if len(fields) == 0 {
		return sirupsen.NewEntry(l.base)
	}
	return l.base.WithFields(sirupsen.Fields(fields))
}

// Package logger provides the shared diagnostic logger.
//
// Diagnostics always go to stderr so that stdout carries only command output
// (rendered tables, listings, JSON).
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var defaultLogger *logrus.Logger

func init() {
	defaultLogger = logrus.New()
	defaultLogger.SetOutput(os.Stderr)
	defaultLogger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           false,
	})

	logLevel := os.Getenv("LOG_LEVEL")
	if os.Getenv("GO_ENV") == "test" && logLevel == "" {
		logLevel = "silent"
	}
	if logLevel == "" {
		logLevel = "info"
	}
	_ = ConfigureFromString(logLevel)
}

// GetLogger returns the default logger instance.
func GetLogger() *logrus.Logger {
	return defaultLogger
}

// WithName creates a child logger with a name field.
func WithName(name string) *logrus.Entry {
	return defaultLogger.WithField("name", name)
}

// WithFields creates a logger with additional fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return defaultLogger.WithFields(fields)
}

// SetLevel sets the logging level.
func SetLevel(level logrus.Level) {
	defaultLogger.SetLevel(level)
}

// SetOutput redirects diagnostics, mainly for tests.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// ConfigureFromString configures the logger from a level name.
// "silent" discards all output.
func ConfigureFromString(levelStr string) error {
	levelStr = strings.ToLower(strings.TrimSpace(levelStr))
	if levelStr == "silent" {
		defaultLogger.SetOutput(io.Discard)
		return nil
	}

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	defaultLogger.SetLevel(level)
	return nil
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced for library use.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var logger = newLogger(os.Stderr)

func init() {
	SetLevel(os.Getenv("VBO_LOG_LEVEL"))
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{TimestampFormat: time.RFC3339, FullTimestamp: true})
	return l
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	logger.SetOutput(w)
}

// SetLevel sets the minimum level by name: debug, info, warn, error.
// Unknown or empty names select info.
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Entry returns the shared logger for structured logging.
func Entry() logrus.FieldLogger {
	return logger
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Infof(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}

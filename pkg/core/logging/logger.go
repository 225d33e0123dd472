// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     logging
// Description: Structured key/value logger used across BookFab
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Level represents log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) logrus() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Logger logs messages with alternating key/value pairs
type Logger struct {
	entry *logrus.Entry
	name  string
}

// New creates a logger with the default configuration
func New(name string) *Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{entry: logrus.NewEntry(l)}
}

// Name returns the component name of the logger
func (l *Logger) Name() string { return l.name }

// WithLevel returns a logger with its own minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	base := l.entry.Logger
	clone := logrus.New()
	clone.SetOutput(base.Out)
	clone.SetFormatter(base.Formatter)
	clone.SetReportCaller(base.ReportCaller)
	clone.SetLevel(level.logrus())

	entry := logrus.NewEntry(clone).WithFields(l.entry.Data)
	return &Logger{entry: entry, name: l.name}
}

// With returns a logger that adds keyvals to every entry
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(fields(keyvals)), name: l.name}
}

// Debug logs at debug level
func (l *Logger) Debug(msg string, keyvals ...interface{}) {
	l.entry.WithFields(fields(keyvals)).Debug(msg)
}

// Info logs at info level
func (l *Logger) Info(msg string, keyvals ...interface{}) {
	l.entry.WithFields(fields(keyvals)).Info(msg)
}

// Warn logs at warn level
func (l *Logger) Warn(msg string, keyvals ...interface{}) {
	l.entry.WithFields(fields(keyvals)).Warn(msg)
}

// Error logs at error level
func (l *Logger) Error(msg string, keyvals ...interface{}) {
	l.entry.WithFields(fields(keyvals)).Error(msg)
}

// fields converts alternating key/value pairs. A trailing key without a
// value is kept under "!BADKEY".
func fields(keyvals []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(keyvals)/2+1)
	for i := 0; i < len(keyvals); i += 2 {
		if i+1 >= len(keyvals) {
			f["!BADKEY"] = keyvals[i]
			break
		}
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		val := keyvals[i+1]
		if err, ok := val.(error); ok {
			val = err.Error()
		}
		f[key] = val
	}
	return f
}

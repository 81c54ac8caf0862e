// Package logging writes the dashboard's line-oriented debug log.
//
// Lines look like
//
//	2024/09/22 10:00:00 WARN invalid key key=x mode=main-menu
//
// The log is write-only; nothing in the dashboard reads it back.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Level orders log lines by severity.
type Level = log.Level

const (
	LevelDebug = log.DebugLevel
	LevelInfo  = log.InfoLevel
	LevelWarn  = log.WarnLevel
	LevelError = log.ErrorLevel
)

// ParseLevel reads a level name, case-insensitively. An empty name is
// debug.
func ParseLevel(s string) (Level, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "":
		return LevelDebug, nil
	case "warning":
		return LevelWarn, nil
	default:
		l, err := log.ParseLevel(name)
		if err != nil {
			return LevelDebug, fmt.Errorf("unknown log level: %s", s)
		}
		return l, nil
	}
}

// Logger writes leveled lines with key=value fields. A nil Logger drops
// everything.
type Logger struct {
	l *log.Logger
}

// New returns a logger writing to w.
func New(w io.Writer, min Level) *Logger {
	return &Logger{l: log.NewWithOptions(w, log.Options{
		Level:           min,
		ReportTimestamp: true,
		TimeFormat:      log.DefaultTimeFormat,
	})}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, log.FatalLevel)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open truncates path and logs to it. An empty path discards.
func Open(path string, min Level) (*Logger, io.Closer, error) {
	if path == "" {
		return Discard(), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return New(f, min), f, nil
}

func (l *Logger) Debug(msg string, kv ...any) { l.Log(LevelDebug, msg, kv...) }
func (l *Logger) Info(msg string, kv ...any)  { l.Log(LevelInfo, msg, kv...) }
func (l *Logger) Warn(msg string, kv ...any)  { l.Log(LevelWarn, msg, kv...) }
func (l *Logger) Error(msg string, kv ...any) { l.Log(LevelError, msg, kv...) }

// Log writes msg followed by key=value pairs.
func (l *Logger) Log(level Level, msg string, kv ...any) {
	if l == nil || l.l == nil {
		return
	}
	l.l.Log(level, msg, kv...)
}

// Package logger provides a simple leveled logging interface and implementation.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Logger defines the logging interface used across the addon.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Fatalf(format string, v ...interface{})
}

// Level represents logging levels.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

type leveledLogger struct {
	mu    sync.RWMutex
	level Level
	out   *log.Logger
	err   *log.Logger
}

// New creates a logger whose level comes from the LOG_LEVEL environment
// variable, defaulting to info.
func New() Logger {
	return NewWithLevel(ParseLevel(os.Getenv("LOG_LEVEL")))
}

// NewWithLevel creates a logger at an explicit level.
func NewWithLevel(level Level) Logger {
	return &leveledLogger{
		level: level,
		out:   log.New(os.Stdout, "", log.LstdFlags),
		err:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// ParseLevel converts a string log level to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *leveledLogger) logf(level Level, prefix, format string, v ...interface{}) {
	l.mu.RLock()
	enabled := level >= l.level
	l.mu.RUnlock()
	if !enabled {
		return
	}

	target := l.out
	if level >= LevelError {
		target = l.err
	}
	target.Output(3, prefix+fmt.Sprintf(format, v...))
}

func (l *leveledLogger) Debugf(format string, v ...interface{}) {
	l.logf(LevelDebug, "[DEBUG] ", format, v...)
}

func (l *leveledLogger) Infof(format string, v ...interface{}) {
	l.logf(LevelInfo, "[INFO] ", format, v...)
}

func (l *leveledLogger) Warnf(format string, v ...interface{}) {
	l.logf(LevelWarn, "[WARN] ", format, v...)
}

func (l *leveledLogger) Errorf(format string, v ...interface{}) {
	l.logf(LevelError, "[ERROR] ", format, v...)
}

func (l *leveledLogger) Fatalf(format string, v ...interface{}) {
	l.logf(LevelError, "[FATAL] ", format, v...)
	os.Exit(1)
}

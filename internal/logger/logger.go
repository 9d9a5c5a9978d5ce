// Package logger provides the leveled process logger.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a logging threshold.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	debugLog = newLogger(os.Stderr, "DEBUG: ")
	infoLog  = newLogger(os.Stderr, "INFO: ")
	warnLog  = newLogger(os.Stderr, "WARN: ")
	errorLog = newLogger(os.Stderr, "ERROR: ")

	threshold atomic.Int32
)

func init() {
	threshold.Store(int32(LevelInfo))
}

func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, log.Ldate|log.Ltime|log.Lmsgprefix)
}

// Init points all loggers at w and sets the level threshold.
// It should be called once at startup, before any logging.
func Init(w io.Writer, level Level) {
	debugLog = newLogger(w, "DEBUG: ")
	infoLog = newLogger(w, "INFO: ")
	warnLog = newLogger(w, "WARN: ")
	errorLog = newLogger(w, "ERROR: ")

	SetLevel(level)
}

// SetLevel changes the threshold below which messages are dropped.
func SetLevel(level Level) {
	threshold.Store(int32(level))
}

// Enabled reports whether messages at level are written.
func Enabled(level Level) bool {
	return level >= Level(threshold.Load())
}

// ParseLevel parses "debug", "info", "warn" or "error" (case-insensitive).
// An empty string means info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func Debugf(format string, v ...any) {
	if Enabled(LevelDebug) {
		debugLog.Printf(format, v...)
	}
}

func Infof(format string, v ...any) {
	if Enabled(LevelInfo) {
		infoLog.Printf(format, v...)
	}
}

func Warnf(format string, v ...any) {
	if Enabled(LevelWarn) {
		warnLog.Printf(format, v...)
	}
}

func Errorf(format string, v ...any) {
	if Enabled(LevelError) {
		errorLog.Printf(format, v...)
	}
}

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Leveled logger for the content API service.
// Zero external deps; level is set once at startup via Init (LOG_LEVEL env)
// and output can be redirected in tests with SetOutput.

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	current atomic.Int32

	outMu sync.Mutex
	out   io.Writer = os.Stdout
)

func init() {
	current.Store(int32(LevelInfo))
}

// ParseLevel maps a textual level (case-insensitive) to a Level.
// Unknown input maps to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Init sets the global log level. Call early during startup.
func Init(level string) {
	current.Store(int32(ParseLevel(level)))
}

// SetOutput redirects log output; intended for tests.
func SetOutput(w io.Writer) {
	outMu.Lock()
	out = w
	outMu.Unlock()
}

// LevelString returns the current level as text.
func LevelString() string {
	switch Level(current.Load()) {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}

func emit(l Level, tag, format string, v ...interface{}) {
	if l < Level(current.Load()) {
		return
	}
	line := fmt.Sprintf("%s [%s] %s\n", time.Now().Format(time.RFC3339), tag, fmt.Sprintf(format, v...))
	outMu.Lock()
	_, _ = io.WriteString(out, line)
	outMu.Unlock()
}

func Debugf(format string, v ...interface{}) { emit(LevelDebug, "DEBUG", format, v...) }
func Infof(format string, v ...interface{})  { emit(LevelInfo, "INFO", format, v...) }
func Warnf(format string, v ...interface{})  { emit(LevelWarn, "WARN", format, v...) }
func Errorf(format string, v ...interface{}) { emit(LevelError, "ERROR", format, v...) }

func Fatalf(format string, v ...interface{}) {
	emit(LevelFatal, "FATAL", format, v...)
	os.Exit(1)
}

// Single-string helpers.
func Debug(msg string) { Debugf("%s", msg) }
func Info(msg string)  { Infof("%s", msg) }
func Warn(msg string)  { Warnf("%s", msg) }
func Error(msg string) { Errorf("%s", msg) }

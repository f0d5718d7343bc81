// Package log provides structured logging for the zeta shells.
// Logging is off by default (null logger); the CLI flags --debug, --log-file
// and --log-level install a writer-backed logger. The calculation core never
// logs.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a flag value ("debug", "info", "warn", "error") to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q (must be debug, info, warn or error)", s)
	}
}

// Field is a key-value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Logger is the interface for structured logging.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	WithFields(fields ...Field) Logger
}

// nullLogger discards everything.
type nullLogger struct{}

func (n *nullLogger) Debug(msg string, fields ...Field) {}
func (n *nullLogger) Info(msg string, fields ...Field)  {}
func (n *nullLogger) Warn(msg string, fields ...Field)  {}
func (n *nullLogger) Error(msg string, fields ...Field) {}
func (n *nullLogger) WithFields(fields ...Field) Logger { return n }

// writerLogger writes one line per entry:
//
//	2025-11-22 10:04:05.000 INFO calibration computed standard=DUR zeta=239.88
type writerLogger struct {
	mu     *sync.Mutex // shared with derived loggers writing to the same out
	out    io.Writer
	level  Level
	fields []Field
}

// NewWriterLogger creates a logger that writes entries at or above level to out.
func NewWriterLogger(out io.Writer, level Level) Logger {
	return &writerLogger{mu: &sync.Mutex{}, out: out, level: level}
}

func (w *writerLogger) log(level Level, msg string, fields []Field) {
	if level < w.level {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)
	for _, f := range w.fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	b.WriteByte('\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = io.WriteString(w.out, b.String())
}

func (w *writerLogger) Debug(msg string, fields ...Field) { w.log(LevelDebug, msg, fields) }
func (w *writerLogger) Info(msg string, fields ...Field)  { w.log(LevelInfo, msg, fields) }
func (w *writerLogger) Warn(msg string, fields ...Field)  { w.log(LevelWarn, msg, fields) }
func (w *writerLogger) Error(msg string, fields ...Field) { w.log(LevelError, msg, fields) }

func (w *writerLogger) WithFields(fields ...Field) Logger {
	merged := make([]Field, 0, len(w.fields)+len(fields))
	merged = append(merged, w.fields...)
	merged = append(merged, fields...)
	return &writerLogger{mu: w.mu, out: w.out, level: w.level, fields: merged}
}

// Package-level logger, null by default.
var (
	defaultLogger Logger = &nullLogger{}
	loggerMu      sync.RWMutex
	logFile       *os.File
)

// SetLogger sets the package-level logger.
// Call with nil to disable logging.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if l == nil {
		defaultLogger = &nullLogger{}
	} else {
		defaultLogger = l
	}
}

// GetLogger returns the current package-level logger.
func GetLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return defaultLogger
}

// EnableDebugLogging sends debug output to stderr.
func EnableDebugLogging() {
	SetLogger(NewWriterLogger(os.Stderr, LevelDebug))
}

// EnableFileLogging appends entries at or above level to the file at path.
// The file stays open until Close.
func EnableFileLogging(path string, level Level) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	loggerMu.Lock()
	prev := logFile
	logFile = f
	loggerMu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	SetLogger(NewWriterLogger(f, level))
	return nil
}

// Close disables logging and closes a log file opened by EnableFileLogging.
func Close() error {
	SetLogger(nil)
	loggerMu.Lock()
	f := logFile
	logFile = nil
	loggerMu.Unlock()
	if f != nil {
		return f.Close()
	}
	return nil
}

// Debug logs a debug message.
func Debug(msg string, fields ...Field) {
	GetLogger().Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...Field) {
	GetLogger().Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...Field) {
	GetLogger().Error(msg, fields...)
}

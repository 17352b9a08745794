package log

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Fields is a map of field names to values.
type Fields map[string]interface{}

// Entry represents a single log entry handed to formatters and outputs.
type Entry struct {
	Level     Level
	Message   string
	Fields    Fields
	Timestamp time.Time
}

// Logger defines the logging interface for entid components.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a logger carrying the given fields on every entry.
	With(fields ...Field) Logger

	// WithComponent tags entries with a component name.
	WithComponent(component string) Logger

	// SetLevel sets the minimum log level. The change is visible to every
	// logger derived from the same root.
	SetLevel(level Level)

	// GetLevel returns the current minimum log level.
	GetLevel() Level
}

// LoggerOption configures a logger.
type LoggerOption func(*baseLogger)

// baseLogger implements Logger on top of slog with our handler.
type baseLogger struct {
	level     *atomicLevel
	formatter Formatter
	outputs   []Output
	slog      *slog.Logger
}

// atomicLevel is a level shared across derived loggers.
type atomicLevel struct{ v atomic.Int32 }

func (a *atomicLevel) get() Level  { return Level(a.v.Load()) }
func (a *atomicLevel) set(l Level) { a.v.Store(int32(l)) }

// NewLogger creates a new logger. Without options it logs at InfoLevel in
// JSON to the console.
func NewLogger(options ...LoggerOption) Logger {
	logger := &baseLogger{
		level:     &atomicLevel{},
		formatter: &JSONFormatter{},
	}
	logger.level.set(InfoLevel)

	for _, option := range options {
		option(logger)
	}
	if len(logger.outputs) == 0 {
		logger.outputs = append(logger.outputs, NewConsoleOutput())
	}

	logger.slog = slog.New(newBridgeHandler(logger))
	return logger
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) LoggerOption {
	return func(l *baseLogger) { l.level.set(level) }
}

// WithFormatter sets the log formatter.
func WithFormatter(formatter Formatter) LoggerOption {
	return func(l *baseLogger) { l.formatter = formatter }
}

// WithOutput adds an output to the logger.
func WithOutput(output Output) LoggerOption {
	return func(l *baseLogger) { l.outputs = append(l.outputs, output) }
}

func (l *baseLogger) log(ctx context.Context, level Level, msg string, fields []Field) {
	l.slog.LogAttrs(ctx, toSlogLevel(level), msg, attrsFromFieldSlice(fields)...)
}

func (l *baseLogger) Debug(msg string, fields ...Field) {
	l.log(context.Background(), DebugLevel, msg, fields)
}

func (l *baseLogger) Info(msg string, fields ...Field) {
	l.log(context.Background(), InfoLevel, msg, fields)
}

func (l *baseLogger) Warn(msg string, fields ...Field) {
	l.log(context.Background(), WarnLevel, msg, fields)
}

func (l *baseLogger) Error(msg string, fields ...Field) {
	l.log(context.Background(), ErrorLevel, msg, fields)
}

func (l *baseLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	nl := *l
	nl.slog = l.slog.With(attrsToAny(attrsFromFieldSlice(fields))...)
	return &nl
}

func (l *baseLogger) WithComponent(component string) Logger {
	return l.With(Component(component))
}

func (l *baseLogger) SetLevel(level Level) { l.level.set(level) }

func (l *baseLogger) GetLevel() Level { return l.level.get() }

// NewNop returns a logger that discards everything.
func NewNop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field)         {}
func (nopLogger) Info(string, ...Field)          {}
func (nopLogger) Warn(string, ...Field)          {}
func (nopLogger) Error(string, ...Field)         {}
func (n nopLogger) With(...Field) Logger         { return n }
func (n nopLogger) WithComponent(string) Logger  { return n }
func (nopLogger) SetLevel(Level)                 {}
func (nopLogger) GetLevel() Level                { return ErrorLevel }

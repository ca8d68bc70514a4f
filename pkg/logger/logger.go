package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level represents the severity of a log message
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

var (
	colorTime   = color.New(color.FgHiBlack)
	colorFields = color.New(color.FgHiBlack)
	colorPrefix = color.New(color.FgCyan)
	colorDebug  = color.New(color.FgHiBlack)
	colorInfo   = color.New(color.FgGreen)
	colorWarn   = color.New(color.FgYellow)
	colorError  = color.New(color.FgRed)
	colorFatal  = color.New(color.FgRed, color.Bold)
)

// Logger is the main logger interface
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithPrefix(prefix string) Logger
}

// output is shared between a logger and everything derived from it
type output struct {
	mu       sync.Mutex
	level    Level
	writer   io.Writer
	noColor  bool
	showTime bool
}

// logger implements the Logger interface
type logger struct {
	out    *output
	fields map[string]interface{}
	prefix string
}

// Default logger instance
var defaultLogger = New()

// Config holds logger configuration
type Config struct {
	Level    Level
	Writer   io.Writer
	NoColor  bool
	ShowTime bool
}

// New creates a new logger with default configuration
func New() Logger {
	return NewWithConfig(Config{
		Level:    InfoLevel,
		Writer:   os.Stderr,
		NoColor:  false,
		ShowTime: true,
	})
}

// NewWithConfig creates a new logger with custom configuration
func NewWithConfig(cfg Config) Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	return &logger{
		out: &output{
			level:    cfg.Level,
			writer:   cfg.Writer,
			noColor:  cfg.NoColor,
			showTime: cfg.ShowTime,
		},
		fields: make(map[string]interface{}),
	}
}

// Default returns the package-level logger
func Default() Logger {
	return defaultLogger
}

// SetLevel sets the global log level
func SetLevel(level Level) {
	if l, ok := defaultLogger.(*logger); ok {
		l.out.mu.Lock()
		l.out.level = level
		l.out.mu.Unlock()
	}
}

// SetNoColor disables color output
func SetNoColor(noColor bool) {
	if l, ok := defaultLogger.(*logger); ok {
		l.out.mu.Lock()
		l.out.noColor = noColor
		l.out.mu.Unlock()
	}
}

// Helper methods for the default logger
func Debug(args ...interface{})                       { defaultLogger.Debug(args...) }
func Debugf(format string, args ...interface{})       { defaultLogger.Debugf(format, args...) }
func Info(args ...interface{})                        { defaultLogger.Info(args...) }
func Infof(format string, args ...interface{})        { defaultLogger.Infof(format, args...) }
func Warn(args ...interface{})                        { defaultLogger.Warn(args...) }
func Warnf(format string, args ...interface{})        { defaultLogger.Warnf(format, args...) }
func Error(args ...interface{})                       { defaultLogger.Error(args...) }
func Errorf(format string, args ...interface{})       { defaultLogger.Errorf(format, args...) }
func Fatal(args ...interface{})                       { defaultLogger.Fatal(args...) }
func Fatalf(format string, args ...interface{})       { defaultLogger.Fatalf(format, args...) }
func WithField(key string, value interface{}) Logger  { return defaultLogger.WithField(key, value) }
func WithFields(fields map[string]interface{}) Logger { return defaultLogger.WithFields(fields) }
func WithPrefix(prefix string) Logger                 { return defaultLogger.WithPrefix(prefix) }

// Implementation of logger methods

func (l *logger) log(level Level, args ...interface{}) {
	l.out.mu.Lock()

	if level < l.out.level {
		l.out.mu.Unlock()
		return
	}

	paint := func(c *color.Color, s string) string {
		if l.out.noColor {
			return s
		}
		return c.Sprint(s)
	}

	var parts []string

	if l.out.showTime {
		parts = append(parts, paint(colorTime, time.Now().Format("15:04:05")))
	}

	levelStr, levelColor := getLevelString(level)
	parts = append(parts, paint(levelColor, levelStr))

	if l.prefix != "" {
		parts = append(parts, paint(colorPrefix, "["+l.prefix+"]"))
	}

	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fieldParts := make([]string, 0, len(keys))
		for _, k := range keys {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, l.fields[k]))
		}
		parts = append(parts, paint(colorFields, strings.Join(fieldParts, " ")))
	}

	parts = append(parts, fmt.Sprint(args...))

	_, _ = fmt.Fprintln(l.out.writer, strings.Join(parts, " "))

	l.out.mu.Unlock()

	// Exit on fatal (after unlocking mutex)
	if level == FatalLevel {
		os.Exit(1)
	}
}

func (l *logger) logf(level Level, format string, args ...interface{}) {
	l.log(level, fmt.Sprintf(format, args...))
}

func getLevelString(level Level) (string, *color.Color) {
	switch level {
	case DebugLevel:
		return "DEBUG", colorDebug
	case InfoLevel:
		return "INFO ", colorInfo
	case WarnLevel:
		return "WARN ", colorWarn
	case ErrorLevel:
		return "ERROR", colorError
	case FatalLevel:
		return "FATAL", colorFatal
	default:
		return "UNKNOWN", colorDebug
	}
}

// Logger interface implementation

func (l *logger) Debug(args ...interface{}) {
	l.log(DebugLevel, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.logf(DebugLevel, format, args...)
}

func (l *logger) Info(args ...interface{}) {
	l.log(InfoLevel, args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.logf(InfoLevel, format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.log(WarnLevel, args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.logf(WarnLevel, format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.log(ErrorLevel, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.logf(ErrorLevel, format, args...)
}

func (l *logger) Fatal(args ...interface{}) {
	l.log(FatalLevel, args...)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	l.logf(FatalLevel, format, args...)
}

func (l *logger) derive(prefix string) *logger {
	newLogger := &logger{
		out:    l.out,
		fields: make(map[string]interface{}, len(l.fields)),
		prefix: prefix,
	}
	for k, v := range l.fields {
		newLogger.fields[k] = v
	}
	return newLogger
}

func (l *logger) WithField(key string, value interface{}) Logger {
	newLogger := l.derive(l.prefix)
	newLogger.fields[key] = value
	return newLogger
}

func (l *logger) WithFields(fields map[string]interface{}) Logger {
	newLogger := l.derive(l.prefix)
	for k, v := range fields {
		newLogger.fields[k] = v
	}
	return newLogger
}

func (l *logger) WithPrefix(prefix string) Logger {
	return l.derive(prefix)
}

// ParseLevel parses a string log level
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}

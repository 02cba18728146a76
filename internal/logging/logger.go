// Package logging wraps log/slog for dbgcmd. The console UI owns the
// terminal, so logs only ever go to a rotated file; without a file path
// every call is discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger
type Logger struct {
	logger *slog.Logger
	closer io.Closer
}

// LogFormat is the log line encoding
type LogFormat string

const (
	// FormatText writes key=value lines
	FormatText LogFormat = "text"
	// FormatJSON writes one JSON object per line
	FormatJSON LogFormat = "json"
)

// Config holds logger settings
type Config struct {
	// FilePath is the log file; empty disables logging
	FilePath string
	Level    slog.Level
	Format   LogFormat
	// MaxSizeMB is the file size that triggers rotation
	MaxSizeMB int
	// MaxBackups is how many rotated files to keep
	MaxBackups int
}

var (
	current *Logger
	discard = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init replaces the global logger. An empty FilePath installs the discard
// logger.
func Init(config Config) error {
	if current != nil && current.closer != nil {
		current.closer.Close()
	}

	if config.FilePath == "" {
		current = discard
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		Compress:   true,
	}

	current = &Logger{
		logger: slog.New(newHandler(writer, config)),
		closer: writer,
	}
	return nil
}

// New builds a logger writing to w, for callers that manage their own output.
func New(w io.Writer, config Config) *Logger {
	return &Logger{logger: slog.New(newHandler(w, config))}
}

func newHandler(w io.Writer, config Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: config.Level}
	if config.Format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Get returns the global logger, or the discard logger before Init.
func Get() *Logger {
	if current == nil {
		return discard
	}
	return current
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a logger that adds args to every record
func (l *Logger) With(args ...any) *Logger {
	if l == discard {
		return discard
	}
	return &Logger{logger: l.logger.With(args...)}
}

// IsEnabled is false for the discard logger
func (l *Logger) IsEnabled() bool {
	return l != discard
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// IsEnabled reports whether the global logger writes anywhere
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel maps debug, info, warn and error to slog levels; anything else
// is info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether ParseLevel knows level by name
func ValidLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ParseFormat returns FormatJSON for "json" and FormatText otherwise
func ParseFormat(format string) LogFormat {
	if format == "json" {
		return FormatJSON
	}
	return FormatText
}

// Shutdown closes the log file, if any, and reverts to the discard logger
func Shutdown() error {
	l := current
	current = discard
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Type alias for slog.Level for easier usage
type Level = slog.Level

const (
	LevelTrace   = slog.Level(-8)
	LevelDebug   = slog.LevelDebug // -4
	LevelInfo    = slog.LevelInfo  // 0
	LevelWarning = slog.LevelWarn  // 4
	LevelError   = slog.LevelError // 8
	LevelFatal   = slog.Level(12)  // 12
)

// Format selects the handler used by New
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Options configures New
type Options struct {
	// Output defaults to os.Stderr
	Output io.Writer
	// Format defaults to FormatJSON
	Format Format
	// Level is the minimum level logged. A *slog.LevelVar allows changing
	// it at runtime. Defaults to LevelInfo.
	Level slog.Leveler
}

// New builds a logger. Nothing is read from the environment; callers decide
// where the level and format come from.
func New(opts Options) (*slog.Logger, error) {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Level == nil {
		opts.Level = LevelInfo
	}

	hopts := &slog.HandlerOptions{
		Level:       opts.Level,
		ReplaceAttr: replaceLevelName,
	}

	var handler slog.Handler
	switch opts.Format {
	case "", FormatJSON:
		handler = slog.NewJSONHandler(opts.Output, hopts)
	case FormatText:
		handler = slog.NewTextHandler(opts.Output, hopts)
	default:
		return nil, fmt.Errorf("unknown log format: %s", opts.Format)
	}

	return slog.New(handler), nil
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel converts a string level name to slog.Level
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(levelStr) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "FATAL":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s (defaulting to INFO)", levelStr)
	}
}

// replaceLevelName prints the custom levels by name instead of DEBUG-4 and
// ERROR+4.
func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch level {
	case LevelTrace:
		a.Value = slog.StringValue("TRACE")
	case LevelFatal:
		a.Value = slog.StringValue("FATAL")
	}
	return a
}

package logging

import (
	"io"
	"log/slog"
	"strings"

	"go.uber.org/fx/fxevent"
)

// Output formats accepted by LoggerConfig.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string
	Format string
}

// NewLogger creates a new slog.Logger writing to w.
// The level is parsed from the config; defaults to INFO if invalid or empty.
// The format is JSON unless Format is "text".
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       ParseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

// NewFxLogger adapts logger for fx.WithLogger. Fx lifecycle events are noisy, so they are
// only written when logger is enabled for debug.
//
//nolint:ireturn // fxevent.Logger is the type fx.WithLogger expects.
func NewFxLogger(logger *slog.Logger) fxevent.Logger {
	eventLogger := &fxevent.SlogLogger{Logger: logger}
	eventLogger.UseLogLevel(slog.LevelDebug)

	return eventLogger
}

// ParseLevel converts a level name to a slog.Level. Unknown names yield INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

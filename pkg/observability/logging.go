// Package observability configures structured logging for the message
// tooling and adds helpers for reporting validation outcomes.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json", "text"
}

// InitLogger initializes a structured slog.Logger writing to stdout and
// installs it as the default.
func InitLogger(cfg LogConfig) *slog.Logger {
	logger := NewLogger(os.Stdout, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewLogger builds a logger writing to w without touching the default.
func NewLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogViolations emits one warn record per constraint violation in err,
// carrying the field path and violation code. Non-violation errors get a
// single error record.
func LogViolations(logger *slog.Logger, file string, err error) {
	vs, ok := schema.AsViolations(err)
	if !ok {
		logger.Error("message invalid", "file", file, "error", err)
		return
	}
	for _, v := range vs {
		logger.Warn("constraint violation",
			"file", file,
			"path", v.Path,
			"code", int(v.Code),
			"message", v.Message,
		)
	}
}

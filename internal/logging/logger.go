// Package logging configures log/slog for the service.
//
// Request-scoped loggers pick up chi's request ID and, while a dataset load
// is running, the load ID, so every line of one request or one load can be
// correlated.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

// SetupWriter configures the global slog logger to write to w. Commands
// other than serve log to stderr so their output on stdout stays clean.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func SetupWriter(w io.Writer, level, format string) {
	slog.SetDefault(slog.New(NewHandler(w, level, format)))
}

// NewHandler builds the slog handler SetupWriter installs.
func NewHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel converts a string log level to slog.Level. Unknown values map
// to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// FromContext returns the default logger enriched with the request ID and
// load ID found in ctx.
//
//	logger := logging.FromContext(r.Context())
//	logger.Info("reload requested")
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	if loadID := LoadIDFromContext(ctx); loadID != "" {
		logger = logger.With("load_id", loadID)
	}

	return logger
}

// WithFields returns FromContext(ctx) with extra fields.
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}

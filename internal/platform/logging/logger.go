// Package logging provides structured logging configuration using log/slog.
//
// Each operation on the reviews file (view, add, delete, edit) gets its own
// operation id, carried in the context, so every log line produced while
// loading, changing and saving the file can be tied back to one user action.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type ctxKey struct{}

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
//
// Logs go to w rather than stdout since stdout is where the menu is drawn.
func Setup(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
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

// WithOperation starts a named operation, returning a context carrying its
// logger and the logger itself.
//
//	ctx, log := logging.WithOperation(ctx, "delete", "review_id", id)
//	log.Info("review deleted")
func WithOperation(ctx context.Context, op string, args ...any) (context.Context, *slog.Logger) {
	logger := FromContext(ctx).With(append([]any{"op", op, "op_id", uuid.NewString()}, args...)...)

	return context.WithValue(ctx, ctxKey{}, logger), logger
}

// FromContext returns the operation logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}

// Package logging provides structured logging for the service on top of the
// standard library slog package.
//
// It has two entry points. Wired code (cmd/server) builds a logger
// explicitly from configuration:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// Everything else may grab a category-scoped handle from the process-wide
// facade, which configures its backend lazily from the environment on first
// use (see facade.go):
//
//	logger := logging.Logger("usecase")
//
// Request metadata travels two ways. A fully-formed child logger can be
// stored on the context for downstream handlers:
//
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// and ambient key/value fields can be attached to the context so that every
// record logged with that context carries them (see context.go):
//
//	ctx = logging.WithContext(ctx, logging.Fields{"request_id": id})
//
// Error logging convention for application services:
//
//	logger.LogAttrs(ctx, slog.LevelError, "failed to update todo",
//	    append(attrs, logging.ErrorAttrs(err)...)...)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// New creates a configured *slog.Logger.
//
// The level parameter sets the minimum log level; valid values are "debug",
// "info", "warn", and "error", and unrecognized values default to info. The
// format parameter selects the handler: "text" uses slog.NewTextHandler, all
// other values (including "json") use slog.NewJSONHandler.
//
// The returned logger merges ambient context fields (WithContext/SetContext)
// into every record and redacts credential-shaped attributes. When level is
// "debug", source code location is included.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl, _ := parseLevel(level)
	return slog.New(&contextHandler{next: newHandler(lvl, format, w)})
}

// newHandler builds the bare slog handler without ambient-context merging.
func newHandler(lvl slog.Level, format string, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel converts a level string to slog.Level. The second return value
// reports whether the input was recognized; unrecognized values map to
// slog.LevelInfo.
func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

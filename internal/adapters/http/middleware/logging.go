package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ymatsuda/todo-backend/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events.
// It seeds the ambient log fields with the request ID and correlation ID
// from context, so records emitted anywhere in the call chain carry the same
// identifiers, and stores the logger via logging.WithLogger for downstream
// use. Completion is logged with method, path, status code, and duration.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqID := RequestIDFromContext(ctx)
			corrID := CorrelationIDFromContext(ctx)

			ctx = logging.WithContext(ctx, logging.Fields{
				"request_id":     reqID,
				"correlation_id": corrID,
			})
			ctx = logging.WithLogger(ctx, logger)

			logger.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if logger.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				logger.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			logger.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/rolfvandort/Rolfiessuperzoekert/pkg/log"
)

// Logging puts a request-scoped logger into the context and writes one
// "http" record per request, tagged with the matched route. It reads the id
// set by RequestID, so it must run inside it.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := l
			if rid := RequestIDFrom(r.Context()); rid != "" {
				reqLogger = reqLogger.With(slog.String("request_id", rid))
			}
			ctx := logctx.Into(r.Context(), reqLogger)
			r = r.WithContext(ctx)

			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)
			dur := time.Since(start)

			level := slog.LevelInfo
			if sw.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			logctx.From(r.Context()).LogAttrs(r.Context(), level, "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", sw.Status()),
				slog.Duration("dur", dur),
				slog.Int("bytes", sw.count),
			)
		})
	}
}

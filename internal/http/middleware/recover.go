package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	apierrors "github.com/rolfvandort/Rolfiessuperzoekert/internal/errors"
	logctx "github.com/rolfvandort/Rolfiessuperzoekert/pkg/log"
)

// Recover turns a panic into 500/internal; panic details stay in the log.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logctx.From(r.Context()).
						LogAttrs(r.Context(), slog.LevelError, "panic",
							slog.String("path", r.URL.Path),
							slog.String("route", routePattern(r)),
							slog.Any("reason", rec),
						)
					apierrors.WriteError(w, r, fmt.Errorf("panic: %v", rec))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

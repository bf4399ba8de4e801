package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// HeaderRequestID - request correlation header.
const HeaderRequestID = "X-Request-Id"

type ctxKeyRequestID struct{}

// RequestID ensures every request carries X-Request-Id:
//  1. reads the incoming header when present;
//  2. otherwise generates a random 32-char hex id;
//  3. sets the id on the response header, the request header and the context.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderRequestID)
			if id == "" {
				id = genID()
				// errors.WriteError reads it from the request header.
				r.Header.Set(HeaderRequestID, id)
			}
			w.Header().Set(HeaderRequestID, id)

			ctx := context.WithValue(r.Context(), ctxKeyRequestID{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFrom returns the id set by RequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}

func genID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

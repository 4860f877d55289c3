// FilePath: api/middleware/api.middleware.requestid.go
package middleware

import (
	"context"
	"net/http"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID tags every request with a short ID and logs its timing.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := nuts.NID("req", 12)
		w.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		nuts.L.Debugf("[API] %s %s request_id=%s duration=%s", r.Method, r.URL.Path, id, time.Since(start))
	})
}

// GetRequestID returns the request ID stored by RequestID, if any.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

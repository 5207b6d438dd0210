package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/tradedesk-backend/internal/observability/metrics"
)

// Instrument records request count and latency for one named route.
func Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		metrics.ObserveHTTPRequest(route, r.Method, sw.status, time.Since(start))
	})
}

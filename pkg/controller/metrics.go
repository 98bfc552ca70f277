package controller

import (
	"net/http"
	"strconv"
	"time"

	"landlordheaven/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Name:    "http_request_duration_seconds",
	Help:    "Duration of HTTP requests handled by the API server.",
	Buckets: metrics.DefaultBuckets,
}, []string{"method", "status"})

// WithMetrics returns a middleware that records request durations in a
// Prometheus histogram, labeled by method and response status. Labels are
// deliberately coarse to keep cardinality bounded.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		requestDuration.
			WithLabelValues(r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	PublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_publish_total",
			Help: "Publish attempts by entity and result.",
		},
		[]string{"entity", "result"},
	)

	UploadFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_upload_failures_total",
			Help: "Asset host upload failures. Each one may leave orphaned sibling uploads behind.",
		},
	)

	StoreWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_store_write_failures_total",
			Help: "Document store write failures surfaced to admins.",
		},
	)
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request latency labeled by chi route pattern.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			requestDuration.
				WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
				Observe(time.Since(start).Seconds())
		})
	}
}

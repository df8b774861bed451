package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute labels requests chi could not route, e.g. 404s.
const unmatchedRoute = "unmatched"

type Metrics struct {
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	precisionResolved *prometheus.CounterVec
	resolveErrors     *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geogrid",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "geogrid",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "path"}),
		precisionResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geogrid",
			Subsystem: "geohash",
			Name:      "precision_resolved_total",
			Help:      "Resolved geohash precisions by level and axis mode",
		}, []string{"precision", "axis_mode"}),
		resolveErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geogrid",
			Subsystem: "geohash",
			Name:      "resolve_errors_total",
			Help:      "Rejected precision resolutions by reason",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.precisionResolved, m.resolveErrors)
	return m
}

func (m *Metrics) ObservePrecision(precision int, axisMode string) {
	m.precisionResolved.WithLabelValues(strconv.Itoa(precision), axisMode).Inc()
}

func (m *Metrics) ObserveResolveError(reason string) {
	m.resolveErrors.WithLabelValues(reason).Inc()
}

// PromeHttpMiddleware labels requests by chi route pattern to keep path cardinality bounded.
func PromeHttpMiddleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			path := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				path = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.httpRequests.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
			m.httpDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

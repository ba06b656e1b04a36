package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics records request-level metadata for the API server.
type HTTPMetrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

// NewHTTPMetrics registers the request metrics on a fresh registry.
func NewHTTPMetrics() *HTTPMetrics {
	registry := prometheus.NewRegistry()
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests served.",
	}, []string{"method", "status"})
	registry.MustRegister(duration, requests)
	return &HTTPMetrics{
		registry: registry,
		duration: duration,
		requests: requests,
	}
}

// Registry exposes the underlying registry so other collectors can attach.
func (m *HTTPMetrics) Registry() prometheus.Registerer {
	if m == nil {
		return nil
	}
	return m.registry
}

// Observe records one completed request.
func (m *HTTPMetrics) Observe(method string, status int, elapsed time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	label := strconv.Itoa(status)
	m.duration.WithLabelValues(method, label).Observe(elapsed.Seconds())
	m.requests.WithLabelValues(method, label).Inc()
}

// Handler serves the scrape endpoint.
func (m *HTTPMetrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

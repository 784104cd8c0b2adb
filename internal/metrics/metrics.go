// Package metrics records API client traffic in Prometheus collectors and
// optionally serves them over HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors and the registry they are registered in.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates collectors in a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carfleet_api_requests_total",
			Help: "Total number of API requests by endpoint and status code.",
		}, []string{"endpoint", "status"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "carfleet_api_errors_total",
			Help: "Total number of failed API requests by endpoint.",
		}, []string{"endpoint"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "carfleet_api_request_duration_seconds",
			Help:    "API request latency by endpoint.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	m.registry.MustRegister(m.requests, m.errors, m.duration)
	return m
}

// ObserveRequest records one request. status is 0 for transport failures.
func (m *Metrics) ObserveRequest(endpoint string, status int, failed bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	if failed {
		m.errors.WithLabelValues(endpoint).Inc()
	}
}

// Registry exposes the registry for scraping and tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

package roundbuy

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts and times the calls made to the admin API. It has its own registry.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "roundbuy_admin",
			Name:      "api_requests_total",
			Help:      "Total number of requests sent to the admin API",
		}, []string{"endpoint", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "roundbuy_admin",
			Name:      "api_request_duration_seconds",
			Help:      "Duration of admin API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
	}

	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observe(endpoint, method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, method, code).Inc()
	m.duration.WithLabelValues(endpoint, method).Observe(d.Seconds())
}

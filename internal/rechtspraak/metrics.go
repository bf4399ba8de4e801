package rechtspraak

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Endpoint labels.
const (
	endpointSearch  = "search"
	endpointContent = "content"
	endpointList    = "waardelijst"
)

// Metrics - upstream call counters and latency.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them in reg (if not nil).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rechtspraak",
			Name:      "upstream_requests_total",
			Help:      "Outbound calls to the Rechtspraak.nl API by endpoint and status.",
		}, []string{"endpoint", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rechtspraak",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of outbound calls to the Rechtspraak.nl API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}

	return m
}

func (m *Metrics) observe(endpoint, status string, d time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(endpoint, status).Inc()
	m.duration.WithLabelValues(endpoint).Observe(d.Seconds())
}

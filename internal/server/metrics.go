package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics счётчики прокси сервиса номеров.
type Metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "num_market",
			Subsystem: "proxy",
			Name:      "requests_total",
			Help:      "Requests forwarded to the inventory service by upstream status code.",
		}, []string{"code"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "num_market",
			Subsystem: "proxy",
			Name:      "request_duration_seconds",
			Help:      "Inventory round trip duration.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	registerer.MustRegister(m.requests, m.duration)

	return m
}

func (m *Metrics) observe(code string, d time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(code).Inc()
	m.duration.Observe(d.Seconds())
}

package service

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	quotes   *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics(registry *prometheus.Registry) *metrics {
	m := &metrics{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lodgewise",
			Subsystem: "quote",
			Name:      "requests_total",
			Help:      "Quote computations by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lodgewise",
			Subsystem: "quote",
			Name:      "duration_seconds",
			Help:      "Wall time of a full quote computation including catalog reads.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if registry != nil {
		registry.MustRegister(m.quotes, m.duration)
	}
	return m
}

func (m *metrics) observe(outcome string, seconds float64) {
	m.quotes.WithLabelValues(outcome).Inc()
	m.duration.Observe(seconds)
}

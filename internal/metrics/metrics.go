package metrics

import "github.com/prometheus/client_golang/prometheus"

// KioskMetrics exposes counters and histograms for kiosk sessions.
type KioskMetrics struct {
	transitions         *prometheus.CounterVec
	events              *prometheus.CounterVec
	verifications       *prometheus.CounterVec
	verificationLatency prometheus.Histogram
	activeSessions      prometheus.Gauge
}

func NewKioskMetrics(reg prometheus.Registerer) *KioskMetrics {
	m := &KioskMetrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kiosk",
			Subsystem: "navigation",
			Name:      "transitions_total",
			Help:      "Screen transitions performed by kiosk sessions",
		}, []string{"from", "to"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kiosk",
			Subsystem: "navigation",
			Name:      "events_total",
			Help:      "UI events dispatched, by action and result",
		}, []string{"action", "result"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kiosk",
			Subsystem: "verification",
			Name:      "total",
			Help:      "Identity verifications by outcome",
		}, []string{"outcome"}),
		verificationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kiosk",
			Subsystem: "verification",
			Name:      "latency_seconds",
			Help:      "Time until a verification settled",
			Buckets:   []float64{0.1, 0.5, 1, 1.5, 2, 3, 5},
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "kiosk",
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Kiosk sessions currently held in memory",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.transitions, m.events, m.verifications, m.verificationLatency, m.activeSessions)
	return m
}

func (m *KioskMetrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *KioskMetrics) ObserveEvent(action, result string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(action, result).Inc()
}

func (m *KioskMetrics) ObserveVerification(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(outcome).Inc()
	m.verificationLatency.Observe(seconds)
}

func (m *KioskMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

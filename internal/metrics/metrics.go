package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds *prometheus.HistogramVec

	// Classifier metrics
	IntentMatchesTotal *prometheus.CounterVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec

	// Usage log metrics
	UsageLogWritesTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusmate_chat_requests_total",
				Help: "Total number of chat requests by intent and status",
			},
			[]string{"intent", "status"}, // status: success, error
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campusmate_chat_duration_seconds",
				Help:    "Chat request duration in seconds by intent",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}, // classification is CPU-only
			},
			[]string{"intent"},
		),

		IntentMatchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusmate_intent_matches_total",
				Help: "Total number of classifier rule matches by intent",
			},
			[]string{"intent"},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusmate_http_errors_total",
				Help: "Total HTTP errors by type",
			},
			[]string{"error_type"}, // error_type: invalid_body, rate_limit, internal
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusmate_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"}, // limiter_type: chat
		),

		UsageLogWritesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "campusmate_usage_log_writes_total",
				Help: "Total number of usage log writes by status",
			},
			[]string{"status"}, // status: success, error
		),
	}

	return m
}

// RecordChat records a completed chat request
func (m *Metrics) RecordChat(intent, status string, duration float64) {
	m.ChatRequestsTotal.WithLabelValues(intent, status).Inc()
	m.ChatDurationSeconds.WithLabelValues(intent).Observe(duration)
}

// RecordIntentMatch records a classifier rule match
func (m *Metrics) RecordIntentMatch(intent string) {
	m.IntentMatchesTotal.WithLabelValues(intent).Inc()
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType).Inc()
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// RecordUsageLogWrite records a usage log write attempt
func (m *Metrics) RecordUsageLogWrite(status string) {
	m.UsageLogWritesTotal.WithLabelValues(status).Inc()
}

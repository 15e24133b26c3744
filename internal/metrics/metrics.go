package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentMetrics aggregates the counters the payment flow emits. A nil
// *PaymentMetrics is valid and counts nothing, so tests and wiring can skip
// the registry.

type PaymentMetrics struct {
	paymentsCreated   *prometheus.CounterVec
	webhookEvents     *prometheus.CounterVec
	transitions       *prometheus.CounterVec
	anomalies         prometheus.Counter
	unknownStatuses   prometheus.Counter
	notificationsSent *prometheus.CounterVec
}

func NewPaymentMetrics(registry *prometheus.Registry) *PaymentMetrics {
	return &PaymentMetrics{
		paymentsCreated: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_created_total",
				Help: "Payments created against the processor, by method and initial status",
			},
			[]string{"method", "status"},
		),
		webhookEvents: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_events_total",
				Help: "Processor webhook notifications received, by action/type",
			},
			[]string{"action"},
		),
		transitions: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_transitions_total",
				Help: "Applied status transitions, by resulting status",
			},
			[]string{"to"},
		),
		anomalies: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "reconciliation_anomalies_total",
				Help: "Conflicting terminal-to-terminal observations kept as-is",
			},
		),
		unknownStatuses: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "reconciliation_unknown_statuses_total",
				Help: "Observations carrying a status outside the known vocabulary",
			},
		),
		notificationsSent: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_dispatched_total",
				Help: "Approved-payment notifications, by channel and outcome",
			},
			[]string{"channel", "outcome"},
		),
	}
}

func (m *PaymentMetrics) IncPaymentCreated(method, status string) {
	if m == nil {
		return
	}
	m.paymentsCreated.WithLabelValues(method, status).Inc()
}

func (m *PaymentMetrics) IncWebhookEvent(action string) {
	if m == nil {
		return
	}
	m.webhookEvents.WithLabelValues(action).Inc()
}

func (m *PaymentMetrics) IncTransition(to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(to).Inc()
}

func (m *PaymentMetrics) IncAnomaly() {
	if m == nil {
		return
	}
	m.anomalies.Inc()
}

func (m *PaymentMetrics) IncUnknownStatus() {
	if m == nil {
		return
	}
	m.unknownStatuses.Inc()
}

func (m *PaymentMetrics) IncNotification(channel, outcome string) {
	if m == nil {
		return
	}
	m.notificationsSent.WithLabelValues(channel, outcome).Inc()
}

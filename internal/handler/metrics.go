package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_amendment",
			Subsystem: "kafka_consumer",
			Name:      "events_processed_total",
			Help:      "Total number of successfully processed order placed events",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_amendment",
			Subsystem: "kafka_consumer",
			Name:      "events_failed_total",
			Help:      "Total number of failed order placed event handling attempts",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_amendment",
			Subsystem: "kafka_consumer",
			Name:      "events_dlq_total",
			Help:      "Total number of events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_amendment",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)
)

var (
	listOrdersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_amendment",
			Subsystem: "http",
			Name:      "list_orders_total",
			Help:      "Total number of order list requests",
		},
		[]string{"status"},
	)

	editsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_amendment",
			Subsystem: "http",
			Name:      "edits_started_total",
			Help:      "Total number of edit sessions opened",
		},
	)

	editsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_amendment",
			Subsystem: "http",
			Name:      "edits_rejected_total",
			Help:      "Total number of rejected edit attempts",
		},
		[]string{"reason"},
	)

	creditsApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_amendment",
			Subsystem: "http",
			Name:      "credits_applied_total",
			Help:      "Total number of cart recalculations that carried a credit",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,

		listOrdersTotal,
		editsStarted,
		editsRejected,
		creditsApplied,
	)
}

// Package metrics provides Prometheus metrics for the service.
// It tracks transaction ingestion, screening, and alert lifecycle latencies.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "watchdog"
)

// Ingestion metrics track the transaction pipeline.
var (
	// TransactionsReceivedTotal counts transactions received by the API.
	TransactionsReceivedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_received_total",
			Help:      "Total number of transactions received by the ingest API",
		},
		[]string{"type"},
	)

	// TransactionsPublishedTotal counts transaction events successfully
	// published to the queue.
	TransactionsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_published_total",
			Help:      "Total number of transaction events published to the message queue",
		},
	)

	// TransactionIngestLatency measures time from API receipt to queue publish.
	TransactionIngestLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transaction_ingest_latency_seconds",
			Help:      "Time from transaction receipt to queue publish in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
)

// Screening metrics track rule evaluation.
var (
	// TransactionsScreenedTotal counts transactions run through the rules.
	TransactionsScreenedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_screened_total",
			Help:      "Total number of transactions screened",
		},
		[]string{"result"}, // result: clean, flagged, error
	)

	// ScreeningLatency measures time to evaluate all rules for one transaction.
	ScreeningLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "screening_latency_seconds",
			Help:      "Time to evaluate the screening rules for one transaction in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)
)

// Alert metrics track the alert lifecycle.
var (
	// AlertsCreatedTotal counts alerts raised by screening, labeled by rule
	// and severity.
	AlertsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_created_total",
			Help:      "Total number of alerts created",
		},
		[]string{"rule", "severity"},
	)

	// AlertsResolvedTotal counts alerts moved to the resolved status.
	AlertsResolvedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_resolved_total",
			Help:      "Total number of alerts resolved",
		},
	)

	// AlertCreationLatency measures end-to-end time from transaction receipt
	// to alert creation.
	AlertCreationLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "alert_creation_latency_seconds",
			Help:      "End-to-end latency from transaction receipt to alert creation in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)
)

// Notification metrics track the notification stub.
var (
	// NotificationsSentTotal counts notifications dispatched.
	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Total number of notifications sent",
		},
		[]string{"kind", "status"}, // kind: created, resolved; status: success, failure
	)
)

// Queue metrics track message queue health.
var (
	// QueueDepth tracks the current number of messages in the queue.
	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Current number of messages in the queue",
		},
	)

	// QueuePublishLatency measures time to publish a message to the queue.
	QueuePublishLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "queue_publish_latency_seconds",
			Help:      "Time to publish a message to the queue in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1},
		},
	)
)

// Storage metrics track database and cache operations.
var (
	// StorageOperationLatency measures latency of storage operations.
	StorageOperationLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "storage_operation_latency_seconds",
			Help:      "Latency of storage operations in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5},
		},
		[]string{"store", "operation"}, // store: postgres, redis; operation: read, write
	)

	// StorageOperationsTotal counts storage operations.
	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_operations_total",
			Help:      "Total number of storage operations",
		},
		[]string{"store", "operation", "status"}, // status: success, failure
	)
)

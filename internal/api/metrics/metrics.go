// Package metrics defines and registers all custom Prometheus metrics for the
// ColisGo delivery platform. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry via promauto at
// package initialisation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "colisgo"

// DeliveriesCreatedTotal counts newly created delivery requests.
// Label:
//   - speed: "standard" or "express"
var DeliveriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deliveries_created_total",
		Help:      "Total number of delivery requests created, by delivery speed.",
	},
	[]string{"speed"},
)

// StatusUpdatesTotal counts status transitions that were applied successfully.
// Label:
//   - status: the new delivery status (e.g. "picked_up")
var StatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_updates_total",
		Help:      "Total number of delivery status updates successfully applied.",
	},
	[]string{"status"},
)

// StatusErrorsTotal counts rejected status updates.
// Label:
//   - reason: "delivery_not_found", "invalid_transition" or "update_failed"
var StatusErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_errors_total",
		Help:      "Total number of delivery status updates that were rejected.",
	},
	[]string{"reason"},
)

// NotificationsQueueDepth tracks the number of notifications waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", ...)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EstimatedPriceEuros observes the estimated price of created deliveries.
var EstimatedPriceEuros = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "estimated_price_euros",
		Help:      "Distribution of estimated prices for created deliveries.",
		Buckets:   prometheus.LinearBuckets(5, 5, 10), // 5 to 50 euros
	},
)

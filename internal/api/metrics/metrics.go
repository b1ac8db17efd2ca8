// Package metrics defines and registers all custom Prometheus metrics for the
// realtor API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "realtor"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Labels:
//   - role: requested role ("BUYER", "REALTOR", "ADMIN", or "invalid")
//   - result: "ok", "exists", "bad_key", "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_signups_total",
		Help:      "Total number of signup attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// SigninsTotal counts signin attempts.
// Label:
//   - result: "ok", "invalid_credentials", "error"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_signins_total",
		Help:      "Total number of signin attempts, by result.",
	},
	[]string{"result"},
)

// GuardDecisionsTotal counts role guard outcomes.
// Labels:
//   - decision: "granted" or "denied"
//   - reason: deny reason, empty when granted
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of role guard decisions, by decision and deny reason.",
	},
	[]string{"decision", "reason"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// HomesCreatedTotal counts newly listed homes.
// Label:
//   - property_type: "RESIDENTIAL" or "CONDO"
var HomesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "homes_created_total",
		Help:      "Total number of homes listed, by property type.",
	},
	[]string{"property_type"},
)

// InquiriesTotal counts buyer inquiries.
// Label:
//   - result: "sent", "duplicate", "error"
var InquiriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_total",
		Help:      "Total number of inquiries, by result.",
	},
	[]string{"result"},
)

// ── Image cleanup metrics ─────────────────────────────────────────────────────

// ImageCleanupQueueDepth tracks the number of jobs waiting in each worker channel.
var ImageCleanupQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "image_cleanup_queue_depth",
		Help:      "Current number of image cleanup jobs pending in each worker channel.",
	},
	[]string{"worker_id"},
)

// ImageCleanupDuration measures one call to the image host.
// Label:
//   - result: "ok" or "error"
var ImageCleanupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "image_cleanup_duration_seconds",
		Help:      "Duration of image host delete calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// ImageCleanupDroppedTotal counts jobs rejected because the worker channel was full.
var ImageCleanupDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_cleanup_dropped_total",
		Help:      "Total number of image cleanup jobs dropped on a full queue.",
	},
)

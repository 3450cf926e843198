// Package metrics defines and registers all custom Prometheus metrics for the
// blog API. It is the single source of truth for metric names, labels, and
// help strings. Registration happens implicitly via promauto at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok", "conflict" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token verifications in the auth filter.
// Label:
//   - result: "ok", "expired", "invalid_signature" or "malformed"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// ── View pipeline metrics ─────────────────────────────────────────────────────

// ViewsProcessedTotal counts post views that completed processing.
var ViewsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_processed_total",
		Help:      "Total number of post view events successfully processed.",
	},
)

// ViewErrorsTotal counts post views that failed processing.
var ViewErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "view_errors_total",
		Help:      "Total number of post view events that failed processing.",
	},
)

// ViewQueueDepth tracks the number of view events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ViewQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "view_queue_depth",
		Help:      "Current number of view events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the POS admin gateway. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "posadmin"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts password-grant attempts.
// Label:
//   - result: "success", "invalid_credentials", "role_unrecognized",
//     "malformed_token", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// SessionInvalidationsTotal counts session evictions.
// Label:
//   - reason: "logout", "unauthorized", or "malformed_token"
var SessionInvalidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_invalidations_total",
		Help:      "Total number of session evictions, labelled by reason.",
	},
	[]string{"reason"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts requests issued to the external services.
// Labels:
//   - service: "auth", "employees", "products", or "discounts"
//   - status: the HTTP status code, or "error" on transport failure
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests to upstream services, by service and status.",
	},
	[]string{"service", "status"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// RecordMutationsTotal counts create/update/delete operations that passed
// validation and were submitted upstream.
// Labels:
//   - entity: "employee" or "discount"
//   - op: "create", "update", or "delete"
//   - result: "success" or "error"
var RecordMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_mutations_total",
		Help:      "Total number of record mutations submitted upstream, by entity, operation, and outcome.",
	},
	[]string{"entity", "op", "result"},
)

// ValidationRejectionsTotal counts form submissions blocked before any
// network call.
// Label:
//   - entity: "employee" or "discount"
var ValidationRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Total number of form submissions rejected client-side, by entity.",
	},
	[]string{"entity"},
)

// Package metrics defines and registers all custom Prometheus metrics for
// the appointment system. It is the single source of truth for metric names,
// labels, and help strings; registration happens implicitly through promauto
// at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "appointments"

// BookingsCreatedTotal counts booking requests that created a pending
// appointment.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of booking requests that created a pending appointment.",
	},
)

// BookingsRejectedTotal counts booking requests rejected before any write.
// Label:
//   - reason: "invalid_day", "invalid_slot", "empty_purpose", "slot_unavailable"
var BookingsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_rejected_total",
		Help:      "Total number of booking requests rejected by validation.",
	},
	[]string{"reason"},
)

// TransitionsTotal counts lifecycle transitions.
// Labels:
//   - action:  "accept", "decline", "cancel"
//   - outcome: "applied", "invalid", "forbidden"
var TransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transitions_total",
		Help:      "Total number of appointment lifecycle transitions, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// SlotGuardTotal counts write-time slot hold decisions.
// Label:
//   - result: "claimed", "blocked", "unavailable"
var SlotGuardTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slot_guard_total",
		Help:      "Total number of slot guard claim attempts, by result.",
	},
	[]string{"result"},
)

// BookingDuration tracks end-to-end booking request processing time,
// validation through insert.
var BookingDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "booking_duration_seconds",
		Help:      "Time spent processing a booking request, from validation through insert.",
		Buckets:   prometheus.DefBuckets,
	},
)

// AuditEventsTotal counts lifecycle events persisted to the audit trail.
// Label:
//   - action: lifecycle action recorded ("created", "accepted", ...)
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of lifecycle events written to the audit collection.",
	},
	[]string{"action"},
)

// AuditErrorsTotal counts audit events that failed to persist.
var AuditErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit events that failed to persist.",
	},
)

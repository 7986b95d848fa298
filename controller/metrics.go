package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "missionhud",
			Subsystem: "lifecycle",
			Name:      "commands_total",
			Help:      "Lifecycle commands accepted by the controller.",
		},
		[]string{"command"},
	)

	commandFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "missionhud",
			Subsystem: "lifecycle",
			Name:      "command_failures_total",
			Help:      "Remote command failures, after which the optimistic visual state was rolled back.",
		},
		[]string{"command", "reason"},
	)

	reconciliationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "missionhud",
			Subsystem: "lifecycle",
			Name:      "reconciliations_total",
			Help:      "Authoritative re-fetches applied to the visible set.",
		},
	)

	staleFetchesDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "missionhud",
			Subsystem: "lifecycle",
			Name:      "stale_fetches_dropped_total",
			Help:      "Reconciliation results discarded because a later-issued fetch already landed.",
		},
	)

	windowsCancelledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "missionhud",
			Subsystem: "lifecycle",
			Name:      "windows_cancelled_total",
			Help:      "Animation windows stopped before the remote command fired.",
		},
	)
)

// Package metrics counts track format decision outcomes on the default
// prometheus registry. The library does not expose the registry; the host
// application decides whether and how to serve it.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decision outcome labels.
const (
	OutcomeFormat            = "format"
	OutcomeAlreadyCompressed = "already_compressed"
	OutcomeUnavailable       = "unavailable"
)

var decisionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "trackplan_decision_total",
	Help: "Total number of track format decisions by outcome",
}, []string{"outcome"})

// RecordDecision records one decision outcome.
func RecordDecision(outcome string) {
	decisionTotal.WithLabelValues(normalizeOutcomeLabel(outcome)).Inc()
}

func normalizeOutcomeLabel(outcome string) string {
	switch outcome {
	case OutcomeFormat, OutcomeAlreadyCompressed, OutcomeUnavailable:
		return outcome
	default:
		return "unknown"
	}
}

package telemetry

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors for the turn pipeline. Registered once on the default
// registry; the server exposes them at /metrics.
var (
	TurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsgenie",
		Name:      "turns_total",
		Help:      "Turns processed, labelled by branch.",
	}, []string{"branch"})

	TurnErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsgenie",
		Name:      "turn_errors_total",
		Help:      "Turns that ended on an error path, labelled by branch.",
	}, []string{"branch"})

	FetchFallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsgenie",
		Name:      "fetch_fallbacks_total",
		Help:      "External fetches resolved to mock fallback data, labelled by source.",
	}, []string{"source"})

	CompletionRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "newsgenie",
		Name:      "completion_requests_total",
		Help:      "Requests issued to the completion service.",
	})

	TurnDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "newsgenie",
		Name:      "turn_duration_seconds",
		Help:      "End-to-end turn latency.",
		Buckets:   prometheus.DefBuckets,
	})
)

// NewLogger returns a prefixed logger in the house style.
func NewLogger(prefix string) *log.Logger {
	return log.New(log.Writer(), prefix, log.LstdFlags)
}

// Package observability exposes Prometheus instruments for workout computations.
package observability

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/fittracker/internal/domain"
)

// Failure reasons used as the dispatch_failures_total label.
const (
	ReasonUnknownType      = "unknown_workout_type"
	ReasonArityMismatch    = "arity_mismatch"
	ReasonDivisionFault    = "division_fault"
	ReasonInvalidParameter = "invalid_parameter"
	ReasonOther            = "other"
)

var (
	summarizedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "workouts",
		Name:      "summarized_total",
		Help:      "Number of workouts summarized, grouped by kind.",
	}, []string{"kind"})

	dispatchFailureCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittracker",
		Subsystem: "dispatch",
		Name:      "failures_total",
		Help:      "Number of rejected workout records, grouped by reason.",
	}, []string{"reason"})

	lastSummaryGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fittracker",
		Subsystem: "workouts",
		Name:      "last_summary_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout summary.",
	})
)

func init() {
	prometheus.MustRegister(summarizedCounter, dispatchFailureCounter, lastSummaryGauge)
}

// RecordSummary counts a computed summary and moves the watermark gauge.
func RecordSummary(kind domain.Kind, ts time.Time) {
	summarizedCounter.WithLabelValues(string(kind)).Inc()
	if ts.IsZero() {
		return
	}
	lastSummaryGauge.Set(float64(ts.Unix()))
}

// RecordDispatchFailure counts a rejected record under the reason derived from err.
func RecordDispatchFailure(err error) {
	dispatchFailureCounter.WithLabelValues(FailureReason(err)).Inc()
}

// FailureReason maps dispatch errors onto a stable label value.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownWorkoutType):
		return ReasonUnknownType
	case errors.Is(err, domain.ErrArityMismatch):
		return ReasonArityMismatch
	case errors.Is(err, domain.ErrDivisionFault):
		return ReasonDivisionFault
	case errors.Is(err, domain.ErrInvalidParameter):
		return ReasonInvalidParameter
	default:
		return ReasonOther
	}
}

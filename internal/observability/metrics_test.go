package observability

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"example.com/fittracker/internal/domain"
)

func TestFailureReason(t *testing.T) {
	_, unknown := domain.Dispatch("XYZ", nil)
	_, arity := domain.Dispatch(domain.CodeSwimming, []float64{720, 1, 80})
	_, fault := domain.Dispatch(domain.CodeRunning, []float64{15000, 0, 75})
	_, invalid := domain.Dispatch(domain.CodeRunning, []float64{1.5, 1, 75})

	require.Equal(t, ReasonUnknownType, FailureReason(unknown))
	require.Equal(t, ReasonArityMismatch, FailureReason(arity))
	require.Equal(t, ReasonDivisionFault, FailureReason(fault))
	require.Equal(t, ReasonInvalidParameter, FailureReason(invalid))
	require.Equal(t, ReasonArityMismatch, FailureReason(fmt.Errorf("record 2: %w", arity)))
	require.Equal(t, ReasonOther, FailureReason(errors.New("boom")))
}

func TestRecordSummary(t *testing.T) {
	before := testutil.ToFloat64(summarizedCounter.WithLabelValues(string(domain.KindSwimming)))

	ts := time.Date(2025, time.October, 27, 20, 0, 0, 0, time.UTC)
	RecordSummary(domain.KindSwimming, ts)

	require.Equal(t, before+1, testutil.ToFloat64(summarizedCounter.WithLabelValues(string(domain.KindSwimming))))
	require.Equal(t, float64(ts.Unix()), testutil.ToFloat64(lastSummaryGauge))
}

func TestRecordDispatchFailure(t *testing.T) {
	before := testutil.ToFloat64(dispatchFailureCounter.WithLabelValues(ReasonUnknownType))

	_, err := domain.Dispatch("XYZ", nil)
	RecordDispatchFailure(err)

	require.Equal(t, before+1, testutil.ToFloat64(dispatchFailureCounter.WithLabelValues(ReasonUnknownType)))
}

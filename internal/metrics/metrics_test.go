package metrics

import (
	"errors"
	"testing"
	"time"

	"safety-tracker-backend/internal/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveReport(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder := NewRecorder(reg)

	started := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	recorder.ObserveReport(&reconcile.Report{
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
		Periods:    reconcile.Counts{Created: 2},
		Coaches:    reconcile.Counts{Created: 3, Skipped: 1},
		Metrics:    reconcile.Counts{Updated: 4, Merged: 1},
	}, nil)
	recorder.ObserveReport(&reconcile.Report{DryRun: true, Metrics: reconcile.Counts{Created: 1}}, nil)
	recorder.ObserveReport(nil, errors.New("unreadable workbook"))

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.runs.WithLabelValues(ResultApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.runs.WithLabelValues(ResultDryRun)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.runs.WithLabelValues(ResultFailed)))

	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.records.WithLabelValues("period", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.records.WithLabelValues("coach", "skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.records.WithLabelValues("metric", "created")))
	assert.Equal(t, 4.0, testutil.ToFloat64(recorder.records.WithLabelValues("metric", "updated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.records.WithLabelValues("metric", "merged")))

	count, err := testutil.GatherAndCount(reg, "safety_import_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecorder_Nil(t *testing.T) {
	var recorder *Recorder
	assert.NotPanics(t, func() {
		recorder.ObserveReport(&reconcile.Report{}, nil)
	})
}

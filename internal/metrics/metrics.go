// Package metrics exposes prometheus instrumentation for import runs.
package metrics

import (
	"safety-tracker-backend/internal/reconcile"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "safety"

// Run results
const (
	ResultApplied = "applied"
	ResultDryRun  = "dry_run"
	ResultFailed  = "failed"
)

// Recorder counts import runs and their per-record outcomes. A nil Recorder
// records nothing.
type Recorder struct {
	runs     *prometheus.CounterVec
	records  *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewRecorder creates a recorder and registers its collectors with reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_runs_total",
			Help:      "Workbook import runs by result.",
		}, []string{"result"}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_records_total",
			Help:      "Imported candidates by record kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "import_duration_seconds",
			Help:      "Wall time of a reconciliation pass.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(r.runs, r.records, r.duration)
	return r
}

// ObserveReport records one finished run. report may be nil when the run
// failed before reconciliation started.
func (r *Recorder) ObserveReport(report *reconcile.Report, err error) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(result(report, err)).Inc()
	if report == nil {
		return
	}

	for _, kind := range reconcile.Kinds {
		counts := report.CountsFor(kind)
		for _, outcome := range reconcile.Outcomes {
			if n := counts.Get(outcome); n > 0 {
				r.records.WithLabelValues(string(kind), string(outcome)).Add(float64(n))
			}
		}
	}
	r.duration.Observe(report.Duration().Seconds())
}

func result(report *reconcile.Report, err error) string {
	switch {
	case err != nil:
		return ResultFailed
	case report != nil && report.DryRun:
		return ResultDryRun
	default:
		return ResultApplied
	}
}

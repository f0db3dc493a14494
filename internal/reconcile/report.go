package reconcile

import (
	"time"

	"safety-tracker-backend/internal/database/models"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/normalize"
)

// Outcome is what happened to one candidate
type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeMerged    Outcome = "merged"
	OutcomeSkipped   Outcome = "skipped"
)

// Outcomes lists every outcome in report order
var Outcomes = []Outcome{OutcomeCreated, OutcomeUpdated, OutcomeUnchanged, OutcomeMerged, OutcomeSkipped}

// Counts tallies outcomes for one record kind
type Counts struct {
	Created   int `json:"created" yaml:"created"`
	Updated   int `json:"updated" yaml:"updated"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	Merged    int `json:"merged" yaml:"merged"`
	Skipped   int `json:"skipped" yaml:"skipped"`
}

// Add records one outcome
func (c *Counts) Add(outcome Outcome) {
	switch outcome {
	case OutcomeCreated:
		c.Created++
	case OutcomeUpdated:
		c.Updated++
	case OutcomeUnchanged:
		c.Unchanged++
	case OutcomeMerged:
		c.Merged++
	case OutcomeSkipped:
		c.Skipped++
	}
}

// Get returns the tally of one outcome
func (c Counts) Get(outcome Outcome) int {
	switch outcome {
	case OutcomeCreated:
		return c.Created
	case OutcomeUpdated:
		return c.Updated
	case OutcomeUnchanged:
		return c.Unchanged
	case OutcomeMerged:
		return c.Merged
	case OutcomeSkipped:
		return c.Skipped
	}
	return 0
}

// Report is the result of one reconciliation pass. Diagnostics are ordered:
// row-level ones in workbook order first, then entity-level ones by phase.
type Report struct {
	Source      string                   `json:"source,omitempty" yaml:"source,omitempty"`
	Identity    string                   `json:"identity" yaml:"identity"`
	DryRun      bool                     `json:"dry_run" yaml:"dry_run"`
	StartedAt   time.Time                `json:"started_at" yaml:"started_at"`
	FinishedAt  time.Time                `json:"finished_at" yaml:"finished_at"`
	Periods     Counts                   `json:"periods" yaml:"periods"`
	Coaches     Counts                   `json:"coaches" yaml:"coaches"`
	Metrics     Counts                   `json:"metrics" yaml:"metrics"`
	Sheets      []normalize.SheetSummary `json:"sheets,omitempty" yaml:"sheets,omitempty"`
	Diagnostics []*apperrors.ImportIssue `json:"diagnostics" yaml:"diagnostics"`
}

// Kinds lists the record kinds in processing order
var Kinds = []models.EntityKind{models.EntityPeriod, models.EntityCoach, models.EntityMetric}

// CountsFor returns the tally of one record kind
func (r *Report) CountsFor(kind models.EntityKind) *Counts {
	switch kind {
	case models.EntityPeriod:
		return &r.Periods
	case models.EntityCoach:
		return &r.Coaches
	default:
		return &r.Metrics
	}
}

// Duration is the wall time of the pass
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Skipped returns the number of skipped candidates across all kinds
func (r *Report) Skipped() int {
	return r.Periods.Skipped + r.Coaches.Skipped + r.Metrics.Skipped
}

// Written returns the number of created or updated records across all kinds
func (r *Report) Written() int {
	total := 0
	for _, kind := range Kinds {
		c := r.CountsFor(kind)
		total += c.Created + c.Updated
	}
	return total
}

func (r *Report) add(kind models.EntityKind, outcome Outcome) {
	r.CountsFor(kind).Add(outcome)
}

// skip records a skipped candidate together with its reason
func (r *Report) skip(issue *apperrors.ImportIssue) {
	r.add(entityKind(issue.Entity), OutcomeSkipped)
	r.note(issue)
}

func (r *Report) note(issue *apperrors.ImportIssue) {
	r.Diagnostics = append(r.Diagnostics, issue)
}

func entityKind(entity string) models.EntityKind {
	kind := models.EntityKind(entity)
	if !kind.IsValid() {
		return models.EntityMetric
	}
	return kind
}

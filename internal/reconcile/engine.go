// Package reconcile folds normalized workbook candidates into the store and
// guards the dashboard write paths with the same invariants.
package reconcile

import (
	"errors"
	"fmt"
	"time"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/database/models"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/logger"
	"safety-tracker-backend/internal/normalize"
	"safety-tracker-backend/internal/store"

	"github.com/google/uuid"
)

// Engine reconciles candidates against a Store
type Engine struct {
	store  store.Store
	logger *logger.Logger
	now    func() time.Time
}

// NewEngine creates an engine writing through st
func NewEngine(st store.Store, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.New()
	}
	return &Engine{store: st, logger: log, now: time.Now}
}

// pass is the state of one Reconcile call
type pass struct {
	identity string
	report   *Report
	log      *logger.Logger

	periods []models.BiWeeklyPeriod
	coaches map[string]uuid.UUID
}

type metricKey struct {
	periodID uuid.UUID
	coachID  uuid.UUID
}

// Reconcile writes a normalized batch into the store: periods first, then
// coaches, then metrics. Row and entity problems become diagnostics in the
// report; only store failures abort the pass, in which case the partial
// report is returned together with the error.
func (e *Engine) Reconcile(identity auth.Identity, batch *normalize.Batch) (*Report, error) {
	if !identity.Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	p := &pass{
		identity: identity.String(),
		report:   &Report{Identity: identity.String(), StartedAt: e.now(), Diagnostics: []*apperrors.ImportIssue{}},
		log:      e.logger.WithIdentity(identity),
		coaches:  make(map[string]uuid.UUID),
	}
	p.report.Sheets = batch.Sheets
	for _, issue := range batch.Diagnostics {
		p.report.skip(issue)
	}
	for _, issue := range batch.Notes {
		p.report.note(issue)
	}

	err := e.reconcilePeriods(p, batch.Periods)
	if err == nil {
		err = e.reconcileCoaches(p, batch)
	}
	if err == nil {
		err = e.reconcileMetrics(p, batch.Metrics)
	}
	p.report.FinishedAt = e.now()

	for _, issue := range p.report.Diagnostics {
		p.log.WithField("code", issue.Code).Debug(issue.Error())
	}
	if err != nil {
		p.log.WithError(err).Error("Reconciliation aborted")
		return p.report, err
	}
	return p.report, nil
}

func (e *Engine) reconcilePeriods(p *pass, candidates []*normalize.PeriodCandidate) error {
	periods, err := e.store.ListPeriods()
	if err != nil {
		return err
	}
	p.periods = periods

	for _, c := range candidates {
		outcome, err := e.reconcilePeriod(p, c)
		if err != nil {
			if !isEntityError(err) {
				return fmt.Errorf("failed to reconcile period at %s row %d: %w", c.Sheet, c.Row, err)
			}
			p.report.skip(apperrors.NewImportIssue(issueCode(err), string(models.EntityPeriod),
				c.Sheet, c.Row, "%v", err))
			continue
		}
		p.report.add(models.EntityPeriod, outcome)
	}

	p.log.WithFields(countFields(p.report.Periods)).Info("Periods reconciled")
	return nil
}

func (e *Engine) reconcilePeriod(p *pass, c *normalize.PeriodCandidate) (Outcome, error) {
	existing, err := e.store.FindPeriodByRange(c.StartDate, c.EndDate)
	switch {
	case err == nil:
		if c.DisplayName == "" || existing.DisplayName != "" {
			return OutcomeUnchanged, nil
		}
		updated := *existing
		updated.DisplayName = c.DisplayName
		updated.UpdatedBy = p.identity
		if err := e.store.UpsertPeriod(&updated); err != nil {
			return "", err
		}
		p.remember(updated)
		return OutcomeUpdated, nil
	case !errors.Is(err, apperrors.ErrPeriodNotFound):
		return "", err
	}

	overlapping, err := e.store.FindOverlappingPeriods(c.StartDate, c.EndDate, nil)
	if err != nil {
		return "", err
	}
	if len(overlapping) > 0 {
		p.report.note(apperrors.NewImportIssue(apperrors.IssuePeriodOverlapConflict, string(models.EntityPeriod),
			c.Sheet, c.Row, "%s to %s overlaps period %s", formatDate(c.StartDate), formatDate(c.EndDate), describePeriod(overlapping[0])))
		return OutcomeSkipped, nil
	}

	period := &models.BiWeeklyPeriod{
		BaseModel:   models.BaseModel{CreatedBy: p.identity, UpdatedBy: p.identity},
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		DisplayName: c.DisplayName,
	}
	if err := e.store.UpsertPeriod(period); err != nil {
		return "", err
	}
	p.remember(*period)
	return OutcomeCreated, nil
}

// remember keeps the pass's view of periods current for metric resolution
func (p *pass) remember(period models.BiWeeklyPeriod) {
	for i := range p.periods {
		if p.periods[i].ID == period.ID {
			p.periods[i] = period
			return
		}
	}
	p.periods = append(p.periods, period)
}

// reconcileCoaches handles coach-sheet rows first, then creates any coach
// seen only on a metric sheet.
func (e *Engine) reconcileCoaches(p *pass, batch *normalize.Batch) error {
	coaches, err := e.store.ListCoaches()
	if err != nil {
		return err
	}
	existing := make(map[string]*models.Coach, len(coaches))
	for i := range coaches {
		existing[coaches[i].NameKey] = &coaches[i]
		p.coaches[coaches[i].NameKey] = coaches[i].ID
	}

	candidates := append([]*normalize.CoachCandidate(nil), batch.Coaches...)
	sighted := make(map[string]bool, len(batch.Coaches))
	for _, c := range batch.Coaches {
		sighted[c.Key] = true
	}
	for _, m := range batch.Metrics {
		if sighted[m.CoachKey] {
			continue
		}
		sighted[m.CoachKey] = true
		candidates = append(candidates, &normalize.CoachCandidate{Source: m.Source, Name: m.CoachName, Key: m.CoachKey})
	}

	for _, c := range candidates {
		coach, outcome, err := e.reconcileCoach(p, existing[c.Key], c)
		if err != nil {
			if !isEntityError(err) {
				return fmt.Errorf("failed to reconcile coach at %s row %d: %w", c.Sheet, c.Row, err)
			}
			p.report.skip(apperrors.NewImportIssue(issueCode(err), string(models.EntityCoach),
				c.Sheet, c.Row, "coach %q: %v", c.Name, err))
			continue
		}
		existing[c.Key] = coach
		p.coaches[c.Key] = coach.ID
		p.report.add(models.EntityCoach, outcome)
	}

	p.log.WithFields(countFields(p.report.Coaches)).Info("Coaches reconciled")
	return nil
}

// reconcileCoach creates a new coach or backfills an existing one. Backfill
// never overwrites a hire date or balances that are already set.
func (e *Engine) reconcileCoach(p *pass, existing *models.Coach, c *normalize.CoachCandidate) (*models.Coach, Outcome, error) {
	if existing == nil {
		remaining, total := c.Balances()
		coach := &models.Coach{
			BaseModel:             models.BaseModel{CreatedBy: p.identity, UpdatedBy: p.identity},
			Name:                  c.Name,
			NameKey:               c.Key,
			VacationDaysRemaining: remaining,
			VacationDaysTotal:     total,
		}
		if c.HireDate.Set {
			hired := c.HireDate.Value
			coach.HireDate = &hired
		}
		if err := e.store.UpsertCoach(coach); err != nil {
			return nil, "", err
		}
		return coach, OutcomeCreated, nil
	}

	updated := *existing
	changed := false
	if updated.HireDate == nil && c.HireDate.Set {
		hired := c.HireDate.Value
		updated.HireDate = &hired
		changed = true
	}
	if updated.BalancesUnset() && c.HasBalances() {
		remaining, total := c.Balances()
		if remaining != updated.VacationDaysRemaining || total != updated.VacationDaysTotal {
			updated.VacationDaysRemaining = remaining
			updated.VacationDaysTotal = total
			changed = true
		}
	}
	if !changed {
		return existing, OutcomeUnchanged, nil
	}

	updated.UpdatedBy = p.identity
	if err := e.store.UpsertCoach(&updated); err != nil {
		return nil, "", err
	}
	return &updated, OutcomeUpdated, nil
}

// reconcileMetrics resolves each metric's period and coach, folds rows that
// share a (period, coach) key, then upserts one record per key.
func (e *Engine) reconcileMetrics(p *pass, candidates []*normalize.MetricCandidate) error {
	var (
		order  []metricKey
		folded = make(map[metricKey]*normalize.MetricCandidate)
	)
	for _, c := range candidates {
		periodID, ok := p.resolvePeriod(c.Period)
		if !ok {
			p.report.skip(apperrors.NewImportIssue(apperrors.IssueUnresolvedPeriod, string(models.EntityMetric),
				c.Sheet, c.Row, "no period matches %s", describeRef(c.Period)))
			continue
		}
		coachID, ok := p.coaches[c.CoachKey]
		if !ok {
			p.report.skip(apperrors.NewImportIssue(apperrors.IssueUnresolvedCoach, string(models.EntityMetric),
				c.Sheet, c.Row, "coach %q could not be resolved", c.CoachName))
			continue
		}

		key := metricKey{periodID: periodID, coachID: coachID}
		if first, seen := folded[key]; seen {
			p.report.note(apperrors.NewImportIssue(apperrors.IssueDuplicateMetricKey, string(models.EntityMetric),
				c.Sheet, c.Row, "duplicate row for coach %q merged into %s row %d", c.CoachName, first.Sheet, first.Row))
			first.Merge(c)
			p.report.add(models.EntityMetric, OutcomeMerged)
			continue
		}
		clone := *c
		folded[key] = &clone
		order = append(order, key)
	}

	for _, key := range order {
		c := folded[key]
		outcome, err := e.reconcileMetric(p, key, c)
		if err != nil {
			if !isEntityError(err) {
				return fmt.Errorf("failed to reconcile metric at %s row %d: %w", c.Sheet, c.Row, err)
			}
			p.report.skip(apperrors.NewImportIssue(issueCode(err), string(models.EntityMetric),
				c.Sheet, c.Row, "coach %q: %v", c.CoachName, err))
			continue
		}
		p.report.add(models.EntityMetric, outcome)
	}

	p.log.WithFields(countFields(p.report.Metrics)).Info("Metrics reconciled")
	return nil
}

func (e *Engine) reconcileMetric(p *pass, key metricKey, c *normalize.MetricCandidate) (Outcome, error) {
	existing, err := e.store.FindMetric(key.periodID, key.coachID)
	switch {
	case errors.Is(err, apperrors.ErrMetricNotFound):
		metric := &models.SafetyMetric{
			BaseModel: models.BaseModel{CreatedBy: p.identity, UpdatedBy: p.identity},
			PeriodID:  key.periodID,
			CoachID:   key.coachID,
		}
		c.ApplyTo(metric)
		if err := e.store.UpsertMetric(metric); err != nil {
			return "", err
		}
		return OutcomeCreated, nil
	case err != nil:
		return "", err
	}

	updated := *existing
	c.ApplyTo(&updated)
	if sameMetric(existing, &updated) {
		return OutcomeUnchanged, nil
	}
	updated.UpdatedBy = p.identity
	if err := e.store.UpsertMetric(&updated); err != nil {
		return "", err
	}
	return OutcomeUpdated, nil
}

// resolvePeriod finds a period by exact range, or by display name
func (p *pass) resolvePeriod(ref normalize.PeriodRef) (uuid.UUID, bool) {
	if ref.HasDates {
		for _, period := range p.periods {
			if period.SameRange(ref.StartDate, ref.EndDate) {
				return period.ID, true
			}
		}
		return uuid.Nil, false
	}

	name := normalize.NameKey(ref.Name)
	if name == "" {
		return uuid.Nil, false
	}
	for _, period := range p.periods {
		if normalize.NameKey(period.DisplayName) == name {
			return period.ID, true
		}
	}
	return uuid.Nil, false
}

// isEntityError reports whether a store error concerns one record rather than the store itself
func isEntityError(err error) bool {
	return apperrors.IsNotFound(err) || apperrors.IsAlreadyExists(err) || apperrors.IsValidation(err) ||
		errors.Is(err, apperrors.ErrPeriodOverlap) || errors.Is(err, apperrors.ErrInvalidDateRange) ||
		errors.Is(err, apperrors.ErrInvalidBalance) || errors.Is(err, apperrors.ErrNegativeCount)
}

// issueCode classifies a store rejection of a single record
func issueCode(err error) apperrors.IssueCode {
	switch {
	case errors.Is(err, apperrors.ErrPeriodOverlap), errors.Is(err, apperrors.ErrPeriodExists):
		return apperrors.IssuePeriodOverlapConflict
	case errors.Is(err, apperrors.ErrDuplicateMetricKey):
		return apperrors.IssueDuplicateMetricKey
	case errors.Is(err, apperrors.ErrPeriodNotFound):
		return apperrors.IssueUnresolvedPeriod
	case errors.Is(err, apperrors.ErrCoachNotFound):
		return apperrors.IssueUnresolvedCoach
	case errors.Is(err, apperrors.ErrInvalidDateRange):
		return apperrors.IssueInvalidDate
	case errors.Is(err, apperrors.ErrInvalidBalance), errors.Is(err, apperrors.ErrNegativeCount):
		return apperrors.IssueInvalidNumeric
	default:
		return apperrors.IssueStoreRejected
	}
}

func sameMetric(a, b *models.SafetyMetric) bool {
	return a.TravelPlans == b.TravelPlans &&
		a.TrainingLocation == b.TrainingLocation &&
		a.SiteSafetyEvaluations == b.SiteSafetyEvaluations &&
		a.ForensicSurveyAudits == b.ForensicSurveyAudits &&
		a.WarehouseSafetyAudits == b.WarehouseSafetyAudits &&
		a.OpenInvestigationsInjuries == b.OpenInvestigationsInjuries &&
		a.OpenInvestigationsAuto == b.OpenInvestigationsAuto &&
		a.OpenInvestigationsProperty == b.OpenInvestigationsProperty &&
		a.OpenInvestigationsNearMiss == b.OpenInvestigationsNearMiss &&
		sameOptional(a.HRPartnershipMeeting, b.HRPartnershipMeeting) &&
		sameOptional(a.WHSPartnershipMeeting, b.WHSPartnershipMeeting) &&
		sameOptional(a.LMSReportDate, b.LMSReportDate) &&
		sameOptional(a.TBTAttendanceReportDate, b.TBTAttendanceReportDate) &&
		a.Notes == b.Notes
}

func sameOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func countFields(c Counts) map[string]interface{} {
	return map[string]interface{}{
		"created":   c.Created,
		"updated":   c.Updated,
		"unchanged": c.Unchanged,
		"merged":    c.Merged,
		"skipped":   c.Skipped,
	}
}

func formatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

func describePeriod(p models.BiWeeklyPeriod) string {
	if p.DisplayName != "" {
		return fmt.Sprintf("%q (%s to %s)", p.DisplayName, formatDate(p.StartDate), formatDate(p.EndDate))
	}
	return fmt.Sprintf("%s to %s", formatDate(p.StartDate), formatDate(p.EndDate))
}

func describeRef(ref normalize.PeriodRef) string {
	if ref.HasDates {
		return fmt.Sprintf("%s to %s", formatDate(ref.StartDate), formatDate(ref.EndDate))
	}
	return fmt.Sprintf("%q", ref.Name)
}

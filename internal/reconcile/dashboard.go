package reconcile

import (
	"errors"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/database/models"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/normalize"

	"github.com/google/uuid"
)

// SavePeriod creates or updates a period edited on the dashboard
func (e *Engine) SavePeriod(identity auth.Identity, period *models.BiWeeklyPeriod) error {
	if !identity.Authenticated() {
		return apperrors.ErrUnauthorized
	}
	if !period.StartDate.Before(period.EndDate) {
		return apperrors.ErrInvalidDateRange
	}

	same, err := e.store.FindPeriodByRange(period.StartDate, period.EndDate)
	switch {
	case err == nil && same.ID != period.ID:
		return apperrors.ErrPeriodExists
	case err != nil && !errors.Is(err, apperrors.ErrPeriodNotFound):
		return err
	}

	var exclude *uuid.UUID
	if !period.IsNew() {
		exclude = &period.ID
	}
	overlapping, err := e.store.FindOverlappingPeriods(period.StartDate, period.EndDate, exclude)
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		return apperrors.ErrPeriodOverlap
	}

	stamp(&period.BaseModel, identity)
	if err := e.store.UpsertPeriod(period); err != nil {
		return err
	}
	e.logger.WithIdentity(identity).WithField("period_id", period.ID).Info("Period saved")
	return nil
}

// SaveCoach creates or updates a coach edited on the dashboard. Balances
// entered here are confirmed, so a later import never backfills over them.
func (e *Engine) SaveCoach(identity auth.Identity, coach *models.Coach) error {
	if !identity.Authenticated() {
		return apperrors.ErrUnauthorized
	}

	coach.Name = normalize.CleanName(coach.Name)
	if coach.Name == "" {
		return apperrors.NewValidationError("name", "name is required")
	}
	if coach.VacationDaysRemaining < 0 || coach.VacationDaysRemaining > coach.VacationDaysTotal {
		return apperrors.ErrInvalidBalance
	}
	coach.NameKey = normalize.NameKey(coach.Name)

	existing, err := e.store.FindCoachByKey(coach.NameKey)
	switch {
	case err == nil && existing.ID != coach.ID:
		return apperrors.ErrCoachExists
	case err != nil && !errors.Is(err, apperrors.ErrCoachNotFound):
		return err
	}

	coach.BalancesConfirmed = true
	stamp(&coach.BaseModel, identity)
	if err := e.store.UpsertCoach(coach); err != nil {
		return err
	}
	e.logger.WithIdentity(identity).WithField("coach_id", coach.ID).Info("Coach saved")
	return nil
}

// SaveMetric upserts the metric of one coach in one period. A metric without
// an identifier replaces the record already stored under its (period, coach) key.
func (e *Engine) SaveMetric(identity auth.Identity, metric *models.SafetyMetric) error {
	if !identity.Authenticated() {
		return apperrors.ErrUnauthorized
	}
	for _, n := range metric.Counts() {
		if n < 0 {
			return apperrors.ErrNegativeCount
		}
	}
	if _, err := e.store.GetPeriod(metric.PeriodID); err != nil {
		return err
	}
	if _, err := e.store.GetCoach(metric.CoachID); err != nil {
		return err
	}

	existing, err := e.store.FindMetric(metric.PeriodID, metric.CoachID)
	switch {
	case errors.Is(err, apperrors.ErrMetricNotFound):
	case err != nil:
		return err
	case metric.IsNew():
		metric.ID = existing.ID
	case metric.ID != existing.ID:
		return apperrors.ErrDuplicateMetricKey
	}

	stamp(&metric.BaseModel, identity)
	if err := e.store.UpsertMetric(metric); err != nil {
		return err
	}
	e.logger.WithIdentity(identity).WithFields(map[string]interface{}{
		"period_id": metric.PeriodID,
		"coach_id":  metric.CoachID,
	}).Info("Safety metric saved")
	return nil
}

// DeletePeriod removes a period no metric refers to
func (e *Engine) DeletePeriod(identity auth.Identity, id uuid.UUID) error {
	if !identity.Authenticated() {
		return apperrors.ErrUnauthorized
	}
	if err := e.store.DeletePeriod(id); err != nil {
		return err
	}
	e.logger.WithIdentity(identity).WithField("period_id", id).Info("Period deleted")
	return nil
}

// stamp records who performed the write
func stamp(base *models.BaseModel, identity auth.Identity) {
	if base.IsNew() {
		base.CreatedBy = identity.String()
	}
	base.UpdatedBy = identity.String()
}

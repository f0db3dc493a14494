package store

import (
	"errors"
	"fmt"
	"time"

	"safety-tracker-backend/internal/database/models"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DatabaseStore implements Store on top of the gorm repositories
type DatabaseStore struct {
	periods repository.PeriodRepositoryInterface
	coaches repository.CoachRepositoryInterface
	metrics repository.SafetyMetricRepositoryInterface
}

// NewDatabaseStore creates a store over the given repositories
func NewDatabaseStore(
	periods repository.PeriodRepositoryInterface,
	coaches repository.CoachRepositoryInterface,
	metrics repository.SafetyMetricRepositoryInterface,
) *DatabaseStore {
	return &DatabaseStore{periods: periods, coaches: coaches, metrics: metrics}
}

// NewDatabaseStoreFromDB wires the gorm repositories for db
func NewDatabaseStoreFromDB(db *gorm.DB) *DatabaseStore {
	return NewDatabaseStore(
		repository.NewPeriodRepository(db),
		repository.NewCoachRepository(db),
		repository.NewSafetyMetricRepository(db),
	)
}

func (s *DatabaseStore) ListPeriods() ([]models.BiWeeklyPeriod, error) {
	periods, err := s.periods.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}

func (s *DatabaseStore) ListCoaches() ([]models.Coach, error) {
	coaches, err := s.coaches.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list coaches: %w", err)
	}
	return coaches, nil
}

func (s *DatabaseStore) ListMetrics(periodID *uuid.UUID) ([]models.SafetyMetric, error) {
	var (
		metrics []models.SafetyMetric
		err     error
	)
	if periodID != nil {
		metrics, err = s.metrics.GetByPeriodID(*periodID)
	} else {
		metrics, err = s.metrics.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list safety metrics: %w", err)
	}
	return metrics, nil
}

func (s *DatabaseStore) GetPeriod(id uuid.UUID) (*models.BiWeeklyPeriod, error) {
	period, err := s.periods.GetByID(id)
	if err != nil {
		return nil, translate(err, apperrors.ErrPeriodNotFound, apperrors.ErrPeriodExists)
	}
	return period, nil
}

func (s *DatabaseStore) GetCoach(id uuid.UUID) (*models.Coach, error) {
	coach, err := s.coaches.GetByID(id)
	if err != nil {
		return nil, translate(err, apperrors.ErrCoachNotFound, apperrors.ErrCoachExists)
	}
	return coach, nil
}

func (s *DatabaseStore) FindMetric(periodID, coachID uuid.UUID) (*models.SafetyMetric, error) {
	metric, err := s.metrics.GetByPeriodAndCoach(periodID, coachID)
	if err != nil {
		return nil, translate(err, apperrors.ErrMetricNotFound, apperrors.ErrDuplicateMetricKey)
	}
	return metric, nil
}

func (s *DatabaseStore) FindPeriodByRange(start, end time.Time) (*models.BiWeeklyPeriod, error) {
	period, err := s.periods.GetByRange(start, end)
	if err != nil {
		return nil, translate(err, apperrors.ErrPeriodNotFound, apperrors.ErrPeriodExists)
	}
	return period, nil
}

func (s *DatabaseStore) FindOverlappingPeriods(start, end time.Time, excludeID *uuid.UUID) ([]models.BiWeeklyPeriod, error) {
	periods, err := s.periods.GetOverlapping(start, end, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check period overlap: %w", err)
	}
	return periods, nil
}

func (s *DatabaseStore) FindCoachByKey(key string) (*models.Coach, error) {
	coach, err := s.coaches.GetByNameKey(key)
	if err != nil {
		return nil, translate(err, apperrors.ErrCoachNotFound, apperrors.ErrCoachExists)
	}
	return coach, nil
}

func (s *DatabaseStore) UpsertPeriod(period *models.BiWeeklyPeriod) error {
	if period.IsNew() {
		return translate(s.periods.Create(period), apperrors.ErrPeriodNotFound, apperrors.ErrPeriodExists)
	}

	existing, err := s.GetPeriod(period.ID)
	if err != nil {
		return err
	}
	keepCreation(&period.BaseModel, existing.BaseModel)
	return translate(s.periods.Update(period), apperrors.ErrPeriodNotFound, apperrors.ErrPeriodExists)
}

func (s *DatabaseStore) UpsertCoach(coach *models.Coach) error {
	if coach.IsNew() {
		return translate(s.coaches.Create(coach), apperrors.ErrCoachNotFound, apperrors.ErrCoachExists)
	}

	existing, err := s.GetCoach(coach.ID)
	if err != nil {
		return err
	}
	keepCreation(&coach.BaseModel, existing.BaseModel)
	return translate(s.coaches.Update(coach), apperrors.ErrCoachNotFound, apperrors.ErrCoachExists)
}

func (s *DatabaseStore) UpsertMetric(metric *models.SafetyMetric) error {
	if metric.IsNew() {
		return translateMetric(s.metrics.Create(metric))
	}

	existing, err := s.metrics.GetByID(metric.ID)
	if err != nil {
		return translateMetric(err)
	}
	keepCreation(&metric.BaseModel, existing.BaseModel)
	return translateMetric(s.metrics.Update(metric))
}

func translateMetric(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.NewValidationError("period_id", "period or coach does not exist")
	}
	return translate(err, apperrors.ErrMetricNotFound, apperrors.ErrDuplicateMetricKey)
}

func (s *DatabaseStore) DeletePeriod(id uuid.UUID) error {
	if _, err := s.GetPeriod(id); err != nil {
		return err
	}

	count, err := s.metrics.CountByPeriodID(id)
	if err != nil {
		return fmt.Errorf("failed to count safety metrics: %w", err)
	}
	if count > 0 {
		return apperrors.ErrPeriodInUse
	}

	err = s.periods.Delete(id)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.ErrPeriodInUse
	}
	return translate(err, apperrors.ErrPeriodNotFound, apperrors.ErrPeriodExists)
}

// keepCreation carries the creation audit of the stored row into an update
func keepCreation(dst *models.BaseModel, stored models.BaseModel) {
	dst.CreatedAt = stored.CreatedAt
	if dst.CreatedBy == "" {
		dst.CreatedBy = stored.CreatedBy
	}
}

// translate maps gorm errors onto the domain error taxonomy
func translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicate
	default:
		return err
	}
}

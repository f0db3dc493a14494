package repository

import (
	"time"

	"safety-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PeriodRepositoryInterface defines the interface for period repository operations
type PeriodRepositoryInterface interface {
	Create(period *models.BiWeeklyPeriod) error
	GetByID(id uuid.UUID) (*models.BiWeeklyPeriod, error)
	GetByRange(start, end time.Time) (*models.BiWeeklyPeriod, error)
	GetAll() ([]models.BiWeeklyPeriod, error)
	GetOverlapping(start, end time.Time, excludeID *uuid.UUID) ([]models.BiWeeklyPeriod, error)
	Update(period *models.BiWeeklyPeriod) error
	Delete(id uuid.UUID) error
}

// CoachRepositoryInterface defines the interface for coach repository operations
type CoachRepositoryInterface interface {
	Create(coach *models.Coach) error
	GetByID(id uuid.UUID) (*models.Coach, error)
	GetByNameKey(key string) (*models.Coach, error)
	GetAll() ([]models.Coach, error)
	Update(coach *models.Coach) error
}

// SafetyMetricRepositoryInterface defines the interface for safety metric repository operations
type SafetyMetricRepositoryInterface interface {
	Create(metric *models.SafetyMetric) error
	GetByID(id uuid.UUID) (*models.SafetyMetric, error)
	GetByPeriodAndCoach(periodID, coachID uuid.UUID) (*models.SafetyMetric, error)
	GetAll() ([]models.SafetyMetric, error)
	GetByPeriodID(periodID uuid.UUID) ([]models.SafetyMetric, error)
	CountByPeriodID(periodID uuid.UUID) (int64, error)
	Update(metric *models.SafetyMetric) error
}

var (
	_ PeriodRepositoryInterface       = (*PeriodRepository)(nil)
	_ CoachRepositoryInterface        = (*CoachRepository)(nil)
	_ SafetyMetricRepositoryInterface = (*SafetyMetricRepository)(nil)
)

// Package store is the persistence contract the reconciliation engine writes through.
package store

import (
	"time"

	"safety-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=store.go -destination=../mocks/store_mocks.go -package=mocks

// Store holds periods, coaches and safety metrics.
//
// List methods return records in creation order. Upsert methods create the
// record when its ID is nil and otherwise update the existing record, failing
// with a NotFound error when there is none. Upserts fill in the ID and
// timestamps of the record they are given.
type Store interface {
	ListPeriods() ([]models.BiWeeklyPeriod, error)
	ListCoaches() ([]models.Coach, error)
	ListMetrics(periodID *uuid.UUID) ([]models.SafetyMetric, error)

	GetPeriod(id uuid.UUID) (*models.BiWeeklyPeriod, error)
	GetCoach(id uuid.UUID) (*models.Coach, error)
	FindMetric(periodID, coachID uuid.UUID) (*models.SafetyMetric, error)

	// FindPeriodByRange returns the period covering exactly [start, end)
	FindPeriodByRange(start, end time.Time) (*models.BiWeeklyPeriod, error)
	// FindOverlappingPeriods returns the periods sharing a day with [start, end), ordered by start date
	FindOverlappingPeriods(start, end time.Time, excludeID *uuid.UUID) ([]models.BiWeeklyPeriod, error)
	FindCoachByKey(key string) (*models.Coach, error)

	UpsertPeriod(period *models.BiWeeklyPeriod) error
	UpsertCoach(coach *models.Coach) error
	UpsertMetric(metric *models.SafetyMetric) error
	DeletePeriod(id uuid.UUID) error
}

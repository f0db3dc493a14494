package testutils

import (
	"fmt"
	"time"

	"safety-tracker-backend/internal/database/models"
	"safety-tracker-backend/internal/normalize"

	"github.com/google/uuid"
)

// Date returns a date-only UTC time
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// PeriodFactory provides methods to create test BiWeeklyPeriod data
type PeriodFactory struct{}

// NewPeriodFactory creates a new PeriodFactory
func NewPeriodFactory() *PeriodFactory {
	return &PeriodFactory{}
}

// Create creates an unsaved period covering Jan 1-14, 2024
func (f *PeriodFactory) Create() *models.BiWeeklyPeriod {
	return f.WithRange(Date(2024, 1, 1), Date(2024, 1, 15))
}

// WithRange creates an unsaved period for [start, end)
func (f *PeriodFactory) WithRange(start, end time.Time) *models.BiWeeklyPeriod {
	return &models.BiWeeklyPeriod{
		StartDate:   start,
		EndDate:     end,
		DisplayName: fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.AddDate(0, 0, -1).Format("Jan 2, 2006")),
	}
}

// Sequence creates n consecutive two-week periods starting at start
func (f *PeriodFactory) Sequence(start time.Time, n int) []*models.BiWeeklyPeriod {
	periods := make([]*models.BiWeeklyPeriod, 0, n)
	for i := 0; i < n; i++ {
		from := start.AddDate(0, 0, 14*i)
		periods = append(periods, f.WithRange(from, from.AddDate(0, 0, 14)))
	}
	return periods
}

// CoachFactory provides methods to create test Coach data
type CoachFactory struct{}

// NewCoachFactory creates a new CoachFactory
func NewCoachFactory() *CoachFactory {
	return &CoachFactory{}
}

// Create creates an unsaved coach with no balances
func (f *CoachFactory) Create() *models.Coach {
	return f.WithName("Jordan Smith")
}

// WithName creates an unsaved coach with the given name
func (f *CoachFactory) WithName(name string) *models.Coach {
	return &models.Coach{
		Name:    name,
		NameKey: normalize.NameKey(name),
	}
}

// WithBalances creates an unsaved coach with confirmed vacation balances
func (f *CoachFactory) WithBalances(name string, remaining, total int) *models.Coach {
	coach := f.WithName(name)
	coach.VacationDaysRemaining = remaining
	coach.VacationDaysTotal = total
	coach.BalancesConfirmed = true
	return coach
}

// SafetyMetricFactory provides methods to create test SafetyMetric data
type SafetyMetricFactory struct{}

// NewSafetyMetricFactory creates a new SafetyMetricFactory
func NewSafetyMetricFactory() *SafetyMetricFactory {
	return &SafetyMetricFactory{}
}

// Create creates an unsaved metric for the given period and coach
func (f *SafetyMetricFactory) Create(periodID, coachID uuid.UUID) *models.SafetyMetric {
	status := "N/A"
	return &models.SafetyMetric{
		PeriodID:              periodID,
		CoachID:               coachID,
		TravelPlans:           "Denver, CO",
		TrainingLocation:      "Branch 12",
		SiteSafetyEvaluations: 3,
		WarehouseSafetyAudits: 1,
		WHSPartnershipMeeting: &status,
		Notes:                 "Test metric",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Period       *PeriodFactory
	Coach        *CoachFactory
	SafetyMetric *SafetyMetricFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Period:       NewPeriodFactory(),
		Coach:        NewCoachFactory(),
		SafetyMetric: NewSafetyMetricFactory(),
	}
}

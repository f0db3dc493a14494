package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"safety-tracker-backend/internal/database/models"
	apperrors "safety-tracker-backend/internal/errors"

	"github.com/google/uuid"
)

// Memory is an in-process Store. It enforces the same uniqueness rules as the
// database schema and hands out copies, so callers cannot mutate its state.
type Memory struct {
	mu      sync.RWMutex
	now     func() time.Time
	periods []models.BiWeeklyPeriod
	coaches []models.Coach
	metrics []models.SafetyMetric
}

type metricKey struct {
	periodID uuid.UUID
	coachID  uuid.UUID
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// NewMemoryFrom copies every record of src into a new in-memory store,
// keeping identifiers and timestamps
func NewMemoryFrom(src Store) (*Memory, error) {
	periods, err := src.ListPeriods()
	if err != nil {
		return nil, err
	}
	coaches, err := src.ListCoaches()
	if err != nil {
		return nil, err
	}
	metrics, err := src.ListMetrics(nil)
	if err != nil {
		return nil, err
	}

	m := NewMemory()
	m.periods = append(m.periods, periods...)
	m.coaches = append(m.coaches, coaches...)
	m.metrics = append(m.metrics, metrics...)
	for i := range m.metrics {
		m.metrics[i].Period = nil
		m.metrics[i].Coach = nil
	}
	return m, nil
}

func (m *Memory) ListPeriods() ([]models.BiWeeklyPeriod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.BiWeeklyPeriod(nil), m.periods...), nil
}

func (m *Memory) ListCoaches() ([]models.Coach, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Coach, len(m.coaches))
	for i, c := range m.coaches {
		out[i] = copyCoach(c)
	}
	return out, nil
}

func (m *Memory) ListMetrics(periodID *uuid.UUID) ([]models.SafetyMetric, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.SafetyMetric
	for _, metric := range m.metrics {
		if periodID != nil && metric.PeriodID != *periodID {
			continue
		}
		out = append(out, copyMetric(metric))
	}
	return out, nil
}

func (m *Memory) GetPeriod(id uuid.UUID) (*models.BiWeeklyPeriod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.periodIndex(id)
	if i < 0 {
		return nil, apperrors.ErrPeriodNotFound
	}
	p := m.periods[i]
	return &p, nil
}

func (m *Memory) GetCoach(id uuid.UUID) (*models.Coach, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.coachIndex(id)
	if i < 0 {
		return nil, apperrors.ErrCoachNotFound
	}
	c := copyCoach(m.coaches[i])
	return &c, nil
}

func (m *Memory) FindMetric(periodID, coachID uuid.UUID) (*models.SafetyMetric, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, metric := range m.metrics {
		if metric.PeriodID == periodID && metric.CoachID == coachID {
			c := copyMetric(metric)
			return &c, nil
		}
	}
	return nil, apperrors.ErrMetricNotFound
}

func (m *Memory) FindPeriodByRange(start, end time.Time) (*models.BiWeeklyPeriod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.periods {
		if p.SameRange(start, end) {
			return &p, nil
		}
	}
	return nil, apperrors.ErrPeriodNotFound
}

func (m *Memory) FindOverlappingPeriods(start, end time.Time, excludeID *uuid.UUID) ([]models.BiWeeklyPeriod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.BiWeeklyPeriod
	for _, p := range m.periods {
		if excludeID != nil && p.ID == *excludeID {
			continue
		}
		if p.Overlaps(start, end) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b models.BiWeeklyPeriod) int {
		return a.StartDate.Compare(b.StartDate)
	})
	return out, nil
}

func (m *Memory) FindCoachByKey(key string) (*models.Coach, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.coaches {
		if c.NameKey == key {
			found := copyCoach(c)
			return &found, nil
		}
	}
	return nil, apperrors.ErrCoachNotFound
}

func (m *Memory) UpsertPeriod(period *models.BiWeeklyPeriod) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.periods {
		if p.ID != period.ID && p.SameRange(period.StartDate, period.EndDate) {
			return apperrors.ErrPeriodExists
		}
	}

	if period.IsNew() {
		m.stampNew(&period.BaseModel)
		m.periods = append(m.periods, *period)
		return nil
	}

	i := m.periodIndex(period.ID)
	if i < 0 {
		return apperrors.ErrPeriodNotFound
	}
	m.stampUpdate(&period.BaseModel, m.periods[i].BaseModel)
	m.periods[i] = *period
	return nil
}

func (m *Memory) UpsertCoach(coach *models.Coach) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.coaches {
		if c.ID != coach.ID && c.NameKey == coach.NameKey {
			return apperrors.ErrCoachExists
		}
	}

	if coach.IsNew() {
		m.stampNew(&coach.BaseModel)
		m.coaches = append(m.coaches, copyCoach(*coach))
		return nil
	}

	i := m.coachIndex(coach.ID)
	if i < 0 {
		return apperrors.ErrCoachNotFound
	}
	m.stampUpdate(&coach.BaseModel, m.coaches[i].BaseModel)
	m.coaches[i] = copyCoach(*coach)
	return nil
}

func (m *Memory) UpsertMetric(metric *models.SafetyMetric) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.periodIndex(metric.PeriodID) < 0 || m.coachIndex(metric.CoachID) < 0 {
		return apperrors.NewValidationError("period_id", "period or coach does not exist")
	}

	key := metricKey{metric.PeriodID, metric.CoachID}
	for _, existing := range m.metrics {
		if existing.ID != metric.ID && (metricKey{existing.PeriodID, existing.CoachID}) == key {
			return apperrors.ErrDuplicateMetricKey
		}
	}

	if metric.IsNew() {
		m.stampNew(&metric.BaseModel)
		m.metrics = append(m.metrics, copyMetric(*metric))
		return nil
	}

	for i := range m.metrics {
		if m.metrics[i].ID == metric.ID {
			m.stampUpdate(&metric.BaseModel, m.metrics[i].BaseModel)
			m.metrics[i] = copyMetric(*metric)
			return nil
		}
	}
	return apperrors.ErrMetricNotFound
}

func (m *Memory) DeletePeriod(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.periodIndex(id)
	if i < 0 {
		return apperrors.ErrPeriodNotFound
	}
	for _, metric := range m.metrics {
		if metric.PeriodID == id {
			return apperrors.ErrPeriodInUse
		}
	}
	m.periods = append(m.periods[:i], m.periods[i+1:]...)
	return nil
}

// String summarises the store contents, handy in test failure output
func (m *Memory) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fmt.Sprintf("memory store: %d periods, %d coaches, %d metrics", len(m.periods), len(m.coaches), len(m.metrics))
}

func (m *Memory) periodIndex(id uuid.UUID) int {
	for i, p := range m.periods {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) coachIndex(id uuid.UUID) int {
	for i, c := range m.coaches {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) stampNew(base *models.BaseModel) {
	now := m.now()
	base.ID = uuid.New()
	base.CreatedAt = now
	base.UpdatedAt = now
}

func (m *Memory) stampUpdate(base *models.BaseModel, stored models.BaseModel) {
	base.CreatedAt = stored.CreatedAt
	if base.CreatedBy == "" {
		base.CreatedBy = stored.CreatedBy
	}
	base.UpdatedAt = m.now()
}

func copyCoach(c models.Coach) models.Coach {
	if c.HireDate != nil {
		hired := *c.HireDate
		c.HireDate = &hired
	}
	return c
}

func copyMetric(metric models.SafetyMetric) models.SafetyMetric {
	metric.HRPartnershipMeeting = copyString(metric.HRPartnershipMeeting)
	metric.WHSPartnershipMeeting = copyString(metric.WHSPartnershipMeeting)
	metric.LMSReportDate = copyString(metric.LMSReportDate)
	metric.TBTAttendanceReportDate = copyString(metric.TBTAttendanceReportDate)
	metric.Period = nil
	metric.Coach = nil
	return metric
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*DatabaseStore)(nil)
)

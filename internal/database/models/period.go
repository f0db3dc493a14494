package models

import "time"

// BiWeeklyPeriod is a named date range over which safety metrics are tracked.
// Ranges are half-open: a period ending on the day another starts does not overlap it.
type BiWeeklyPeriod struct {
	BaseModel
	StartDate   time.Time `json:"start_date" gorm:"type:date;not null;uniqueIndex:idx_periods_range" validate:"required"`
	EndDate     time.Time `json:"end_date" gorm:"type:date;not null;uniqueIndex:idx_periods_range" validate:"required"`
	DisplayName string    `json:"display_name" gorm:"size:100" validate:"max=100"`
}

// TableName returns the table name for BiWeeklyPeriod
func (BiWeeklyPeriod) TableName() string {
	return "biweekly_periods"
}

// SameRange reports whether both periods cover exactly the same dates
func (p *BiWeeklyPeriod) SameRange(start, end time.Time) bool {
	return p.StartDate.Equal(start) && p.EndDate.Equal(end)
}

// Overlaps reports whether [start, end) shares any day with the period
func (p *BiWeeklyPeriod) Overlaps(start, end time.Time) bool {
	return start.Before(p.EndDate) && p.StartDate.Before(end)
}

package models

// EntityKind names the three record kinds handled by the store
type EntityKind string

const (
	EntityPeriod EntityKind = "period"
	EntityCoach  EntityKind = "coach"
	EntityMetric EntityKind = "metric"
)

// IsValid checks if the EntityKind is valid
func (k EntityKind) IsValid() bool {
	switch k {
	case EntityPeriod, EntityCoach, EntityMetric:
		return true
	}
	return false
}

// DateLayout is the storage format of date-or-status fields holding a date
const DateLayout = "2006-01-02"

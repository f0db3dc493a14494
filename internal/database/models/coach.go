package models

import "time"

// Coach is a roster member tracked across periods
type Coach struct {
	BaseModel
	Name                  string     `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	NameKey               string     `json:"-" gorm:"size:200;not null;uniqueIndex:idx_coaches_name_key"`
	HireDate              *time.Time `json:"hire_date,omitempty" gorm:"type:date"`
	VacationDaysRemaining int        `json:"vacation_days_remaining" gorm:"not null;default:0" validate:"min=0"`
	VacationDaysTotal     int        `json:"vacation_days_total" gorm:"not null;default:0" validate:"min=0,gtefield=VacationDaysRemaining"`
	// BalancesConfirmed is set once a person has entered the balances, so a real
	// zero is not mistaken for a legacy blank on a later import.
	BalancesConfirmed bool `json:"balances_confirmed" gorm:"not null;default:false"`
}

// TableName returns the table name for Coach
func (Coach) TableName() string {
	return "coaches"
}

// BalancesUnset reports whether the vacation balances may still be backfilled by an import
func (c *Coach) BalancesUnset() bool {
	return !c.BalancesConfirmed && c.VacationDaysTotal == 0
}

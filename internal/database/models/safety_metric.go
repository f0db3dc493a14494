package models

import "github.com/google/uuid"

// SafetyMetric is the compliance record of one coach within one period.
// (PeriodID, CoachID) is unique.
type SafetyMetric struct {
	BaseModel
	PeriodID         uuid.UUID `json:"period_id" gorm:"type:uuid;not null;uniqueIndex:idx_metrics_period_coach,priority:1" validate:"required"`
	CoachID          uuid.UUID `json:"coach_id" gorm:"type:uuid;not null;uniqueIndex:idx_metrics_period_coach,priority:2;index" validate:"required"`
	TravelPlans      string    `json:"travel_plans" gorm:"type:text"`
	TrainingLocation string    `json:"training_location" gorm:"type:text"`

	SiteSafetyEvaluations      int `json:"site_safety_evaluations" gorm:"not null;default:0" validate:"min=0"`
	ForensicSurveyAudits       int `json:"forensic_survey_audits" gorm:"not null;default:0" validate:"min=0"`
	WarehouseSafetyAudits      int `json:"warehouse_safety_audits" gorm:"not null;default:0" validate:"min=0"`
	OpenInvestigationsInjuries int `json:"open_investigations_injuries" gorm:"not null;default:0" validate:"min=0"`
	OpenInvestigationsAuto     int `json:"open_investigations_auto" gorm:"not null;default:0" validate:"min=0"`
	OpenInvestigationsProperty int `json:"open_investigations_property_damage" gorm:"not null;default:0" validate:"min=0"`
	OpenInvestigationsNearMiss int `json:"open_investigations_near_miss" gorm:"not null;default:0" validate:"min=0"`

	// Date-or-status fields hold a YYYY-MM-DD date or a short status such as "N/A"
	HRPartnershipMeeting    *string `json:"hr_partnership_meeting,omitempty" gorm:"size:50"`
	WHSPartnershipMeeting   *string `json:"whs_partnership_meeting,omitempty" gorm:"size:50"`
	LMSReportDate           *string `json:"lms_report_date,omitempty" gorm:"size:50"`
	TBTAttendanceReportDate *string `json:"tbt_attendance_report_date,omitempty" gorm:"size:50"`

	Notes string `json:"notes" gorm:"type:text"`

	// Relationships
	Period *BiWeeklyPeriod `json:"period,omitempty" gorm:"foreignKey:PeriodID;constraint:OnDelete:RESTRICT"`
	Coach  *Coach          `json:"coach,omitempty" gorm:"foreignKey:CoachID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for SafetyMetric
func (SafetyMetric) TableName() string {
	return "safety_metrics"
}

// Counts returns the count fields in a fixed order
func (m *SafetyMetric) Counts() []int {
	return []int{
		m.SiteSafetyEvaluations,
		m.ForensicSurveyAudits,
		m.WarehouseSafetyAudits,
		m.OpenInvestigationsInjuries,
		m.OpenInvestigationsAuto,
		m.OpenInvestigationsProperty,
		m.OpenInvestigationsNearMiss,
	}
}

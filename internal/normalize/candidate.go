package normalize

import (
	"time"

	"safety-tracker-backend/internal/database/models"
)

// Source locates a candidate in the workbook; Row is 1-based as shown in a spreadsheet
type Source struct {
	Sheet string `json:"sheet" yaml:"sheet"`
	Row   int    `json:"row" yaml:"row"`
}

// Candidate is a typed record produced from one sheet row
type Candidate interface {
	Kind() models.EntityKind
	Origin() Source
}

// PeriodCandidate is a period row. StartDate is before EndDate.
type PeriodCandidate struct {
	Source
	StartDate   time.Time
	EndDate     time.Time
	DisplayName string
}

func (p *PeriodCandidate) Kind() models.EntityKind { return models.EntityPeriod }
func (p *PeriodCandidate) Origin() Source           { return p.Source }

// CoachCandidate is a coach row, or a coach first seen on a metric sheet
type CoachCandidate struct {
	Source
	Name              string
	Key               string
	HireDate          Field[time.Time]
	VacationRemaining Field[int]
	VacationTotal     Field[int]
}

func (c *CoachCandidate) Kind() models.EntityKind { return models.EntityCoach }
func (c *CoachCandidate) Origin() Source           { return c.Source }

// HasBalances reports whether the row came from a sheet with balance columns.
// Only then may an import initialise a coach's vacation balances.
func (c *CoachCandidate) HasBalances() bool {
	return c.VacationRemaining.Present || c.VacationTotal.Present
}

// Balances returns (remaining, total); a missing total equals the remaining days
func (c *CoachCandidate) Balances() (int, int) {
	remaining := c.VacationRemaining.Or(0)
	if !c.VacationTotal.Set {
		return remaining, remaining
	}
	return remaining, c.VacationTotal.Value
}

// PeriodRef identifies the period a metric row belongs to: by explicit dates
// when the row has them, otherwise by name (a period column or the sheet name).
type PeriodRef struct {
	HasDates  bool
	StartDate time.Time
	EndDate   time.Time
	Name      string
}

// MetricCandidate is one coach's row on a per-period metric sheet
type MetricCandidate struct {
	Source
	CoachName string
	CoachKey  string
	Period    PeriodRef

	TravelPlans      Field[string]
	TrainingLocation Field[string]

	SiteSafetyEvaluations      Field[int]
	ForensicSurveyAudits       Field[int]
	WarehouseSafetyAudits      Field[int]
	OpenInvestigationsInjuries Field[int]
	OpenInvestigationsAuto     Field[int]
	OpenInvestigationsProperty Field[int]
	OpenInvestigationsNearMiss Field[int]

	HRPartnershipMeeting    Field[string]
	WHSPartnershipMeeting   Field[string]
	LMSReportDate           Field[string]
	TBTAttendanceReportDate Field[string]

	Notes Field[string]
}

func (m *MetricCandidate) Kind() models.EntityKind { return models.EntityMetric }
func (m *MetricCandidate) Origin() Source           { return m.Source }

// Merge folds a later row for the same (period, coach) into m. Non-blank
// cells of the later row win; blanks keep the earlier value.
func (m *MetricCandidate) Merge(later *MetricCandidate) {
	m.TravelPlans = m.TravelPlans.Merge(later.TravelPlans)
	m.TrainingLocation = m.TrainingLocation.Merge(later.TrainingLocation)
	m.SiteSafetyEvaluations = m.SiteSafetyEvaluations.Merge(later.SiteSafetyEvaluations)
	m.ForensicSurveyAudits = m.ForensicSurveyAudits.Merge(later.ForensicSurveyAudits)
	m.WarehouseSafetyAudits = m.WarehouseSafetyAudits.Merge(later.WarehouseSafetyAudits)
	m.OpenInvestigationsInjuries = m.OpenInvestigationsInjuries.Merge(later.OpenInvestigationsInjuries)
	m.OpenInvestigationsAuto = m.OpenInvestigationsAuto.Merge(later.OpenInvestigationsAuto)
	m.OpenInvestigationsProperty = m.OpenInvestigationsProperty.Merge(later.OpenInvestigationsProperty)
	m.OpenInvestigationsNearMiss = m.OpenInvestigationsNearMiss.Merge(later.OpenInvestigationsNearMiss)
	m.HRPartnershipMeeting = m.HRPartnershipMeeting.Merge(later.HRPartnershipMeeting)
	m.WHSPartnershipMeeting = m.WHSPartnershipMeeting.Merge(later.WHSPartnershipMeeting)
	m.LMSReportDate = m.LMSReportDate.Merge(later.LMSReportDate)
	m.TBTAttendanceReportDate = m.TBTAttendanceReportDate.Merge(later.TBTAttendanceReportDate)
	m.Notes = m.Notes.Merge(later.Notes)
}

// ApplyTo writes the candidate's present fields onto a stored metric.
// Absent columns leave the stored value alone; blank cells clear it.
func (m *MetricCandidate) ApplyTo(metric *models.SafetyMetric) {
	applyText(&metric.TravelPlans, m.TravelPlans)
	applyText(&metric.TrainingLocation, m.TrainingLocation)

	applyCount(&metric.SiteSafetyEvaluations, m.SiteSafetyEvaluations)
	applyCount(&metric.ForensicSurveyAudits, m.ForensicSurveyAudits)
	applyCount(&metric.WarehouseSafetyAudits, m.WarehouseSafetyAudits)
	applyCount(&metric.OpenInvestigationsInjuries, m.OpenInvestigationsInjuries)
	applyCount(&metric.OpenInvestigationsAuto, m.OpenInvestigationsAuto)
	applyCount(&metric.OpenInvestigationsProperty, m.OpenInvestigationsProperty)
	applyCount(&metric.OpenInvestigationsNearMiss, m.OpenInvestigationsNearMiss)

	applyOptional(&metric.HRPartnershipMeeting, m.HRPartnershipMeeting)
	applyOptional(&metric.WHSPartnershipMeeting, m.WHSPartnershipMeeting)
	applyOptional(&metric.LMSReportDate, m.LMSReportDate)
	applyOptional(&metric.TBTAttendanceReportDate, m.TBTAttendanceReportDate)

	applyText(&metric.Notes, m.Notes)
}

func applyText(dst *string, f Field[string]) {
	if f.Present {
		*dst = f.Or("")
	}
}

func applyCount(dst *int, f Field[int]) {
	if f.Present {
		*dst = f.Or(0)
	}
}

func applyOptional(dst **string, f Field[string]) {
	if !f.Present {
		return
	}
	if !f.Set {
		*dst = nil
		return
	}
	v := f.Value
	*dst = &v
}

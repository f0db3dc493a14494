package normalize

import (
	"strings"
	"unicode"

	"safety-tracker-backend/internal/workbook"
)

// Role is the meaning of a sheet column
type Role string

const (
	RoleName              Role = "name"
	RoleStartDate         Role = "start_date"
	RoleEndDate           Role = "end_date"
	RolePeriodName        Role = "period_name"
	RoleHireDate          Role = "hire_date"
	RoleVacationRemaining Role = "vacation_days_remaining"
	RoleVacationTotal     Role = "vacation_days_total"
	RoleTravelPlans       Role = "travel_plans"
	RoleTrainingLocation  Role = "training_location"
	RoleSiteEvaluations   Role = "site_safety_evaluations"
	RoleForensicAudits    Role = "forensic_survey_audits"
	RoleWarehouseAudits   Role = "warehouse_safety_audits"
	RoleInjuries          Role = "open_investigations_injuries"
	RoleAuto              Role = "open_investigations_auto"
	RolePropertyDamage    Role = "open_investigations_property"
	RoleNearMiss          Role = "open_investigations_near_miss"
	RoleHRMeeting         Role = "hr_partnership_meeting"
	RoleWHSMeeting        Role = "whs_partnership_meeting"
	RoleLMSReport         Role = "lms_report_date"
	RoleTBTAttendance     Role = "tbt_attendance_report_date"
	RoleNotes             Role = "notes"
)

type term struct {
	role    Role
	aliases []string
}

var (
	startDateTerm = term{RoleStartDate, []string{"start date", "start", "period start", "from", "begin date"}}
	endDateTerm   = term{RoleEndDate, []string{"end date", "end", "period end", "to", "through"}}
)

// vocabularies lists the recognised headers per sheet kind
var vocabularies = map[SheetKind][]term{
	SheetPeriods: {
		startDateTerm,
		endDateTerm,
		{RolePeriodName, []string{"name", "period", "period name", "display name", "label"}},
	},
	SheetCoaches: {
		{RoleName, []string{"name", "coach", "coach name", "full name"}},
		{RoleHireDate, []string{"hire date", "date of hire", "hired", "date hired"}},
		{RoleVacationRemaining, []string{"vacation days remaining", "vacation remaining", "remaining vacation", "days remaining", "remaining"}},
		{RoleVacationTotal, []string{"vacation days total", "total vacation days", "vacation total", "total vacation", "vacation days", "days total", "total"}},
	},
	SheetMetrics: {
		{RoleName, []string{"coach", "coach name", "name"}},
		startDateTerm,
		endDateTerm,
		{RolePeriodName, []string{"period", "period name"}},
		{RoleTravelPlans, []string{"travel plans", "travel plan", "travel"}},
		{RoleTrainingLocation, []string{"training location", "branch location", "training branch location", "location", "branch"}},
		{RoleSiteEvaluations, []string{"site safety evaluations", "site evaluations", "site safety evals", "site evals"}},
		{RoleForensicAudits, []string{"forensic survey audits", "forensic audits", "forensic"}},
		{RoleWarehouseAudits, []string{"warehouse safety audits", "warehouse audits", "warehouse"}},
		{RoleInjuries, []string{"open investigations injuries", "injuries", "injury"}},
		{RoleAuto, []string{"open investigations auto", "auto", "vehicle"}},
		{RolePropertyDamage, []string{"open investigations property damage", "property damage", "property"}},
		{RoleNearMiss, []string{"open investigations near miss", "near miss", "near misses"}},
		{RoleHRMeeting, []string{"hr partnership meeting", "hr partnership", "hr meeting"}},
		{RoleWHSMeeting, []string{"whs partnership meeting", "whs partnership", "whs meeting"}},
		{RoleLMSReport, []string{"lms report date", "lms report", "lms"}},
		{RoleTBTAttendance, []string{"tbt attendance report date", "tbt attendance report", "tbt attendance", "tbt"}},
		{RoleNotes, []string{"notes", "note", "comments", "comment", "remarks"}},
	},
}

// Header is the resolved column layout of one sheet
type Header struct {
	Kind       SheetKind
	Row        int
	Columns    map[Role]int
	Unresolved []string
}

// ResolveHeader matches each header cell against the sheet kind's vocabulary.
// Each role is bound to the first column that resolves to it; unmatched
// columns are kept in Unresolved and otherwise ignored.
func ResolveHeader(kind SheetKind, rowNumber int, row workbook.Row) Header {
	header := Header{Kind: kind, Row: rowNumber, Columns: make(map[Role]int)}
	terms := vocabularies[kind]

	for i, cell := range row {
		text := cell.String()
		if text == "" {
			continue
		}
		role, ok := matchRole(terms, text)
		if !ok {
			header.Unresolved = append(header.Unresolved, text)
			continue
		}
		if _, bound := header.Columns[role]; !bound {
			header.Columns[role] = i
		}
	}
	return header
}

// Has reports whether the sheet has a column for role
func (h Header) Has(role Role) bool {
	_, ok := h.Columns[role]
	return ok
}

// Cell returns the row's cell for role and whether the column exists
func (h Header) Cell(row workbook.Row, role Role) (workbook.Cell, bool) {
	i, ok := h.Columns[role]
	if !ok {
		return workbook.Cell{}, false
	}
	return row.At(i), true
}

// matchRole picks the role whose alias best fits the header text. An exact
// alias beats any containment; otherwise the alias with most tokens wins.
// Single-word aliases such as "to" or "end" only ever match exactly.
func matchRole(terms []term, text string) (Role, bool) {
	headerTokens := tokenize(text)
	if len(headerTokens) == 0 {
		return "", false
	}
	joined := strings.Join(headerTokens, " ")

	var (
		best      Role
		bestScore int
	)
	for _, t := range terms {
		for _, alias := range t.aliases {
			aliasTokens := tokenize(alias)
			score := 0
			if strings.Join(aliasTokens, " ") == joined {
				score = 100 + len(aliasTokens)
			} else if len(aliasTokens) > 1 && containsAll(headerTokens, aliasTokens) {
				score = len(aliasTokens)
			}
			if score > bestScore {
				best, bestScore = t.role, score
			}
		}
	}
	return best, bestScore > 0
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsAll(haystack, needles []string) bool {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if h == n {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Package normalize turns raw workbook rows into typed period, coach and
// metric candidates. Every function here is pure; anomalies come back as
// diagnostics rather than errors.
package normalize

import (
	"iter"
	"time"

	"safety-tracker-backend/internal/database/models"
	apperrors "safety-tracker-backend/internal/errors"
	"safety-tracker-backend/internal/workbook"
)

// Batch is everything normalized from one workbook, in workbook order.
// Diagnostics explain rows that were dropped; Notes flag rows that were
// still read, minus the offending value.
type Batch struct {
	Periods     []*PeriodCandidate
	Coaches     []*CoachCandidate
	Metrics     []*MetricCandidate
	Diagnostics []*apperrors.ImportIssue
	Notes       []*apperrors.ImportIssue
	Sheets      []SheetSummary
}

// SheetSummary records how a sheet was classified and read
type SheetSummary struct {
	Name       string    `json:"name" yaml:"name"`
	Kind       SheetKind `json:"-" yaml:"-"`
	KindName   string    `json:"kind" yaml:"kind"`
	Rows       int       `json:"rows" yaml:"rows"`
	Candidates int       `json:"candidates" yaml:"candidates"`
	Unresolved []string  `json:"unresolved_columns,omitempty" yaml:"unresolved_columns,omitempty"`
}

// Len returns the number of candidates in the batch
func (b *Batch) Len() int {
	return len(b.Periods) + len(b.Coaches) + len(b.Metrics)
}

// Normalize reads every sheet of the sequence once
func Normalize(mapping Mapping, sheets iter.Seq2[string, []workbook.Row]) *Batch {
	batch := &Batch{}
	for name, rows := range sheets {
		batch.AddSheet(mapping, name, rows)
	}
	return batch
}

// AddSheet normalizes one sheet into the batch
func (b *Batch) AddSheet(mapping Mapping, name string, rows []workbook.Row) {
	kind := mapping.KindOf(name)
	summary := SheetSummary{Name: name, Kind: kind, KindName: kind.String()}
	if kind == SheetIgnored {
		b.Sheets = append(b.Sheets, summary)
		return
	}

	candidates, issues, header := NormalizeSheet(kind, name, rows)
	summary.Rows = len(rows)
	summary.Candidates = len(candidates)
	if header != nil {
		summary.Unresolved = header.Unresolved
	}
	b.Sheets = append(b.Sheets, summary)

	read := make(map[int]bool, len(candidates))
	for _, c := range candidates {
		read[c.Origin().Row] = true
	}
	for _, issue := range issues {
		if read[issue.Row] {
			b.Notes = append(b.Notes, issue)
		} else {
			b.Diagnostics = append(b.Diagnostics, issue)
		}
	}

	for _, c := range candidates {
		switch v := c.(type) {
		case *PeriodCandidate:
			b.Periods = append(b.Periods, v)
		case *CoachCandidate:
			b.Coaches = append(b.Coaches, v)
		case *MetricCandidate:
			b.Metrics = append(b.Metrics, v)
		}
	}
}

// NormalizeSheet finds the header (the first non-blank row) and normalizes
// every following row. Blank rows are skipped silently. The returned header
// is nil for a sheet with no content.
func NormalizeSheet(kind SheetKind, sheet string, rows []workbook.Row) ([]Candidate, []*apperrors.ImportIssue, *Header) {
	headerIndex := -1
	for i, row := range rows {
		if !row.IsBlank() {
			headerIndex = i
			break
		}
	}
	if headerIndex < 0 {
		return nil, nil, nil
	}

	header := ResolveHeader(kind, headerIndex+1, rows[headerIndex])
	if issue := checkHeader(header, sheet); issue != nil {
		return nil, []*apperrors.ImportIssue{issue}, &header
	}

	var (
		candidates []Candidate
		issues     []*apperrors.ImportIssue
	)
	for i := headerIndex + 1; i < len(rows); i++ {
		if rows[i].IsBlank() {
			continue
		}
		candidate, issue := NormalizeRow(header, Source{Sheet: sheet, Row: i + 1}, rows[i])
		if issue != nil {
			issues = append(issues, issue)
		}
		if candidate != nil {
			candidates = append(candidates, candidate)
		}
	}
	return candidates, issues, &header
}

// checkHeader rejects a metric sheet that has no coach column: none of its rows
// could be attributed, so one sheet-level diagnostic replaces a flood of row ones.
func checkHeader(h Header, sheet string) *apperrors.ImportIssue {
	if h.Kind == SheetMetrics && !h.Has(RoleName) {
		return apperrors.NewImportIssue(apperrors.IssueMissingValue, string(models.EntityMetric), sheet, 0,
			"no coach column found in header row %d", h.Row)
	}
	return nil
}

// NormalizeRow turns one data row into at most one candidate.
// A row that cannot become a candidate returns a diagnostic instead. A row
// read with an optional value dropped returns both.
func NormalizeRow(h Header, src Source, row workbook.Row) (Candidate, *apperrors.ImportIssue) {
	switch h.Kind {
	case SheetPeriods:
		return normalizePeriod(h, src, row)
	case SheetCoaches:
		return normalizeCoach(h, src, row)
	case SheetMetrics:
		return normalizeMetric(h, src, row)
	default:
		return nil, nil
	}
}

func normalizePeriod(h Header, src Source, row workbook.Row) (Candidate, *apperrors.ImportIssue) {
	entity := string(models.EntityPeriod)

	start, issue := requiredDate(h, src, row, RoleStartDate, entity, "start date")
	if issue != nil {
		return nil, issue
	}
	end, issue := requiredDate(h, src, row, RoleEndDate, entity, "end date")
	if issue != nil {
		return nil, issue
	}
	if !start.Before(end) {
		return nil, apperrors.NewImportIssue(apperrors.IssueInvalidDate, entity, src.Sheet, src.Row,
			"start date %s is not before end date %s", start.Format(models.DateLayout), end.Format(models.DateLayout))
	}

	name := ""
	if c, ok := h.Cell(row, RolePeriodName); ok {
		name = CleanName(c.String())
	}
	return &PeriodCandidate{Source: src, StartDate: start, EndDate: end, DisplayName: name}, nil
}

func requiredDate(h Header, src Source, row workbook.Row, role Role, entity, label string) (time.Time, *apperrors.ImportIssue) {
	c, ok := h.Cell(row, role)
	if !ok {
		return time.Time{}, apperrors.NewImportIssue(apperrors.IssueInvalidDate, entity, src.Sheet, src.Row,
			"no %s column", label)
	}
	date, blank, err := ParseDate(c)
	if blank {
		return time.Time{}, apperrors.NewImportIssue(apperrors.IssueInvalidDate, entity, src.Sheet, src.Row,
			"%s is blank", label)
	}
	if err != nil {
		return time.Time{}, apperrors.NewImportIssue(apperrors.IssueInvalidDate, entity, src.Sheet, src.Row,
			"%s: %v", label, err)
	}
	return date, nil
}

func normalizeCoach(h Header, src Source, row workbook.Row) (Candidate, *apperrors.ImportIssue) {
	entity := string(models.EntityCoach)

	name := ""
	if c, ok := h.Cell(row, RoleName); ok {
		name = CleanName(c.String())
	}
	if name == "" {
		return nil, apperrors.NewImportIssue(apperrors.IssueMissingValue, entity, src.Sheet, src.Row, "coach name is blank")
	}

	candidate := &CoachCandidate{Source: src, Name: name, Key: NameKey(name)}

	// Hire date is nullable, an unreadable one is kept as unknown and flagged
	var hireIssue *apperrors.ImportIssue
	if c, ok := h.Cell(row, RoleHireDate); ok {
		date, blank, err := ParseDate(c)
		switch {
		case blank:
			candidate.HireDate = Blank[time.Time]()
		case err != nil:
			candidate.HireDate = Blank[time.Time]()
			hireIssue = apperrors.NewImportIssue(apperrors.IssueInvalidDate, entity, src.Sheet, src.Row,
				"hire date %q is not a date, left unset", c.String())
		default:
			candidate.HireDate = Value(date)
		}
	}

	var issue *apperrors.ImportIssue
	if candidate.VacationRemaining, issue = countField(h, src, row, RoleVacationRemaining, entity, "vacation days remaining"); issue != nil {
		return nil, issue
	}
	if candidate.VacationTotal, issue = countField(h, src, row, RoleVacationTotal, entity, "vacation days total"); issue != nil {
		return nil, issue
	}

	if remaining, total := candidate.Balances(); remaining > total {
		return nil, apperrors.NewImportIssue(apperrors.IssueInvalidNumeric, entity, src.Sheet, src.Row,
			"vacation days remaining (%d) exceeds vacation days total (%d)", remaining, total)
	}
	return candidate, hireIssue
}

func normalizeMetric(h Header, src Source, row workbook.Row) (Candidate, *apperrors.ImportIssue) {
	entity := string(models.EntityMetric)

	name := ""
	if c, ok := h.Cell(row, RoleName); ok {
		name = CleanName(c.String())
	}
	if name == "" {
		return nil, apperrors.NewImportIssue(apperrors.IssueMissingValue, entity, src.Sheet, src.Row, "coach name is blank")
	}

	ref, issue := periodRef(h, src, row, entity)
	if issue != nil {
		return nil, issue
	}

	m := &MetricCandidate{
		Source:    src,
		CoachName: name,
		CoachKey:  NameKey(name),
		Period:    ref,

		TravelPlans:      textField(h, row, RoleTravelPlans),
		TrainingLocation: textField(h, row, RoleTrainingLocation),

		HRPartnershipMeeting:    statusField(h, row, RoleHRMeeting),
		WHSPartnershipMeeting:   statusField(h, row, RoleWHSMeeting),
		LMSReportDate:           statusField(h, row, RoleLMSReport),
		TBTAttendanceReportDate: statusField(h, row, RoleTBTAttendance),

		Notes: textField(h, row, RoleNotes),
	}

	counts := []struct {
		dst   *Field[int]
		role  Role
		label string
	}{
		{&m.SiteSafetyEvaluations, RoleSiteEvaluations, "site safety evaluations"},
		{&m.ForensicSurveyAudits, RoleForensicAudits, "forensic survey audits"},
		{&m.WarehouseSafetyAudits, RoleWarehouseAudits, "warehouse safety audits"},
		{&m.OpenInvestigationsInjuries, RoleInjuries, "open investigations (injuries)"},
		{&m.OpenInvestigationsAuto, RoleAuto, "open investigations (auto)"},
		{&m.OpenInvestigationsProperty, RolePropertyDamage, "open investigations (property damage)"},
		{&m.OpenInvestigationsNearMiss, RoleNearMiss, "open investigations (near miss)"},
	}
	for _, c := range counts {
		f, issue := countField(h, src, row, c.role, entity, c.label)
		if issue != nil {
			return nil, issue
		}
		*c.dst = f
	}
	return m, nil
}

// periodRef uses the row's own dates when it has them, then a period column,
// then falls back to the sheet name.
func periodRef(h Header, src Source, row workbook.Row, entity string) (PeriodRef, *apperrors.ImportIssue) {
	startCell, hasStart := h.Cell(row, RoleStartDate)
	endCell, hasEnd := h.Cell(row, RoleEndDate)
	if (hasStart && !startCell.IsEmpty()) || (hasEnd && !endCell.IsEmpty()) {
		start, issue := requiredDate(h, src, row, RoleStartDate, entity, "period start date")
		if issue != nil {
			return PeriodRef{}, issue
		}
		end, issue := requiredDate(h, src, row, RoleEndDate, entity, "period end date")
		if issue != nil {
			return PeriodRef{}, issue
		}
		return PeriodRef{HasDates: true, StartDate: start, EndDate: end}, nil
	}

	if c, ok := h.Cell(row, RolePeriodName); ok && !c.IsEmpty() {
		return PeriodRef{Name: CleanName(c.String())}, nil
	}
	return PeriodRef{Name: CleanName(src.Sheet)}, nil
}

func countField(h Header, src Source, row workbook.Row, role Role, entity, label string) (Field[int], *apperrors.ImportIssue) {
	c, ok := h.Cell(row, role)
	if !ok {
		return Absent[int](), nil
	}
	n, blank, err := ParseCount(c)
	if err != nil {
		return Field[int]{}, apperrors.NewImportIssue(apperrors.IssueInvalidNumeric, entity, src.Sheet, src.Row,
			"%s: %v", label, err)
	}
	if blank {
		return Blank[int](), nil
	}
	return Value(n), nil
}

func textField(h Header, row workbook.Row, role Role) Field[string] {
	c, ok := h.Cell(row, role)
	if !ok {
		return Absent[string]()
	}
	if c.IsEmpty() {
		return Blank[string]()
	}
	return Value(c.String())
}

func statusField(h Header, row workbook.Row, role Role) Field[string] {
	c, ok := h.Cell(row, role)
	if !ok {
		return Absent[string]()
	}
	value, ok := ParseDateOrStatus(c)
	if !ok {
		return Blank[string]()
	}
	return Value(value)
}

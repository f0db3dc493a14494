package normalize

import "strings"

// SheetKind is the record kind a sheet holds
type SheetKind int

const (
	SheetIgnored SheetKind = iota
	SheetPeriods
	SheetCoaches
	SheetMetrics
)

func (k SheetKind) String() string {
	switch k {
	case SheetPeriods:
		return "periods"
	case SheetCoaches:
		return "coaches"
	case SheetMetrics:
		return "metrics"
	default:
		return "ignored"
	}
}

// Mapping assigns record kinds to sheets by name. Every sheet that is not the
// periods sheet, the coaches sheet or ignored holds metrics for one period.
type Mapping struct {
	PeriodsSheet string
	CoachesSheet string
	Ignored      []string
}

// DefaultMapping matches the legacy workbook layout
func DefaultMapping() Mapping {
	return Mapping{PeriodsSheet: "Periods", CoachesSheet: "Coaches"}
}

// KindOf classifies a sheet name
func (m Mapping) KindOf(sheet string) SheetKind {
	name := foldText(sheet)
	switch {
	case name == "":
		return SheetIgnored
	case name == foldText(m.PeriodsSheet):
		return SheetPeriods
	case name == foldText(m.CoachesSheet):
		return SheetCoaches
	}
	for _, ignored := range m.Ignored {
		if name == foldText(ignored) {
			return SheetIgnored
		}
	}
	return SheetMetrics
}

// foldText lowercases and collapses runs of whitespace
func foldText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

package testutils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a generated workbook; the first row is the header
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// XLSX builds an .xlsx workbook in memory
func XLSX(t *testing.T, sheets ...Sheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.Name))
		} else {
			_, err := f.NewSheet(sheet.Name)
			require.NoError(t, err)
		}
		for r, row := range sheet.Rows {
			values := row
			require.NoError(t, f.SetSheetRow(sheet.Name, fmt.Sprintf("A%d", r+1), &values))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// LegacyWorkbook is a small workbook in the legacy layout: two periods, two
// coaches and one metrics sheet per period
func LegacyWorkbook(t *testing.T) []byte {
	t.Helper()

	return XLSX(t,
		Sheet{Name: "Periods", Rows: [][]interface{}{
			{"Start Date", "End Date", "Name"},
			{"2024-01-01", "2024-01-15", "Jan 1-14"},
			{"2024-01-15", "2024-01-29", "Jan 15-28"},
		}},
		Sheet{Name: "Coaches", Rows: [][]interface{}{
			{"Name", "Hire Date", "Vacation Days Remaining", "Vacation Days Total"},
			{"Jane Doe", "2020-03-01", 8, 15},
			{"John Roe", "", 5, 10},
		}},
		Sheet{Name: "Jan 1-14", Rows: [][]interface{}{
			{"Coach", "Site Safety Evaluations", "Open Investigations Injuries", "Notes"},
			{"Jane Doe", 3, 1, "On track"},
			{"John Roe", 2, 0, ""},
		}},
		Sheet{Name: "Jan 15-28", Rows: [][]interface{}{
			{"Coach", "Site Safety Evaluations", "Open Investigations Injuries", "Notes"},
			{"Jane Doe", 4, 0, "Audit pending"},
		}},
	)
}

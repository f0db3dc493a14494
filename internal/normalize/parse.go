package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"safety-tracker-backend/internal/database/models"
	"safety-tracker-backend/internal/workbook"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// textDateLayouts are tried in order for dates typed as text
var textDateLayouts = []string{
	models.DateLayout,
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"01/02/06",
	"1/2/06",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"02-Jan-06",
	"2-Jan-06",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// maxExcelSerial is 9999-12-31
const maxExcelSerial = 2958465

// ParseDate reads a date from a cell holding either an Excel serial number
// or text in a common layout. blank is true for an empty cell.
func ParseDate(c workbook.Cell) (date time.Time, blank bool, err error) {
	switch c.Kind {
	case workbook.CellEmpty:
		return time.Time{}, true, nil
	case workbook.CellNumber:
		if c.Number < 1 || c.Number > maxExcelSerial {
			return time.Time{}, false, fmt.Errorf("%v is outside the spreadsheet date range", c.Number)
		}
		t, err := excelize.ExcelDateToTime(c.Number, false)
		if err != nil {
			return time.Time{}, false, err
		}
		return dateOnly(t), false, nil
	}

	text := strings.TrimSpace(c.Text)
	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return dateOnly(t), false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%q is not a recognised date", text)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseCount reads a non-negative whole number. Blank cells count as zero.
func ParseCount(c workbook.Cell) (n int, blank bool, err error) {
	var value float64
	switch c.Kind {
	case workbook.CellEmpty:
		return 0, true, nil
	case workbook.CellNumber:
		value = c.Number
	default:
		text := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", "")
		value, err = strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%q is not a number", strings.TrimSpace(c.Text))
		}
	}

	if value < 0 {
		return 0, false, fmt.Errorf("%v is negative", value)
	}
	if value != math.Trunc(value) {
		return 0, false, fmt.Errorf("%v is not a whole number", value)
	}
	if value > math.MaxInt32 {
		return 0, false, fmt.Errorf("%v is too large", value)
	}
	return int(value), false, nil
}

// ParseDateOrStatus keeps a date as YYYY-MM-DD and anything else as the
// trimmed status text. ok is false for a blank cell.
func ParseDateOrStatus(c workbook.Cell) (string, bool) {
	if c.IsEmpty() {
		return "", false
	}
	if date, _, err := ParseDate(c); err == nil {
		return date.Format(models.DateLayout), true
	}
	return c.String(), true
}

// CleanName trims a display name and collapses inner whitespace
func CleanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NameKey folds a coach name for comparison: accents removed, lower case,
// whitespace collapsed. "  José  Smith" and "jose smith" share a key.
func NameKey(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

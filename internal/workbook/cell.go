package workbook

import (
	"strconv"
	"strings"
)

// CellKind tells what the source format encoded in a cell
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	default:
		return "empty"
	}
}

// Cell is a raw cell value with no interpretation beyond the source encoding.
// Native spreadsheet dates arrive as numbers (Excel serial days).
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Row is one sheet row, ordered by column
type Row []Cell

// TextCell builds a text cell, or an empty one for blank input
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

// NumberCell builds a numeric cell
func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n, Text: strconv.FormatFloat(n, 'f', -1, 64)}
}

// rawCell classifies the raw string a reader produced
func rawCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Number: n, Text: trimmed}
	}
	return Cell{Kind: CellText, Text: raw}
}

// IsEmpty reports whether the cell holds nothing
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String returns the trimmed textual form of the cell
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		if c.Text != "" {
			return c.Text
		}
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return strings.TrimSpace(c.Text)
	default:
		return ""
	}
}

// At returns the cell at index i, or an empty cell past the end of the row
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{}
	}
	return r[i]
}

// IsBlank reports whether every cell in the row is empty
func (r Row) IsBlank() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Package workbook reads legacy spreadsheet workbooks into raw rows.
package workbook

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"

	apperrors "safety-tracker-backend/internal/errors"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// sheetReader is the per-format backend of a Workbook
type sheetReader interface {
	names() []string
	rows(name string) ([]Row, error)
	close() error
}

// Workbook is an opened legacy workbook
type Workbook struct {
	source string
	reader sheetReader

	mu       sync.Mutex
	consumed bool
	err      error
}

// Open opens the workbook at path. The format is chosen by extension.
func Open(path string) (*Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewWorkbookError(filepath.Base(path), err)
	}
	defer f.Close()

	return OpenReader(f, filepath.Base(path))
}

// OpenReader reads a whole workbook from r. filename is used for format
// detection and error messages.
func OpenReader(r io.Reader, filename string) (*Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewWorkbookError(filename, err)
	}
	if len(data) == 0 {
		return nil, apperrors.NewWorkbookError(filename, fmt.Errorf("file is empty"))
	}

	var reader sheetReader
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		reader, err = openXLS(data)
	default:
		reader, err = openXLSX(data)
	}
	if err != nil {
		return nil, apperrors.NewWorkbookError(filename, err)
	}

	return &Workbook{source: filename, reader: reader}, nil
}

// Source returns the file name the workbook was opened from
func (w *Workbook) Source() string {
	return w.source
}

// SheetNames lists sheets in workbook order
func (w *Workbook) SheetNames() []string {
	return w.reader.names()
}

// Sheets yields (sheet name, rows) pairs in workbook order. The sequence is
// lazy and can be consumed once; ranging over it again yields nothing.
// A read failure stops the sequence and is reported by Err.
func (w *Workbook) Sheets() iter.Seq2[string, []Row] {
	return func(yield func(string, []Row) bool) {
		w.mu.Lock()
		if w.consumed {
			w.mu.Unlock()
			return
		}
		w.consumed = true
		w.mu.Unlock()

		for _, name := range w.reader.names() {
			rows, err := w.reader.rows(name)
			if err != nil {
				w.setErr(apperrors.NewWorkbookError(w.source, fmt.Errorf("sheet %q: %w", name, err)))
				return
			}
			if !yield(name, rows) {
				return
			}
		}
	}
}

// Rows returns the rows of one sheet. A missing sheet yields no rows.
func (w *Workbook) Rows(name string) ([]Row, error) {
	resolved, ok := w.lookup(name)
	if !ok {
		return nil, nil
	}
	rows, err := w.reader.rows(resolved)
	if err != nil {
		return nil, apperrors.NewWorkbookError(w.source, fmt.Errorf("sheet %q: %w", resolved, err))
	}
	return rows, nil
}

// Err returns the failure that ended iteration early, if any
func (w *Workbook) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Close releases the underlying reader
func (w *Workbook) Close() error {
	return w.reader.close()
}

func (w *Workbook) setErr(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.err = err
}

func (w *Workbook) lookup(name string) (string, bool) {
	names := w.reader.names()
	for _, n := range names {
		if n == name {
			return n, true
		}
	}
	want := strings.TrimSpace(name)
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), want) {
			return n, true
		}
	}
	return "", false
}

// xlsxReader reads Office Open XML workbooks
type xlsxReader struct {
	file *excelize.File
}

func openXLSX(data []byte) (*xlsxReader, error) {
	// Raw values keep native dates as serial numbers instead of display strings
	file, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return &xlsxReader{file: file}, nil
}

func (x *xlsxReader) names() []string {
	return x.file.GetSheetList()
}

func (x *xlsxReader) rows(name string) ([]Row, error) {
	iterator, err := x.file.Rows(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = iterator.Close() }()

	var out []Row
	for iterator.Next() {
		columns, err := iterator.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}
		row := make(Row, len(columns))
		for i, raw := range columns {
			row[i] = rawCell(raw)
		}
		out = append(out, row)
	}
	if err := iterator.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

func (x *xlsxReader) close() error {
	return x.file.Close()
}

// xlsReader reads legacy BIFF workbooks
type xlsReader struct {
	book  *xls.WorkBook
	index map[string]int
	order []string
}

func openXLS(data []byte) (*xlsReader, error) {
	book, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if book.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}

	reader := &xlsReader{book: book, index: make(map[string]int)}
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}
		reader.index[sheet.Name] = i
		reader.order = append(reader.order, sheet.Name)
	}
	return reader, nil
}

func (x *xlsReader) names() []string {
	return append([]string(nil), x.order...)
}

func (x *xlsReader) rows(name string) ([]Row, error) {
	i, ok := x.index[name]
	if !ok {
		return nil, nil
	}
	sheet := x.book.GetSheet(i)
	if sheet == nil {
		return nil, nil
	}

	out := make([]Row, 0, int(sheet.MaxRow)+1)
	for r := 0; r <= int(sheet.MaxRow); r++ {
		source := sheet.Row(r)
		if source == nil {
			out = append(out, Row{})
			continue
		}
		row := make(Row, 0, source.LastCol())
		for c := 0; c < source.LastCol(); c++ {
			row = append(row, rawCell(source.Col(c)))
		}
		out = append(out, row)
	}
	return out, nil
}

func (x *xlsReader) close() error {
	return nil
}

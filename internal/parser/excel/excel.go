// Package excel reads an ERP extract exported as a workbook (.xlsx) into the
// same parser.Table shape as the CSV reader. Only the first sheet is read:
// the ERP exports one entity per file regardless of format.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"erpload/internal/parser"
)

// Options configures the Excel table reader.
type Options struct {
	// ExpectedFields, when > 0, is the required header width.
	ExpectedFields int
}

// Reader reads workbook tables according to Options.
type Reader struct{ opt Options }

// NewReader constructs a Reader with the provided Options.
func NewReader(opt Options) *Reader { return &Reader{opt: opt} }

// Read opens the workbook, takes the first sheet, and returns its header row
// plus data rows padded to the header width.
func (p *Reader) Read(r io.Reader) (*parser.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	header := all[0]
	if p.opt.ExpectedFields > 0 && len(header) != p.opt.ExpectedFields {
		return nil, fmt.Errorf("sheet header has %d columns, expected %d", len(header), p.opt.ExpectedFields)
	}

	width := len(header)
	rows := make([][]string, 0, len(all)-1)
	for _, rec := range all[1:] {
		row := make([]string, width)
		copy(row, rec)
		rows = append(rows, row)
	}

	return &parser.Table{Header: header, Rows: rows}, nil
}

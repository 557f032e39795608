// Package csv reads one ERP extract into a parser.Table. The reader is
// deliberately lenient about value content (LazyQuotes, ragged rows padded to
// the header width) and strict about shape: a header whose column count does
// not match the expected width is a schema mismatch and fails the extract.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"erpload/internal/parser"
)

const utf8BOM = "\ufeff"

// Options configures the CSV table reader. The zero value reads UTF-8,
// comma-separated input with no width check.
type Options struct {
	// Comma is the field delimiter; ',' when zero.
	Comma rune

	// Encoding names the source charset. Older ERP exports are often
	// Latin-1; see DecodeReader for accepted names. Empty means UTF-8.
	Encoding string

	// ExpectedFields, when > 0, is the required header width. A header with
	// a different column count fails the read.
	ExpectedFields int

	// TrimSpace trims leading/trailing spaces from every field value.
	TrimSpace bool
}

// Reader reads CSV tables according to Options. It is stateless and safe to
// reuse across inputs.
type Reader struct{ opt Options }

// NewReader constructs a Reader with the provided Options.
func NewReader(opt Options) *Reader { return &Reader{opt: opt} }

// Read consumes the whole extract: one header row, then data rows. Rows with
// a deviating field count are padded or truncated to the header width; value
// errors are left for the coercion layer.
func (p *Reader) Read(r io.Reader) (*parser.Table, error) {
	decoded, err := DecodeReader(r, p.opt.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	header = stripHeaderBOM(header)
	if p.opt.ExpectedFields > 0 && len(header) != p.opt.ExpectedFields {
		return nil, fmt.Errorf("csv header has %d columns, expected %d", len(header), p.opt.ExpectedFields)
	}

	width := len(header)
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		row := make([]string, width)
		for i := 0; i < width && i < len(rec); i++ {
			if p.opt.TrimSpace {
				row[i] = strings.TrimSpace(rec[i])
			} else {
				row[i] = rec[i]
			}
		}
		rows = append(rows, row)
	}

	return &parser.Table{Header: header, Rows: rows}, nil
}

// DecodeReader wraps r with a charset decoder for the named encoding. UTF-8
// input passes through with BOM removal only.
func DecodeReader(r io.Reader, name string) (io.Reader, error) {
	var enc encoding.Encoding
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder()), nil
	case "latin1", "iso-8859-1", "iso8859-1":
		enc = charmap.ISO8859_1
	case "windows-1252", "cp1252":
		enc = charmap.Windows1252
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// stripHeaderBOM removes a UTF-8 BOM from the first header cell if one
// survived decoding.
func stripHeaderBOM(header []string) []string {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	return header
}

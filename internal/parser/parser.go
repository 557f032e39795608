// Package parser defines the table shape shared by the extract readers.
//
// Consumers index columns by position, not by header name: ERP installations
// localize header text, but the export column order is fixed. Extraction
// therefore validates the column COUNT against the expected width and leaves
// all value-level problems to the coercion layer.
package parser

import "io"

// Table is one fully extracted source: a single header row plus data rows.
// Every row has exactly len(Header) fields; readers pad or truncate ragged
// rows so downstream code can rely on stable column indexes.
type Table struct {
	Header []string
	Rows   [][]string
}

// TableReader turns a raw byte stream into a Table.
type TableReader interface {
	Read(r io.Reader) (*Table, error)
}

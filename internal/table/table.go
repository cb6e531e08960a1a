package table

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// ErrMissingFixture indicates the reference table could not be obtained.
var ErrMissingFixture = errors.New("reference fixture missing")

// ErrWriteFailure indicates an output artifact could not be written.
var ErrWriteFailure = errors.New("write failure")

// Table holds a loaded tabular dataset as string cells, plus derived
// metadata about its source. Rows are addressed 1-based, matching the
// positions used by the corruption catalogue.
type Table struct {
	Source string
	Hash   string // "sha256:<hex>" of the source serialization
	Header []string
	Rows   [][]string
}

// Load reads a comma-delimited table from disk. A missing or unreadable
// file wraps ErrMissingFixture so callers can classify the failure.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrMissingFixture, path, err)
	}
	return Parse(data, path)
}

// Parse decodes a serialized table. The source string is recorded for
// reporting only and may name a file path or an embedded origin.
func Parse(data []byte, source string) (*Table, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %s has no data rows", ErrMissingFixture, source)
	}

	sum := sha256.Sum256(data)
	return &Table{
		Source: source,
		Hash:   fmt.Sprintf("sha256:%x", sum),
		Header: records[0],
		Rows:   records[1:],
	}, nil
}

// RowCount returns the number of data rows (the header is not counted).
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.Header) }

// ColumnIndex returns the 0-based index of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown column %q", name)
}

// Cell returns the value at the given 1-based row position and column name.
func (t *Table) Cell(row int, column string) (string, error) {
	col, err := t.ColumnIndex(column)
	if err != nil {
		return "", err
	}
	if row < 1 || row > len(t.Rows) {
		return "", fmt.Errorf("row %d out of range 1..%d", row, len(t.Rows))
	}
	return t.Rows[row-1][col], nil
}

// SetCell replaces the value at the given 1-based row position and column name.
func (t *Table) SetCell(row int, column, value string) error {
	col, err := t.ColumnIndex(column)
	if err != nil {
		return err
	}
	if row < 1 || row > len(t.Rows) {
		return fmt.Errorf("row %d out of range 1..%d", row, len(t.Rows))
	}
	t.Rows[row-1][col] = value
	return nil
}

// Clone returns a deep copy sharing no cell storage with the receiver.
func (t *Table) Clone() *Table {
	header := make([]string, len(t.Header))
	copy(header, t.Header)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		copy(rows[i], row)
	}
	return &Table{Source: t.Source, Hash: t.Hash, Header: header, Rows: rows}
}

// Equal reports whether two tables have identical headers and cells.
func (t *Table) Equal(o *Table) bool {
	if len(t.Header) != len(o.Header) || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Header {
		if t.Header[i] != o.Header[i] {
			return false
		}
	}
	for i := range t.Rows {
		if len(t.Rows[i]) != len(o.Rows[i]) {
			return false
		}
		for j := range t.Rows[i] {
			if t.Rows[i][j] != o.Rows[i][j] {
				return false
			}
		}
	}
	return true
}

// Bytes serializes the table as comma-delimited text with LF line endings.
// For the reference dataset family (no embedded delimiters or quotes) the
// serialization round-trips byte-identically through Parse.
func (t *Table) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("serializing header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, fmt.Errorf("serializing rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("serializing table: %w", err)
	}
	return buf.Bytes(), nil
}

// Write serializes the table to the given path. Failures wrap
// ErrWriteFailure so callers can classify them.
func (t *Table) Write(path string) error {
	data, err := t.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	return nil
}

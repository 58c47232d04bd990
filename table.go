package pydocs

import "strings"

// Table is the result of a scrape mode: a header row followed by data rows
// of the same width.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable returns an empty table with the given header.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// Append adds a row. The row must have exactly one cell per header column.
func (t *Table) Append(row ...string) error {
	if len(row) != len(t.Header) {
		return Errorf(EINVALID, "row has %d cells, header has %d", len(row), len(t.Header))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Records returns the header followed by every row.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header)
	return append(records, t.Rows...)
}

// Validate checks that the table has a header and that every row matches it.
func (t *Table) Validate() error {
	if len(t.Header) == 0 {
		return Errorf(EINVALID, "table has no header")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return Errorf(EINVALID, "row %d has %d cells, header has %d", i, len(row), len(t.Header))
		}
	}
	return nil
}

// String renders the table as space-separated lines, header first.
func (t *Table) String() string {
	var b strings.Builder
	for _, rec := range t.Records() {
		b.WriteString(strings.Join(rec, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

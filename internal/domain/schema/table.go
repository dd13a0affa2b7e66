package schema

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/leengari/plantdb/internal/domain/data"
	"github.com/leengari/plantdb/internal/domain/errors"
)

const (
	fieldDelimiter = " | "
	separatorLine  = "----------------------------------"
)

// Table represents a named, schema-checked, append-only collection of rows
type Table struct {
	Name   string
	Schema *TableSchema
	Rows   []data.Row
}

// NewTable creates an empty table for the given schema
func NewTable(s *TableSchema) *Table {
	return &Table{
		Name:   s.TableName,
		Schema: s,
		Rows:   make([]data.Row, 0),
	}
}

// AddRecord appends a row if its arity matches the column count.
// A mismatched row is not stored and an ArityError is returned.
func (t *Table) AddRecord(row data.Row) error {
	if row.Arity() != len(t.Schema.Columns) {
		return &errors.ArityError{
			Table:    t.Name,
			Expected: len(t.Schema.Columns),
			Got:      row.Arity(),
		}
	}

	t.Rows = append(t.Rows, row.Copy()) // prevent mutation through caller's slice

	slog.Debug("AddRecord operation", "table", t.Name, "rows", len(t.Rows))
	return nil
}

// Render writes the table name, header, separator and every row in insertion order
func (t *Table) Render(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nTable: %s\n", t.Name)
	b.WriteString(strings.Join(t.Schema.ColumnNames(), fieldDelimiter))
	b.WriteString("\n")
	b.WriteString(separatorLine)
	b.WriteString("\n")
	for _, row := range t.Rows {
		b.WriteString(strings.Join(row, fieldDelimiter))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// SelectAll returns a copy of all rows of the table
func (t *Table) SelectAll() []data.Row {
	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row.Copy()
	}
	return rows
}

// Len returns the number of stored rows
func (t *Table) Len() int {
	return len(t.Rows)
}

package data

// Row represents a single table row
// Field i holds the value for column i of the owning table's schema
type Row []string

// NewRow creates a new Row from the given fields
func NewRow(fields ...string) Row {
	return Row(fields).Copy()
}

// Copy creates a copy of the row to prevent mutation
func (r Row) Copy() Row {
	c := make(Row, len(r))
	copy(c, r)
	return c
}

// Arity returns the number of fields in the row
func (r Row) Arity() int {
	return len(r)
}

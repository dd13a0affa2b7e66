package schema

// Column describes a single table column.
// All values are stored as opaque strings, so a column carries only its label.
type Column struct {
	Name string `json:"name" yaml:"name"`
}

// TableSchema represents table metadata: the table name and its ordered columns
type TableSchema struct {
	TableName string
	Columns   []Column
}

// NewTableSchema builds a schema from a table name and column labels
func NewTableSchema(tableName string, columns ...string) *TableSchema {
	cols := make([]Column, len(columns))
	for i, name := range columns {
		cols[i] = Column{Name: name}
	}
	return &TableSchema{TableName: tableName, Columns: cols}
}

// ColumnNames returns the column labels in declaration order
func (s *TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}

// Clone returns a deep copy so callers cannot mutate catalog entries
func (s *TableSchema) Clone() *TableSchema {
	cols := make([]Column, len(s.Columns))
	copy(cols, s.Columns)
	return &TableSchema{TableName: s.TableName, Columns: cols}
}

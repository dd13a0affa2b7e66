package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies the non-fatal conditions a store operation can report
type Kind string

const (
	KindNone          Kind = ""
	KindUnknownSchema Kind = "unknown_schema"
	KindArityMismatch Kind = "arity_mismatch"
	KindMissingTable  Kind = "missing_table"
	KindTableExists   Kind = "table_exists"
)

// UnknownSchemaError is returned when a table name is not in the schema catalog
type UnknownSchemaError struct {
	TableName string
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("Unknown table name: %s", e.TableName)
}

func (e *UnknownSchemaError) Kind() Kind { return KindUnknownSchema }

// ArityError is returned when a row's field count disagrees with the table's column count
type ArityError struct {
	Table    string // table name
	Expected int    // column count
	Got      int    // field count of the rejected row
}

// Error keeps the console diagnostic; Expected and Got are for programmatic callers.
func (e *ArityError) Error() string {
	return "Record does not match table column structure."
}

func (e *ArityError) Kind() Kind { return KindArityMismatch }

// TableNotFoundError is returned when an operation names a table that was never created
type TableNotFoundError struct {
	TableName string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("Table %s does not exist.", e.TableName)
}

func (e *TableNotFoundError) Kind() Kind { return KindMissingTable }

// TableExistsError is returned by CreateTable when re-creation is rejected
type TableExistsError struct {
	TableName string
}

func (e *TableExistsError) Error() string {
	return fmt.Sprintf("Table %s already exists.", e.TableName)
}

func (e *TableExistsError) Kind() Kind { return KindTableExists }

// KindOf extracts the Kind from err, looking through wrapped errors.
// Returns KindNone for nil or unclassified errors.
func KindOf(err error) Kind {
	var k interface{ Kind() Kind }
	if stderrors.As(err, &k) {
		return k.Kind()
	}
	return KindNone
}

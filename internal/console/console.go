// Package console renders store outcomes for an interactive or scripted caller.
// Every failed operation is reported as a single diagnostic line and skipped.
package console

import (
	"fmt"
	"io"

	"github.com/leengari/plantdb/internal/engine"
)

// Console wraps a Store and prints diagnostics instead of returning errors
type Console struct {
	store *engine.Store
	out   io.Writer
}

// New creates a console writing tables and diagnostics to out
func New(store *engine.Store, out io.Writer) *Console {
	return &Console{store: store, out: out}
}

// CreateTable creates the named table, printing a diagnostic on failure
func (c *Console) CreateTable(tableName string) {
	c.report(c.store.CreateTable(tableName))
}

// InsertRecord inserts fields into the named table, printing a diagnostic on failure
func (c *Console) InsertRecord(tableName string, fields ...string) {
	c.report(c.store.InsertRecord(tableName, fields...))
}

// DisplayTable prints the named table, or a diagnostic if it does not exist
func (c *Console) DisplayTable(tableName string) {
	c.report(c.store.DisplayTable(c.out, tableName))
}

// Store returns the underlying store
func (c *Console) Store() *engine.Store {
	return c.store
}

func (c *Console) report(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(c.out, err.Error())
}

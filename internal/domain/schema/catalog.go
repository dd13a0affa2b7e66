package schema

import (
	"fmt"
	"strings"
)

// Catalog is the immutable mapping from table name to its schema.
// It is built once at startup and only read afterwards.
type Catalog struct {
	schemas map[string]*TableSchema
	order   []string
}

// NewCatalog builds a catalog from the given schemas, keeping their order.
// Empty table names, schemas without columns and duplicate names are rejected.
func NewCatalog(schemas ...*TableSchema) (*Catalog, error) {
	c := &Catalog{
		schemas: make(map[string]*TableSchema, len(schemas)),
		order:   make([]string, 0, len(schemas)),
	}

	for i, s := range schemas {
		if s == nil || strings.TrimSpace(s.TableName) == "" {
			return nil, fmt.Errorf("catalog entry %d: table name is required", i)
		}
		if len(s.Columns) == 0 {
			return nil, fmt.Errorf("catalog entry %q: at least one column is required", s.TableName)
		}
		if _, dup := c.schemas[s.TableName]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate table name", s.TableName)
		}
		c.schemas[s.TableName] = s.Clone()
		c.order = append(c.order, s.TableName)
	}

	return c, nil
}

// DefaultCatalog returns the built-in plant registry catalog
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		NewTableSchema("PlantID", "ID", "Description"),
		NewTableSchema("PlantName", "PlantID", "Name"),
		NewTableSchema("Location", "PlantID", "Location"),
		NewTableSchema("GrowthStage", "PlantID", "Stage"),
		NewTableSchema("CareActivities", "PlantID", "Activity"),
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns a copy of the schema registered under name (exact, case-sensitive match)
func (c *Catalog) Lookup(name string) (*TableSchema, bool) {
	s, ok := c.schemas[name]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// Names returns the table names in declaration order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Len returns the number of schemas in the catalog
func (c *Catalog) Len() int {
	return len(c.order)
}

package engine

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/plantdb/internal/domain/data"
	"github.com/leengari/plantdb/internal/domain/errors"
	"github.com/leengari/plantdb/internal/domain/schema"
)

// RecreatePolicy decides what CreateTable does when the table already exists
type RecreatePolicy string

const (
	// RecreateReset replaces the existing table with an empty one, discarding its rows
	RecreateReset RecreatePolicy = "reset"
	// RecreateReject keeps the existing table and returns a TableExistsError
	RecreateReject RecreatePolicy = "reject"
)

// ParseRecreatePolicy validates a policy name from configuration
func ParseRecreatePolicy(s string) (RecreatePolicy, error) {
	switch p := RecreatePolicy(s); p {
	case RecreateReset, RecreateReject:
		return p, nil
	default:
		return "", fmt.Errorf("invalid recreate policy %q (expected one of: reset, reject)", s)
	}
}

// Store is the table registry: it maps table names to tables created from the catalog
// and dispatches operations by name. It is not safe for concurrent use.
type Store struct {
	catalog   *schema.Catalog
	tables    map[string]*schema.Table
	policy    RecreatePolicy
	observers []Observer // Observers for lifecycle events
}

// New creates an empty Store over the given catalog
func New(catalog *schema.Catalog, policy RecreatePolicy) *Store {
	if policy == "" {
		policy = RecreateReset
	}
	return &Store{
		catalog:   catalog,
		tables:    make(map[string]*schema.Table),
		policy:    policy,
		observers: make([]Observer, 0),
	}
}

// CreateTable registers an empty table for a catalog schema
func (s *Store) CreateTable(tableName string) error {
	opID := uuid.New().String()

	sch, ok := s.catalog.Lookup(tableName)
	if !ok {
		return s.fail(opID, tableName, nil, &errors.UnknownSchemaError{TableName: tableName})
	}

	if old, exists := s.tables[tableName]; exists {
		if s.policy == RecreateReject {
			return s.fail(opID, tableName, nil, &errors.TableExistsError{TableName: tableName})
		}
		s.tables[tableName] = schema.NewTable(sch)
		s.notify(Event{Type: EventTableRecreated, OpID: opID, Table: tableName, Data: map[string]interface{}{
			"discarded_rows": old.Len(),
		}})
		return nil
	}

	s.tables[tableName] = schema.NewTable(sch)
	s.notify(Event{Type: EventTableCreated, OpID: opID, Table: tableName, Data: sch.ColumnNames()})
	return nil
}

// InsertRecord appends fields as one row of the named table
func (s *Store) InsertRecord(tableName string, fields ...string) error {
	opID := uuid.New().String()

	table, ok := s.tables[tableName]
	if !ok {
		return s.fail(opID, tableName, fields, &errors.TableNotFoundError{TableName: tableName})
	}

	if err := table.AddRecord(data.NewRow(fields...)); err != nil {
		return s.fail(opID, tableName, fields, err)
	}

	s.notify(Event{Type: EventRecordInserted, OpID: opID, Table: tableName, Data: table.Len()})
	return nil
}

// DisplayTable renders the named table to w
func (s *Store) DisplayTable(w io.Writer, tableName string) error {
	opID := uuid.New().String()

	table, ok := s.tables[tableName]
	if !ok {
		return s.fail(opID, tableName, nil, &errors.TableNotFoundError{TableName: tableName})
	}

	if err := table.Render(w); err != nil {
		return fmt.Errorf("render table %s: %w", tableName, err)
	}

	s.notify(Event{Type: EventTableDisplayed, OpID: opID, Table: tableName, Data: table.Len()})
	return nil
}

// Table returns the named table if it has been created
func (s *Store) Table(tableName string) (*schema.Table, bool) {
	t, ok := s.tables[tableName]
	return t, ok
}

// ListTables returns the names of all created tables, sorted
func (s *Store) ListTables() []string {
	tables := make([]string, 0, len(s.tables))
	for tableName := range s.tables {
		tables = append(tables, tableName)
	}
	sort.Strings(tables)
	return tables
}

// Catalog returns the catalog the store creates tables from
func (s *Store) Catalog() *schema.Catalog {
	return s.catalog
}

// AddObserver registers an observer to receive lifecycle events
func (s *Store) AddObserver(observer Observer) {
	s.observers = append(s.observers, observer)
}

// RemoveObserver unregisters an observer
func (s *Store) RemoveObserver(observer Observer) {
	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Store) fail(opID, tableName string, fields []string, err error) error {
	var payload interface{}
	if fields != nil {
		payload = fields
	}
	s.notify(Event{Type: EventOperationFailed, OpID: opID, Table: tableName, Data: payload, Err: err})
	return err
}

// notify sends an event to all registered observers
func (s *Store) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range s.observers {
		observer.OnEvent(event)
	}
}

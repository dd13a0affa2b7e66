package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/plantdb/internal/domain/data"
	"github.com/leengari/plantdb/internal/domain/errors"
	"github.com/leengari/plantdb/internal/domain/schema"
)

func TestCreateKnownTables(t *testing.T) {
	catalog := schema.DefaultCatalog()

	for _, name := range catalog.Names() {
		t.Run(name, func(t *testing.T) {
			store := New(catalog, RecreateReset)
			require.NoError(t, store.CreateTable(name))

			var buf bytes.Buffer
			require.NoError(t, store.DisplayTable(&buf, name))

			sch, _ := catalog.Lookup(name)
			lines := strings.Split(strings.TrimPrefix(buf.String(), "\n"), "\n")
			require.Len(t, lines, 4, "header, columns, separator, trailing newline")
			assert.Equal(t, "Table: "+name, lines[0])
			assert.Equal(t, strings.Join(sch.ColumnNames(), " | "), lines[1])
			assert.Equal(t, "----------------------------------", lines[2])
			assert.Equal(t, "", lines[3])
		})
	}
}

func TestCreateUnknownTable(t *testing.T) {
	store := newTestStore()

	err := store.CreateTable("Trees")
	require.Error(t, err)
	assert.Equal(t, errors.KindUnknownSchema, errors.KindOf(err))
	assert.Equal(t, "Unknown table name: Trees", err.Error())
	assert.Empty(t, store.ListTables())

	err = store.InsertRecord("Trees", "1", "Oak")
	assert.Equal(t, errors.KindMissingTable, errors.KindOf(err))
	assert.Equal(t, "Table Trees does not exist.", err.Error())

	var buf bytes.Buffer
	err = store.DisplayTable(&buf, "Trees")
	assert.Equal(t, errors.KindMissingTable, errors.KindOf(err))
	assert.Empty(t, buf.String())
}

func TestCreateIsCaseSensitive(t *testing.T) {
	store := newTestStore()

	err := store.CreateTable("plantid")
	assert.Equal(t, errors.KindUnknownSchema, errors.KindOf(err))
}

func TestInsertRecordArity(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.CreateTable("PlantID"))
	require.NoError(t, store.InsertRecord("PlantID", "1", "A"))

	err := store.InsertRecord("PlantID", "1", "A", "extra")
	require.Error(t, err)
	assert.Equal(t, errors.KindArityMismatch, errors.KindOf(err))
	assert.Equal(t, "Record does not match table column structure.", err.Error())

	err = store.InsertRecord("PlantID")
	assert.Equal(t, errors.KindArityMismatch, errors.KindOf(err))

	table, ok := store.Table("PlantID")
	require.True(t, ok)
	assert.Equal(t, 1, table.Len())
}

func TestInsertionOrderPreserved(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.CreateTable("PlantID"))
	require.NoError(t, store.InsertRecord("PlantID", "1", "A"))
	require.NoError(t, store.InsertRecord("PlantID", "2", "B"))

	var buf bytes.Buffer
	require.NoError(t, store.DisplayTable(&buf, "PlantID"))

	want := "\nTable: PlantID\nID | Description\n----------------------------------\n1 | A\n2 | B\n"
	assert.Equal(t, want, buf.String())

	table, _ := store.Table("PlantID")
	assert.Equal(t, []data.Row{{"1", "A"}, {"2", "B"}}, table.SelectAll())
}

func TestRecreateResetsRows(t *testing.T) {
	store := New(schema.DefaultCatalog(), RecreateReset)
	observer := &MockObserver{}
	store.AddObserver(observer)

	require.NoError(t, store.CreateTable("Location"))
	require.NoError(t, store.InsertRecord("Location", "1", "Garden"))
	require.NoError(t, store.CreateTable("Location"))

	table, ok := store.Table("Location")
	require.True(t, ok)
	assert.Equal(t, 0, table.Len())

	last := observer.Events[len(observer.Events)-1]
	assert.Equal(t, EventTableRecreated, last.Type)
	assert.Equal(t, map[string]interface{}{"discarded_rows": 1}, last.Data)
}

func TestRecreateRejected(t *testing.T) {
	store := New(schema.DefaultCatalog(), RecreateReject)

	require.NoError(t, store.CreateTable("Location"))
	require.NoError(t, store.InsertRecord("Location", "1", "Garden"))

	err := store.CreateTable("Location")
	require.Error(t, err)
	assert.Equal(t, errors.KindTableExists, errors.KindOf(err))
	assert.Equal(t, "Table Location already exists.", err.Error())

	table, _ := store.Table("Location")
	assert.Equal(t, 1, table.Len())
}

func TestNoForeignKeyChecks(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.CreateTable("PlantName"))

	// PlantID table was never created and "42" is never validated
	assert.NoError(t, store.InsertRecord("PlantName", "42", "Ghost"))
}

func TestListTables(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.CreateTable("PlantName"))
	require.NoError(t, store.CreateTable("GrowthStage"))
	_ = store.CreateTable("Nope")

	assert.Equal(t, []string{"GrowthStage", "PlantName"}, store.ListTables())
}

func TestParseRecreatePolicy(t *testing.T) {
	p, err := ParseRecreatePolicy("reset")
	require.NoError(t, err)
	assert.Equal(t, RecreateReset, p)

	p, err = ParseRecreatePolicy("reject")
	require.NoError(t, err)
	assert.Equal(t, RecreateReject, p)

	_, err = ParseRecreatePolicy("overwrite")
	assert.Error(t, err)
}

func TestNewDefaultsPolicy(t *testing.T) {
	store := New(schema.DefaultCatalog(), "")
	assert.Equal(t, RecreateReset, store.policy)
}

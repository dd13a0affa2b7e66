package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	src := `
tables:
  - name: Trees
    columns: [ID, Species]
  - name: Pots
    columns: [ID, Size, Material]
`
	catalog, err := LoadCatalog(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"Trees", "Pots"}, catalog.Names())
	pots, ok := catalog.Lookup("Pots")
	require.True(t, ok)
	assert.Equal(t, []string{"ID", "Size", "Material"}, pots.ColumnNames())
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"Empty", "", "catalog is empty"},
		{"Malformed", "tables: [", "failed to decode catalog"},
		{"UnknownField", "tables:\n  - name: T\n    cols: [a]\n", "failed to decode catalog"},
		{"NoColumns", "tables:\n  - name: T\n    columns: []\n", "invalid catalog"},
		{"Duplicate", "tables:\n  - name: T\n    columns: [a]\n  - name: T\n    columns: [b]\n", "duplicate table name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tables:\n  - name: Trees\n    columns: [ID]\n"), 0644))

	catalog, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

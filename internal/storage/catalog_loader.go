package storage

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leengari/plantdb/internal/domain/schema"
)

// LoadCatalog decodes a YAML catalog and builds an immutable schema.Catalog from it
func LoadCatalog(r io.Reader) (*schema.Catalog, error) {
	var file CatalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("catalog is empty")
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	schemas := make([]*schema.TableSchema, 0, len(file.Tables))
	for _, t := range file.Tables {
		schemas = append(schemas, schema.NewTableSchema(t.Name, t.Columns...))
	}

	catalog, err := schema.NewCatalog(schemas...)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}

// LoadCatalogFile reads a catalog from path
func LoadCatalogFile(path string) (*schema.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	catalog, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("catalog loaded",
		slog.String("path", path),
		slog.Int("tables", catalog.Len()),
	)
	return catalog, nil
}

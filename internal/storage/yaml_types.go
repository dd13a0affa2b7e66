package storage

// CatalogFile is the on-disk layout of a schema catalog
type CatalogFile struct {
	Tables []TableMeta `yaml:"tables"`
}

// TableMeta describes a single table schema in a catalog file
type TableMeta struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
}

// SeedFile is the on-disk layout of a scripted demonstration run
type SeedFile struct {
	Tables  []string     `yaml:"tables"`
	Records []RecordMeta `yaml:"records"`
}

// RecordMeta is one row to insert during a seed run
type RecordMeta struct {
	Table  string   `yaml:"table"`
	Fields []string `yaml:"fields"`
}

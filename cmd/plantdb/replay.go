package main

import (
	"github.com/leengari/plantdb/internal/console"
	"github.com/leengari/plantdb/internal/storage"
)

// replay creates every seed table, inserts the seed records, then displays the tables
// in creation order. Failures are reported by the console and skipped.
func replay(c *console.Console, seed *storage.SeedFile) {
	for _, table := range seed.Tables {
		c.CreateTable(table)
	}

	for _, rec := range seed.Records {
		c.InsertRecord(rec.Table, rec.Fields...)
	}

	for _, table := range seed.Tables {
		c.DisplayTable(table)
	}
}

package storage

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSeed decodes a YAML seed file
func LoadSeed(r io.Reader) (*SeedFile, error) {
	var seed SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		if err == io.EOF {
			return &seed, nil
		}
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	return &seed, nil
}

// LoadSeedFile reads a seed from a path on disk
func LoadSeedFile(path string) (*SeedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed: %w", err)
	}
	defer f.Close()

	seed, err := LoadSeed(f)
	return finishSeed(path, seed, err)
}

// LoadSeedFS reads a seed from a filesystem, typically an embedded one
func LoadSeedFS(fsys fs.FS, name string) (*SeedFile, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed: %w", err)
	}
	defer f.Close()

	seed, err := LoadSeed(f)
	return finishSeed(name, seed, err)
}

func finishSeed(source string, seed *SeedFile, err error) (*SeedFile, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	slog.Info("seed loaded",
		slog.String("source", source),
		slog.Int("tables", len(seed.Tables)),
		slog.Int("records", len(seed.Records)),
	)
	return seed, nil
}

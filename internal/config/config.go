// Package config reads plantdb settings from flags, environment variables and .env files.
package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/leengari/plantdb/internal/engine"
	"github.com/leengari/plantdb/internal/infrastructure/logging"
)

// EnvPrefix is prepended to every environment variable, e.g. PLANTDB_LOG_LEVEL
const EnvPrefix = "plantdb"

// Configuration keys, shared by flags and environment variables
const (
	KeyLogLevel = "log-level"
	KeySeqURL   = "seq-url"
	KeyCatalog  = "catalog"
	KeySeed     = "seed"
	KeyRecreate = "recreate"
	KeyMetrics  = "metrics"
)

// Config holds the settings of a plantdb run
type Config struct {
	LogLevel    slog.Level
	SeqURL      string                // Seq server URL, empty disables shipping logs
	CatalogPath string                // YAML catalog, empty uses the built-in catalog
	SeedPath    string                // YAML seed, empty uses the embedded plant seed
	Recreate    engine.RecreatePolicy // CreateTable behavior for existing tables
	Metrics     bool                  // print counters when the run finishes
}

// NewViper returns a viper instance with defaults and environment lookup configured.
// .env and .env.local in the working directory are loaded first when present.
func NewViper() *viper.Viper {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // read in environment variables that match

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeySeqURL, "")
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeySeed, "")
	v.SetDefault(KeyRecreate, string(engine.RecreateReset))
	v.SetDefault(KeyMetrics, false)
	return v
}

// Load reads and validates the configuration from v
func Load(v *viper.Viper) (*Config, error) {
	level, err := logging.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}

	policy, err := engine.ParseRecreatePolicy(v.GetString(KeyRecreate))
	if err != nil {
		return nil, err
	}

	return &Config{
		LogLevel:    level,
		SeqURL:      v.GetString(KeySeqURL),
		CatalogPath: v.GetString(KeyCatalog),
		SeedPath:    v.GetString(KeySeed),
		Recreate:    policy,
		Metrics:     v.GetBool(KeyMetrics),
	}, nil
}

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leengari/plantdb/internal/config"
	"github.com/leengari/plantdb/internal/console"
	"github.com/leengari/plantdb/internal/domain/schema"
	"github.com/leengari/plantdb/internal/engine"
	"github.com/leengari/plantdb/internal/infrastructure/logging"
	"github.com/leengari/plantdb/internal/storage"
	"github.com/leengari/plantdb/seeds"
)

const Version = "0.1.0"

// newRootCmd builds the plantdb command. Tables and diagnostics go to stdout, logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:   "plantdb",
		Short: "in-memory plant record store",
		Long: fmt.Sprintf(`plantdb (v%s)

Creates the plant registry tables, inserts the demonstration records and
prints every table. Settings can also be given as environment variables
named PLANTDB_<flag> (e.g. PLANTDB_LOG_LEVEL=debug).`, Version),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// bind the flags to viper
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cfg, stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.Flags()
	flags.String(config.KeyLogLevel, "warn", "log level (debug, info, warn, error)")
	flags.String(config.KeySeqURL, "", "Seq server URL to ship logs to (empty disables)")
	flags.String(config.KeyCatalog, "", "YAML schema catalog (empty uses the built-in plant catalog)")
	flags.String(config.KeySeed, "", "YAML seed to replay (empty uses the embedded plant records)")
	flags.String(config.KeyRecreate, string(engine.RecreateReset), "what creating an existing table does (reset, reject)")
	flags.Bool(config.KeyMetrics, false, "print operation counters to stderr when finished")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of plantdb",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "plantdb v%s\n", Version)
		},
	})

	return root
}

// run replays the configured seed against a fresh store
func run(cfg *config.Config, stdout, stderr io.Writer) error {
	logger, closeFn := logging.SetupLogger(logging.Options{
		Level:  cfg.LogLevel,
		SeqURL: cfg.SeqURL,
		Output: stderr,
	})
	defer closeFn()
	slog.SetDefault(logger)

	catalog := schema.DefaultCatalog()
	if cfg.CatalogPath != "" {
		var err error
		if catalog, err = storage.LoadCatalogFile(cfg.CatalogPath); err != nil {
			slog.Error("failed to load catalog", "error", err)
			return err
		}
	}

	seed, err := loadSeed(cfg.SeedPath)
	if err != nil {
		slog.Error("failed to load seed", "error", err)
		return err
	}

	store := engine.New(catalog, cfg.Recreate)
	store.AddObserver(engine.NewLoggingObserver())

	var metrics *engine.MetricsObserver
	if cfg.Metrics {
		metrics = engine.NewMetricsObserver()
		store.AddObserver(metrics)
	}

	replay(console.New(store, stdout), seed)

	if metrics != nil {
		metrics.WritePrometheus(stderr)
	}

	slog.Info("run finished", "tables", len(store.ListTables()))
	return nil
}

func loadSeed(path string) (*storage.SeedFile, error) {
	if path == "" {
		return storage.LoadSeedFS(seeds.Content, seeds.Plants)
	}
	return storage.LoadSeedFile(path)
}

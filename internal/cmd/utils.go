package cmd

import (
	"fmt"
	"os"

	"github.com/hargabyte/finlens/internal/config"
	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/logging"
	"github.com/hargabyte/finlens/internal/output"
	"github.com/hargabyte/finlens/internal/report"
)

// DefaultSnapshotFile is the snapshot read when no argument is given.
const DefaultSnapshotFile = "company.json"

// setup loads configuration, constructs the logger, and loads the snapshot
// named by args (or the default). Shared by every analysis command.
func setup(args []string) (*config.Config, logging.Logger, *dataset.Snapshot, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	lggr, err := logging.New(verbose)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating logger: %w", err)
	}

	path := DefaultSnapshotFile
	if len(args) > 0 {
		path = args[0]
	}

	snap, err := dataset.Load(path, lggr.Named("loader"))
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, lggr, snap, nil
}

// loadConfig honors the --config flag, falling back to discovery from the
// working directory.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load(".")
}

// resolveFormat resolves the effective output format: the --format flag
// when set, otherwise the configured default.
func resolveFormat(cfg *config.Config) (output.Format, error) {
	s := outputFormat
	if s == "" {
		s = cfg.Output.DefaultFormat
	}
	return output.ParseFormat(s)
}

// emitResult writes a single analysis result to stdout in the effective
// format.
func emitResult(cfg *config.Config, res report.Result) error {
	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}

	if f, ok := output.ForFormat(format); ok {
		return f.FormatToWriter(os.Stdout, res)
	}
	return output.NewTextRenderer(cfg.Report).RenderResult(os.Stdout, res)
}

package cli

import (
	"fmt"
	"log/slog"

	"github.com/MacroPower/genebar/pkg/chart"
	"github.com/MacroPower/genebar/pkg/ledger"
	"github.com/MacroPower/genebar/pkg/seed"
)

// loadLedger seeds a ledger from path, or from the embedded example dataset
// when path is empty.
func loadLedger(path string) (*ledger.Ledger, error) {
	if path == "" {
		slog.Debug("using embedded example dataset")

		return ledger.New(seed.Default().Entries()...), nil
	}

	ds, err := seed.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed: %w", err)
	}

	return ledger.New(ds.Entries()...), nil
}

// loadConfig reads a chart config file, or returns the default config when
// path is empty.
func loadConfig(path string) (chart.Config, error) {
	if path == "" {
		return chart.DefaultConfig(), nil
	}

	cfg, err := chart.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

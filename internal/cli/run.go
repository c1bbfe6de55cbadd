package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MacroPower/genebar/pkg/chart"
	"github.com/MacroPower/genebar/pkg/genetui"
	"github.com/MacroPower/genebar/pkg/termchart"
)

const runExample = `  # Edit the example dataset interactively
  genebar run

  # Start from your own dataset and chart settings
  genebar run --seed genes.json --config chart.yaml
`

// NewRunCmd returns the interactive run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Edit gene values interactively",
		Example: runExample,
		RunE: func(cc *cobra.Command, _ []string) error {
			var merr error

			flags := cc.Flags()
			seedPath, err := flags.GetString("seed")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			configPath, err := flags.GetString("config")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			logLevel, err := flags.GetString("log_level")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if merr != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
			}

			l, err := loadLedger(seedPath)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			if !isTerminal(cc.OutOrStdout()) {
				c := termchart.New(defaultColumns)
				_, err := chart.NewRenderer(c, cfg).Render(l.Snapshot(), viewportFor(defaultColumns))
				if err != nil {
					return fmt.Errorf("render failed: %w", err)
				}

				c.Settle()

				if _, err := fmt.Fprintln(cc.OutOrStdout(), c.View()); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}

				return nil
			}

			app, err := genetui.NewApp(cc.InOrStdin(), cc.OutOrStdout(), logLevel, genetui.NewModel(l, genetui.WithConfig(cfg)))
			if err != nil {
				return fmt.Errorf("failed to create tui: %w", err)
			}

			if err := app.Run(cc.Context()); err != nil {
				return fmt.Errorf("run failed: %w", err)
			}

			return nil
		},
		SilenceUsage: true,
	}

	addInputFlags(cmd)

	return cmd
}

// isTerminal reports whether w is a terminal. Writers that are not files,
// such as buffers set by tests, never are.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("seed", "", "Seed dataset (JSON or YAML); defaults to the bundled example")
	cmd.Flags().String("config", "", "Chart configuration file (YAML)")

	if err := cmd.MarkFlagFilename("seed", "json", "yaml", "yml"); err != nil {
		panic(err)
	}

	if err := cmd.MarkFlagFilename("config", "yaml", "yml"); err != nil {
		panic(err)
	}
}

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/genebar/pkg/chart"
	"github.com/MacroPower/genebar/pkg/genetui"
	"github.com/MacroPower/genebar/pkg/ledger"
	"github.com/MacroPower/genebar/pkg/svgchart"
	"github.com/MacroPower/genebar/pkg/termchart"
)

const (
	formatSVG  = "svg"
	formatText = "text"

	defaultColumns = 80
)

const renderExample = `  # Render the example dataset as SVG
  genebar render > genes.svg

  # Apply operations in order, then draw the result in the terminal
  genebar render --seed genes.json --op add:gene3=30 --op remove:GENE1=5 --format text

  # Write a compressed SVG for a narrow viewport
  genebar render --viewport_width 500 --gzip --output genes.svgz
`

type operation struct {
	pending ledger.Pending
	op      ledger.Op
}

// parseOperation parses "add:NAME=AMOUNT" or "remove:NAME=AMOUNT". The
// amount is kept as typed; invalid amounts are dropped by the ledger.
func parseOperation(s string) (operation, error) {
	kind, rest, ok := strings.Cut(s, ":")
	if !ok {
		return operation{}, fmt.Errorf("%q: expected OP:NAME=AMOUNT", s)
	}

	i := strings.LastIndex(rest, "=")
	if i < 0 {
		return operation{}, fmt.Errorf("%q: expected OP:NAME=AMOUNT", s)
	}

	o := operation{
		pending: ledger.Pending{Name: rest[:i], Amount: ledger.ParseAmount(rest[i+1:])},
	}

	switch strings.ToLower(kind) {
	case "add":
		o.op = ledger.OpAdd
	case "remove", "rm":
		o.op = ledger.OpRemove
	default:
		return operation{}, fmt.Errorf("%q: unknown operation %q", s, kind)
	}

	return o, nil
}

func viewportFor(columns int) chart.Viewport {
	w := float64(columns * genetui.CellUnits)

	return chart.Viewport{Width: w, ContainerWidth: w}
}

// NewRenderCmd returns the non-interactive render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Apply operations to a dataset and render the chart",
		Example: renderExample,
		Args:    cobra.NoArgs,
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
			rawOps, err := flags.GetStringArray("op")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			format, err := flags.GetString("format")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			output, err := flags.GetString("output")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			compress, err := flags.GetBool("gzip")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			viewportWidth, err := flags.GetFloat64("viewport_width")
			if err != nil {
				merr = multierror.Append(merr, err)
			}
			columns, err := flags.GetInt("columns")
			if err != nil {
				merr = multierror.Append(merr, err)
			}

			if format != formatSVG && format != formatText {
				merr = multierror.Append(merr, fmt.Errorf("unknown format %q", format))
			}

			if compress && format != formatSVG {
				merr = multierror.Append(merr, errors.New("--gzip requires --format svg"))
			}

			ops := make([]operation, 0, len(rawOps))
			for _, raw := range rawOps {
				o, err := parseOperation(raw)
				if err != nil {
					merr = multierror.Append(merr, err)

					continue
				}

				ops = append(ops, o)
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

			form := ledger.NewForm(l)
			for _, o := range ops {
				form.SetName(o.pending.Name)
				form.SetAmount(o.pending.Amount)

				out := form.Submit(o.op)
				if out.Notice != "" {
					slog.Info("rejected operation", "op", o.op.String(), "err", out.Err)

					if _, err := fmt.Fprintln(cc.ErrOrStderr(), out.Notice); err != nil {
						return fmt.Errorf("failed to write notice: %w", err)
					}
				}
			}

			write := func(w io.Writer) error {
				if format == formatText {
					return renderText(w, l, cfg, columns)
				}

				return renderSVG(w, l, cfg, chart.Viewport{Width: viewportWidth, ContainerWidth: viewportWidth}, compress)
			}

			if output == "" {
				return write(cc.OutOrStdout())
			}

			return writeFile(output, write)
		},
		SilenceUsage: true,
	}

	addInputFlags(cmd)

	cmd.Flags().StringArray("op", nil, "Operation to apply, as add:NAME=AMOUNT or remove:NAME=AMOUNT (repeatable, applied in order)")
	cmd.Flags().StringP("format", "f", formatSVG, "Output format (svg, text)")
	cmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().Bool("gzip", false, "Compress SVG output (svgz)")
	cmd.Flags().Float64("viewport_width", 1024, "Viewport width used for responsive SVG layout")
	cmd.Flags().Int("columns", defaultColumns, "Terminal columns for text output")

	return cmd
}

// writeFile creates path and passes it to write. An error closing the file
// is returned when write itself succeeded.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	return write(f)
}

func renderSVG(w io.Writer, l *ledger.Ledger, cfg chart.Config, vp chart.Viewport, compress bool) error {
	c := svgchart.New()
	if _, err := chart.NewRenderer(c, cfg).Render(l.Snapshot(), vp); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if compress {
		return c.EncodeGzip(w)
	}

	return c.Encode(w)
}

func renderText(w io.Writer, l *ledger.Ledger, cfg chart.Config, columns int) error {
	c := termchart.New(columns)
	if _, err := chart.NewRenderer(c, cfg).Render(l.Snapshot(), viewportFor(columns)); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	c.Settle()

	if _, err := fmt.Fprintln(w, c.View()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

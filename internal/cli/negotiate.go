package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotscale/pkg/overlay"
	"github.com/matzehuels/plotscale/pkg/scaling"
)

// negotiateCommand creates the negotiate command.
func (c *CLI) negotiateCommand() *cobra.Command {
	var (
		flags  sceneFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "negotiate [scene.toml]",
		Short: "Negotiate the plot layout of a scene",
		Long: `Negotiate the plot layout of a scene.

Prints the final plot rectangle, the margin ledger (one row per decoration
that reserved space), the axis placements and the trace of both passes.
With -f json the same information is written as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format, formatText, formatJSON); err != nil {
				return err
			}
			return runNegotiate(cmd.Context(), cmd.OutOrStdout(), args[0], flags, format, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func runNegotiate(ctx context.Context, w io.Writer, path string, flags sceneFlags, format, output string) error {
	s, err := loadScene(ctx, path, flags)
	if err != nil {
		return err
	}
	res := negotiate(ctx, s)

	if format == formatJSON {
		data, err := overlay.RenderJSON(res)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		return writeOutput(w, output, data)
	}

	printNegotiation(w, res)
	return nil
}

func printNegotiation(w io.Writer, res *scaling.Result) {
	printKeyValue(w, "canvas", formatSize(res.Canvas))
	printKeyValue(w, "plot", formatRect(res.Plot))
	if !res.LegendRect.Empty() {
		printKeyValue(w, "legend", formatRect(res.LegendRect))
	}
	if res.AxisAspectApplied {
		printKeyValue(w, "axis aspect", "applied")
	}
	if res.Plot.Empty() {
		printWarning(w, "plot rectangle is empty: the decorations need more space than the canvas has")
	}
	if !res.Converged() {
		printWarning(w, "passes disagree on the plot rectangle")
	}

	printHeading(w, "Margins")
	fmt.Fprintln(w, ledgerTable(res))

	if len(res.Axes) > 0 {
		printHeading(w, "Axes")
		fmt.Fprintln(w, axesTable(res))
	}

	printHeading(w, "Passes")
	fmt.Fprintln(w, passesTable(res))
}

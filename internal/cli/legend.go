package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// legendCommand creates the legend command.
func (c *CLI) legendCommand() *cobra.Command {
	var (
		flags    sceneFlags
		position string
		layout   string
	)

	cmd := &cobra.Command{
		Use:   "legend [scene.toml]",
		Short: "Show the negotiated legend grid of a scene",
		Long: `Show the negotiated legend grid of a scene.

Prints the legend items as they are arranged in columns, the legend box
and the grid each pass settled on. --position and --layout override the
scene's legend settings so that alternatives can be compared quickly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLegend(cmd.Context(), cmd.OutOrStdout(), args[0], flags, position, layout)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&position, "position", "", "legend position, e.g. outside-bottom-left (default: scene value)")
	cmd.Flags().StringVar(&layout, "layout", "", "legend layout: one-column, one-row, multi-column, multi-row (default: scene value)")

	return cmd
}

func runLegend(ctx context.Context, w io.Writer, path string, flags sceneFlags, position, layout string) error {
	s, err := loadScene(ctx, path, flags)
	if err != nil {
		return err
	}
	if position != "" {
		s.Legend.Position = position
	}
	if layout != "" {
		s.Legend.Layout = layout
	}
	if err := s.Validate(); err != nil {
		return err
	}
	s.Legend.Visible = true

	res := negotiate(ctx, s)
	l := res.Legend.Layout
	if l.Count() == 0 {
		printWarning(w, "no visible series with a title")
		return nil
	}

	printKeyValue(w, "position", s.Legend.Position)
	printKeyValue(w, "layout", s.Legend.Layout)
	printKeyValue(w, "items", fmt.Sprint(l.Count()))
	printKeyValue(w, "grid", fmt.Sprintf("%d columns x %d rows", l.ColumnCount(), l.RowCount()))
	printKeyValue(w, "size", formatSize(res.Legend.Required))
	printKeyValue(w, "box", formatRect(res.LegendRect))

	printHeading(w, "Grid")
	fmt.Fprintln(w, legendGrid(l))

	printHeading(w, "Passes")
	fmt.Fprintln(w, passesTable(res))
	return nil
}

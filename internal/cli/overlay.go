package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotscale/pkg/overlay"
)

// overlayCommand creates the overlay command.
func (c *CLI) overlayCommand() *cobra.Command {
	var (
		flags     sceneFlags
		output    string
		bandNames bool
		noCells   bool
	)

	cmd := &cobra.Command{
		Use:   "overlay [scene.toml]",
		Short: "Write a diagnostic SVG of the negotiated layout",
		Long: `Write a diagnostic SVG of the negotiated layout.

Each margin contribution is drawn as a translucent band along its canvas
side, stacked from the edge inward, together with the plot rectangle and
the legend grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []overlay.SVGOption
			if bandNames {
				opts = append(opts, overlay.WithBandNames())
			}
			if noCells {
				opts = append(opts, overlay.WithoutCells())
			}
			return runOverlay(cmd.Context(), cmd.OutOrStdout(), args[0], flags, output, opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <scene>.overlay.svg)")
	cmd.Flags().BoolVar(&bandNames, "band-names", false, "label each margin band with its use")
	cmd.Flags().BoolVar(&noCells, "no-cells", false, "omit legend item rectangles")

	return cmd
}

func runOverlay(ctx context.Context, w io.Writer, path string, flags sceneFlags, output string, opts []overlay.SVGOption) error {
	s, err := loadScene(ctx, path, flags)
	if err != nil {
		return err
	}
	res := negotiate(ctx, s)

	title := s.Title.Text
	if title == "" {
		title = filepath.Base(path)
	}
	data := overlay.RenderSVG(res, append([]overlay.SVGOption{overlay.WithTitle(title)}, opts...)...)

	if output == "" {
		output = overlayPath(path)
	}
	printSuccess(w, "Rendered overlay")
	return writeOutput(w, output, data)
}

// overlayPath derives the default output path from the scene path.
func overlayPath(scenePath string) string {
	return strings.TrimSuffix(scenePath, filepath.Ext(scenePath)) + ".overlay.svg"
}

// Package cli implements the plotscale command-line interface.
//
// Every command reads a TOML scene file, runs the layout negotiation and
// reports the result: as tables on the terminal, as JSON, or as an SVG
// overlay that shows the space each decoration reserved.
//
// # Commands
//
//   - negotiate: print the plot rectangle, the margin ledger and axis placements
//   - legend: print the legend grid and how it was re-dealt in each pass
//   - overlay: write a diagnostic SVG of the negotiated layout
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes the per-pass trace of the negotiation.
package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotscale/pkg/buildinfo"
	"github.com/matzehuels/plotscale/pkg/errors"
	"github.com/matzehuels/plotscale/pkg/scaling"
	"github.com/matzehuels/plotscale/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "plotscale"

	formatText = "text"
	formatJSON = "json"
	formatSVG  = "svg"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Plotscale negotiates plot layouts on a fixed canvas",
		Long:         `Plotscale partitions a canvas into the plot rectangle and the margins reserved for border, title, legend, axes and series decorations, and shows how that space was negotiated.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.negotiateCommand())
	root.AddCommand(c.legendCommand())
	root.AddCommand(c.overlayCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Scene Loading
// =============================================================================

// sceneFlags are the overrides shared by all scene commands.
type sceneFlags struct {
	width   float64 // canvas width override (0 keeps the scene value)
	height  float64 // canvas height override (0 keeps the scene value)
	metrics string  // text measurement backend override
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "canvas width in pixels (default: scene value)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "canvas height in pixels (default: scene value)")
	cmd.Flags().StringVar(&f.metrics, "metrics", "", "text metrics backend: opentype, monospace (default: scene value)")
}

// loadScene reads the scene at path and applies flag overrides.
func loadScene(ctx context.Context, path string, f sceneFlags) (*scene.Scene, error) {
	logger := loggerFromContext(ctx)

	s, err := scene.Load(path, logger)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f.width) || math.IsNaN(f.height) || math.IsInf(f.width, 0) || math.IsInf(f.height, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas size must be finite, got %vx%v", f.width, f.height)
	}
	if f.width < 0 || f.height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas size must not be negative, got %vx%v", f.width, f.height)
	}
	if f.width > 0 {
		s.Canvas.Width = f.width
	}
	if f.height > 0 {
		s.Canvas.Height = f.height
	}
	switch f.metrics {
	case "":
	case scene.BackendOpenType, scene.BackendMonospace:
		s.Metrics.Backend = f.metrics
	default:
		return nil, errors.New(errors.ErrCodeInvalidMetrics, "unknown metrics backend %q", f.metrics)
	}

	if fp, err := s.Fingerprint(); err == nil {
		logger.Debug("scene loaded", "path", path, "fingerprint", fp[:12])
	}
	return s, nil
}

// negotiate runs the layout negotiation for a loaded scene.
func negotiate(ctx context.Context, s *scene.Scene) *scaling.Result {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	tm := s.TextMetrics()
	if closer, ok := tm.(io.Closer); ok {
		defer closer.Close()
	}
	res := scaling.Negotiate(s.CanvasSize(), s.Config(tm), scaling.WithLogger(logger))

	prog.done(fmt.Sprintf("Negotiated %.0fx%.0f plot", res.Plot.Width, res.Plot.Height))
	return res
}

// =============================================================================
// Output
// =============================================================================

func validateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(w, path)
	return nil
}

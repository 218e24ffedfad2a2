// Package scaling negotiates the layout of a plot on a fixed-size canvas.
//
// On every redraw [Negotiate] partitions the canvas into the plot
// rectangle and the margins reserved for the border, title, legend, axes
// and series decorations. The sizes depend on each other: the legend grid
// depends on the plot size, which depends on the legend. Negotiate
// resolves this with exactly two passes over the same sequence of steps,
// then applies the optional aspect ratio constraints.
//
// Every structure is rebuilt from scratch on each call; nothing is kept
// between redraws.
package scaling

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotscale/pkg/axis"
	"github.com/matzehuels/plotscale/pkg/legend"
	"github.com/matzehuels/plotscale/pkg/margin"
	"github.com/matzehuels/plotscale/pkg/series"
	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

// TitleSpacing is the factor applied to the title text height to get the
// top margin reserved for it.
const TitleSpacing = 1.2

// Title is the plot title drawn above the plot.
type Title struct {
	Text string
	Font string
	Size float64
}

// Legend configures the plot legend.
type Legend struct {
	Visible     bool
	Position    legend.Position
	Arrangement legend.Arrangement
	Style       legend.Style
}

// Aspect is an optional aspect ratio constraint (width / height).
type Aspect struct {
	Maintain bool
	Ratio    float64
}

// Sync copies margin totals from another negotiation so that stacked plots
// share the same plot edges. Width copies left and right, Height copies
// top and bottom.
type Sync struct {
	From   margin.Margin
	Width  bool
	Height bool
}

// SyncWith returns a Sync taking its totals from r.
func SyncWith(r *Result, width, height bool) *Sync {
	return &Sync{From: r.Margins, Width: width, Height: height}
}

// Config is everything one negotiation reads.
type Config struct {
	// Metrics measures all text. Nil selects textmetrics.DefaultMonospace.
	Metrics textmetrics.Metrics

	Border margin.Margin
	Title  Title
	Legend Legend

	XAxis axis.Axis
	YAxis axis.Axis
	// Secondary axes stack outward beyond the primary axes on whatever
	// sides they report a size for.
	Secondary []axis.Axis

	Series []series.Series

	// Aspect constrains the plot rectangle in pixels.
	Aspect Aspect
	// AxisAspect constrains the data ranges of XAxis and YAxis.
	AxisAspect Aspect

	Sync *Sync
}

// axes returns the primary axes followed by the secondary ones, skipping nil.
func (c *Config) axes() []axis.Axis {
	out := make([]axis.Axis, 0, 2+len(c.Secondary))
	for _, a := range append([]axis.Axis{c.XAxis, c.YAxis}, c.Secondary...) {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

type options struct {
	logger *log.Logger
}

// Option configures Negotiate.
type Option func(*options)

// WithLogger sets the logger for debug output. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package scaling

import (
	"github.com/matzehuels/plotscale/pkg/axis"
	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/legend"
	"github.com/matzehuels/plotscale/pkg/margin"
)

// Result is the outcome of one negotiation.
type Result struct {
	Canvas geom.Size

	// Plot is the final plot rectangle after aspect correction.
	Plot geom.Rect
	// Margins is the total space between Plot and the canvas edges.
	Margins margin.Margin
	// Ledger is a detached copy of the final pass's ledger. It does not
	// include the aspect shrink or synchronized overrides.
	Ledger *margin.Ledger

	Legend        legend.SizeDescription
	LegendMetrics legend.Metrics
	LegendRect    geom.Rect

	Axes []AxisPlacement

	AspectShrink      geom.Insets
	AxisAspectApplied bool

	Passes [PassCount]Pass
}

// AxisPlacement records where one side of an axis was reserved. Offset is
// the distance from the plot edge to the start of the axis's band, which
// is non-zero for axes stacked beyond another axis on the same side.
type AxisPlacement struct {
	Axis   string
	Side   margin.Side
	Offset float64
	Size   axis.SizeResult
}

// Pass is the trace of a single negotiation pass.
type Pass struct {
	Plot          geom.Rect
	Margins       margin.Margin
	LegendGuess   geom.Size
	LegendSize    geom.Size
	LegendColumns int
	LegendRows    int
}

// Placement returns the placement of an axis on a side.
func (r *Result) Placement(name string, side margin.Side) (AxisPlacement, bool) {
	for _, p := range r.Axes {
		if p.Axis == name && p.Side == side {
			return p, true
		}
	}
	return AxisPlacement{}, false
}

// Converged reports whether both passes settled on the same plot rectangle.
func (r *Result) Converged() bool {
	return r.Passes[0].Plot == r.Passes[len(r.Passes)-1].Plot
}

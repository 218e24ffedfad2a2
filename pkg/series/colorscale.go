package series

import (
	"math"

	"github.com/matzehuels/plotscale/pkg/axis"
	"github.com/matzehuels/plotscale/pkg/margin"
	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

// ColorScale is a series that draws a color bar on one side of the plot.
//
// The bar occupies Offset + BarWidth points, followed by its value axis or
// its name, whichever is thicker.
type ColorScale struct {
	Name         string
	Hidden       bool
	Side         margin.Side
	ScaleName    string
	NameFont     string
	NameFontSize float64
	BarWidth     float64
	Offset       float64
	Axis         *axis.Coordinate
}

// NewColorScale creates a color bar on side with a value axis carrying the
// given tick labels.
func NewColorScale(title string, side margin.Side, ticks ...string) *ColorScale {
	o := axis.Vertical
	if side == margin.Top || side == margin.Bottom {
		o = axis.Horizontal
	}
	return &ColorScale{
		Name:         title,
		Side:         side,
		NameFontSize: 11,
		BarWidth:     14,
		Offset:       4,
		Axis:         axis.NewCoordinate(title+" scale", o, axis.WithTicks(ticks...)),
	}
}

func (c *ColorScale) Title() string { return c.Name }
func (c *ColorScale) Visible() bool { return !c.Hidden }

// Thickness returns the space the color bar needs perpendicular to its
// side.
func (c *ColorScale) Thickness(tm textmetrics.Metrics) float64 {
	var axisSize float64
	if c.Axis != nil {
		axisSize = c.Axis.Size1(tm).Required + c.Axis.Size2(tm).Required
	}
	name := tm.Measure(c.NameFont, c.NameFontSize, c.ScaleName)
	label := name.Width
	if c.Side == margin.Top || c.Side == margin.Bottom {
		label = name.Height()
	}
	return c.Offset + c.BarWidth + math.Max(axisSize, label)
}

// OutsideSize implements OutsideSizer.
func (c *ColorScale) OutsideSize(tm textmetrics.Metrics) Space {
	return margin.On(c.Side, c.Thickness(tm))
}

var (
	_ Series       = (*ColorScale)(nil)
	_ OutsideSizer = (*ColorScale)(nil)
)

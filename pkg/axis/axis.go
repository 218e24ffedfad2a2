// Package axis defines how coordinate axes report the space they need
// outside the plot rectangle.
//
// An axis has two sides. Side 1 is the bottom of a horizontal axis or the
// left of a vertical one; side 2 is the opposite edge. For each side an
// axis reports a [SizeResult]: the thickness perpendicular to the axis plus
// how far its labels overhang the plot rectangle at either end.
//
// Tick generation and value-to-pixel mapping belong to the caller; the
// layout only needs sizes and is told the final pixel span through
// CalcPlotScaling.
package axis

import "github.com/matzehuels/plotscale/pkg/textmetrics"

// Orientation of an axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// SizeResult is the space one side of an axis needs, in pixels.
//
// Required is the thickness perpendicular to the axis. ElongationMin and
// ElongationMax are overhangs beyond the plot rectangle along the axis:
// left/right for horizontal axes, bottom/top for vertical axes.
type SizeResult struct {
	Required      float64
	ElongationMin float64
	ElongationMax float64
}

// IsZero reports whether the side needs no space at all.
func (s SizeResult) IsZero() bool {
	return s.Required == 0 && s.ElongationMin == 0 && s.ElongationMax == 0
}

// Axis is the contract the scaling orchestrator negotiates with.
type Axis interface {
	Name() string
	Orientation() Orientation

	// Size1 reports the bottom (horizontal) or left (vertical) side.
	Size1(tm textmetrics.Metrics) SizeResult
	// Size2 reports the top (horizontal) or right (vertical) side.
	Size2(tm textmetrics.Metrics) SizeResult

	Range() (min, max float64)
	SetRange(min, max float64)
	IsLog() bool

	// CalcPlotScaling tells the axis where it lands in pixels: offset is
	// the plot rectangle's left (horizontal) or top (vertical) edge and
	// length its width or height.
	CalcPlotScaling(offset, length float64)
}

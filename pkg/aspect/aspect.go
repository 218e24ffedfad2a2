// Package aspect enforces aspect ratios on a negotiated plot.
//
// Two independent corrections exist. [CorrectRect] shrinks the plot
// rectangle in pixel space until width/height equals a target ratio.
// [CorrectRanges] instead widens or narrows the x axis range so that one
// data unit on x and one data unit on y cover pixel lengths in the target
// ratio.
package aspect

import (
	"math"

	"github.com/matzehuels/plotscale/pkg/axis"
	"github.com/matzehuels/plotscale/pkg/geom"
)

// CorrectRect fits a rectangle with width/height == ratio inside rect and
// centers it. The removed space is returned as insets split evenly onto
// the opposing sides. The rectangle is left unmodified when ratio is not
// a positive finite number, a dimension is zero, or neither candidate
// fits; ok reports whether the rectangle changed.
func CorrectRect(rect geom.Rect, ratio float64) (corrected geom.Rect, shrink geom.Insets, ok bool) {
	if !finite(ratio) || ratio <= 0 || rect.Width <= 0 || rect.Height <= 0 {
		return rect, geom.Insets{}, false
	}

	w, h := rect.Width, rect.Height
	if byHeight := ratio * h; byHeight <= w {
		d := w - byHeight
		if d == 0 {
			return rect, geom.Insets{}, false
		}
		shrink = geom.Insets{Left: d / 2, Right: d / 2}
	} else if byWidth := w / ratio; byWidth <= h {
		d := h - byWidth
		if d == 0 {
			return rect, geom.Insets{}, false
		}
		shrink = geom.Insets{Top: d / 2, Bottom: d / 2}
	} else {
		return rect, geom.Insets{}, false
	}

	return geom.Rect{
		X:      rect.X + shrink.Left,
		Y:      rect.Y + shrink.Top,
		Width:  w - shrink.Horizontal(),
		Height: h - shrink.Vertical(),
	}, shrink, true
}

// CorrectRanges sets the x range of x around its midpoint so that
// xRange/plot.Width == ratio * yRange/plot.Height. Both axes must share
// the same linear or logarithmic mode; logarithmic axes are corrected in
// log10 space and need strictly positive ranges. Non-finite ranges or
// ratios are left alone. It reports whether the range was changed.
func CorrectRanges(x, y axis.Axis, ratio float64, plot geom.Size) bool {
	if x == nil || y == nil || !finite(ratio) || ratio <= 0 || plot.Empty() {
		return false
	}
	if x.IsLog() != y.IsLog() {
		return false
	}
	log := x.IsLog()

	xmin, xmax := x.Range()
	ymin, ymax := y.Range()
	if !finite(xmin, xmax, ymin, ymax, plot.Width, plot.Height) {
		return false
	}
	if log {
		if xmin <= 0 || xmax <= 0 || ymin <= 0 || ymax <= 0 {
			return false
		}
		xmin, xmax = math.Log10(xmin), math.Log10(xmax)
		ymin, ymax = math.Log10(ymin), math.Log10(ymax)
	}

	yRange := math.Abs(ymax - ymin)
	if yRange == 0 {
		return false
	}
	half := ratio * yRange * plot.Width / plot.Height / 2
	mid := (xmin + xmax) / 2
	lo, hi := mid-half, mid+half
	if log {
		lo, hi = math.Pow(10, lo), math.Pow(10, hi)
	}
	x.SetRange(lo, hi)
	return true
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

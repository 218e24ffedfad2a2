package legend

import (
	"math"

	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/margin"
	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

// Style describes legend spacing relative to the legend font. Horizontal
// distances, margins and offsets are multiples of the width of 'X';
// SampleHeight and YSeparation are multiples of the font height.
// FrameWidth is in pixels.
type Style struct {
	Font     string
	FontSize float64

	SampleLength     float64
	SampleHeight     float64
	XSeparation      float64
	YSeparation      float64
	ColumnSeparation float64
	XMargin          float64
	YMargin          float64
	XOffset          float64
	YOffset          float64
	FrameWidth       float64
}

// DefaultStyle is a compact legend set in the default font at 10pt.
var DefaultStyle = Style{
	FontSize:         10,
	SampleLength:     3,
	SampleHeight:     1,
	XSeparation:      0.75,
	YSeparation:      0.2,
	ColumnSeparation: 1,
	XMargin:          0.5,
	YMargin:          0.5,
	XOffset:          1,
	YOffset:          1,
	FrameWidth:       1,
}

// Metrics is a Style resolved to pixels.
type Metrics struct {
	Font     string
	FontSize float64

	SampleLength     float64
	SampleHeight     float64
	XSeparation      float64
	YSeparation      float64
	ColumnSeparation float64
	XMargin          float64
	YMargin          float64
	XOffset          float64
	YOffset          float64
	FrameWidth       float64
}

// Resolve converts s to pixel metrics using tm.
func (s Style) Resolve(tm textmetrics.Metrics) Metrics {
	xw := textmetrics.XWidth(tm, s.Font, s.FontSize)
	fh := textmetrics.FontHeight(tm, s.Font, s.FontSize)
	return Metrics{
		Font:             s.Font,
		FontSize:         s.FontSize,
		SampleLength:     s.SampleLength * xw,
		SampleHeight:     s.SampleHeight * fh,
		XSeparation:      s.XSeparation * xw,
		YSeparation:      s.YSeparation * fh,
		ColumnSeparation: s.ColumnSeparation * xw,
		XMargin:          s.XMargin * xw,
		YMargin:          s.YMargin * xw,
		XOffset:          s.XOffset * xw,
		YOffset:          s.YOffset * xw,
		FrameWidth:       s.FrameWidth,
	}
}

// SizeDescription is the space a legend needs together with the grid that
// produced it.
type SizeDescription struct {
	Required geom.Size
	Location Location
	Layout   Layout
}

// Margin returns the margin an outside legend reserves. Inside legends
// reserve nothing.
func (d SizeDescription) Margin() margin.Margin {
	switch d.Location {
	case OutsideLeft:
		return margin.On(margin.Left, d.Required.Width)
	case OutsideRight:
		return margin.On(margin.Right, d.Required.Width)
	case OutsideTop:
		return margin.On(margin.Top, d.Required.Height)
	case OutsideBottom:
		return margin.On(margin.Bottom, d.Required.Height)
	}
	return margin.Margin{}
}

// CalcSize returns the size of layout drawn with m at pos. Each non-zero
// side grows by twice the margin and twice the frame width. The offset
// between plot and legend counts toward the height of outside-top and
// outside-bottom legends and toward the width of outside-left and
// outside-right ones.
func CalcSize(layout Layout, m Metrics, pos Position) SizeDescription {
	w := layout.OverallWidth(m)
	h := layout.OverallHeight(m)
	if w > 0 {
		w += 2*m.XMargin + 2*m.FrameWidth
	}
	if h > 0 {
		h += 2*m.YMargin + 2*m.FrameWidth
	}
	switch pos.Location {
	case OutsideTop, OutsideBottom:
		if h > 0 {
			h += m.YOffset
		}
	case OutsideLeft, OutsideRight:
		if w > 0 {
			w += m.XOffset
		}
	}
	return SizeDescription{
		Required: geom.Size{Width: w, Height: h},
		Location: pos.Location,
		Layout:   layout,
	}
}

// ModifySize re-grids a MultiColumn or MultiRow legend once the available
// plot size is known. Other arrangements are returned unchanged.
//
// Outside-top and outside-bottom legends are limited by width: the column
// count is searched from the item count down to one and the first fit
// wins. Outside-left and outside-right legends are limited by height: the
// search runs upward from one column. Inside legends search upward until
// both dimensions fit. When nothing fits the last candidate is kept.
func ModifySize(desc SizeDescription, m Metrics, pos Position, arr Arrangement, avail geom.Size) SizeDescription {
	n := desc.Layout.Count()
	if !arr.Regrids() || n == 0 {
		return desc
	}

	candidate := func(c int) SizeDescription {
		var l Layout
		if arr == MultiColumn {
			l = Redistribute(desc.Layout, c, ColumnMajor)
		} else {
			l = Redistribute(desc.Layout, ceilDiv(n, c), RowMajor)
		}
		return CalcSize(l, m, pos)
	}

	var best SizeDescription
	switch pos.Location {
	case OutsideTop, OutsideBottom:
		for c := n; c >= 1; c-- {
			best = candidate(c)
			if best.Required.Width <= avail.Width {
				break
			}
		}
	case OutsideLeft, OutsideRight:
		for c := 1; c <= n; c++ {
			best = candidate(c)
			if best.Required.Height <= avail.Height {
				break
			}
		}
	default:
		for c := 1; c <= n; c++ {
			best = candidate(c)
			if best.Required.Width <= avail.Width && best.Required.Height <= avail.Height {
				break
			}
		}
	}
	return best
}

// Place returns the legend box in canvas coordinates. before holds the
// margins that lie between the canvas edge and the legend (border and
// title). Outside legends sit just inside those margins and align with the
// plot rectangle along the other axis; inside legends align within the
// plot rectangle, inset by the offsets. The returned box excludes the
// plot-to-legend offset.
func Place(desc SizeDescription, m Metrics, pos Position, canvas geom.Size, plot geom.Rect, before margin.Margin) geom.Rect {
	w, h := desc.Required.Width, desc.Required.Height
	if w <= 0 || h <= 0 {
		return geom.Rect{}
	}
	switch desc.Location {
	case OutsideTop, OutsideBottom:
		h = math.Max(0, h-m.YOffset)
		y := before.Top
		if desc.Location == OutsideBottom {
			y = canvas.Height - before.Bottom - h
		}
		return geom.Rect{X: align(pos.H, plot.X, plot.Width, w, 0), Y: y, Width: w, Height: h}
	case OutsideLeft, OutsideRight:
		w = math.Max(0, w-m.XOffset)
		x := before.Left
		if desc.Location == OutsideRight {
			x = canvas.Width - before.Right - w
		}
		return geom.Rect{X: x, Y: align(pos.V, plot.Y, plot.Height, h, 0), Width: w, Height: h}
	}
	return geom.Rect{
		X:      align(pos.H, plot.X, plot.Width, w, m.XOffset),
		Y:      align(pos.V, plot.Y, plot.Height, h, m.YOffset),
		Width:  w,
		Height: h,
	}
}

// align positions an extent of length size within [start, start+span].
func align(a Align, start, span, size, inset float64) float64 {
	switch a {
	case AlignCenter:
		return start + (span-size)/2
	case AlignEnd:
		return start + span - size - inset
	}
	return start + inset
}

// Cell is the rectangle of one legend item inside the legend box.
type Cell struct {
	Item   Item
	Sample geom.Rect
	Label  geom.Rect
}

// Cells returns the item rectangles of a legend drawn in box. Cells are
// returned in reading order.
func Cells(layout Layout, m Metrics, box geom.Rect) []Cell {
	if box.Empty() {
		return nil
	}
	rows := layout.RowCount()
	rowY := make([]float64, rows)
	rowH := make([]float64, rows)
	y := box.Y + m.FrameWidth + m.YMargin
	for r := 0; r < rows; r++ {
		rowY[r] = y
		rowH[r] = layout.RowHeight(r, m)
		y += rowH[r] + m.YSeparation
	}

	byID := make(map[int]Cell, layout.Count())
	x := box.X + m.FrameWidth + m.XMargin
	for _, col := range layout.Columns {
		if len(col.Items) == 0 {
			continue
		}
		labelX := x + m.SampleLength + m.XSeparation
		for r, it := range col.Items {
			byID[it.ID] = Cell{
				Item:   it,
				Sample: geom.Rect{X: x, Y: rowY[r] + (rowH[r]-m.SampleHeight)/2, Width: m.SampleLength, Height: m.SampleHeight},
				Label:  geom.Rect{X: labelX, Y: rowY[r], Width: it.Size.Width, Height: rowH[r]},
			}
		}
		x = labelX + col.LabelWidth() + m.ColumnSeparation
	}

	items := layout.Items()
	cells := make([]Cell, 0, len(items))
	for _, it := range items {
		cells = append(cells, byID[it.ID])
	}
	return cells
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

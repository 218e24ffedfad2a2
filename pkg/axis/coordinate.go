package axis

import (
	"math"

	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

// DrawMode selects what an axis draws on one side.
type DrawMode uint8

const (
	DrawLine DrawMode = 1 << iota
	DrawTicks
	DrawTickLabels
	DrawAxisLabel

	DrawNone DrawMode = 0
	DrawAll           = DrawLine | DrawTicks | DrawTickLabels | DrawAxisLabel
)

// Has reports whether all bits of f are set.
func (m DrawMode) Has(f DrawMode) bool { return m&f == f }

// Style holds the distances and fonts of a Coordinate axis. Distances are
// in points; at the 72 DPI used throughout, one point is one pixel.
type Style struct {
	LineOffset        float64
	TickOutside       float64
	TickLabelDistance float64
	LabelDistance     float64

	TickFont      string
	TickFontSize  float64
	LabelFont     string
	LabelFontSize float64

	Mode1 DrawMode
	Mode2 DrawMode
}

// DefaultStyle draws everything on side 1 and only the line on side 2.
var DefaultStyle = Style{
	LineOffset:        0,
	TickOutside:       3,
	TickLabelDistance: 3,
	LabelDistance:     5,
	TickFontSize:      10,
	LabelFontSize:     11,
	Mode1:             DrawAll,
	Mode2:             DrawLine,
}

// Coordinate is a deterministic axis whose tick labels are given
// explicitly. Tick labels are ordered from the range minimum to the
// maximum.
type Coordinate struct {
	name        string
	orientation Orientation
	style       Style
	label       string
	ticks       []string
	min, max    float64
	log         bool

	offset, length float64
}

// Option configures a Coordinate.
type Option func(*Coordinate)

// WithLabel sets the axis label.
func WithLabel(s string) Option { return func(c *Coordinate) { c.label = s } }

// WithTicks sets the tick label strings, ordered from min to max.
func WithTicks(labels ...string) Option {
	return func(c *Coordinate) { c.ticks = append([]string(nil), labels...) }
}

// WithRange sets the axis range.
func WithRange(min, max float64) Option { return func(c *Coordinate) { c.SetRange(min, max) } }

// WithLog switches the axis to logarithmic mode.
func WithLog() Option { return func(c *Coordinate) { c.log = true } }

// WithStyle replaces the default style.
func WithStyle(s Style) Option { return func(c *Coordinate) { c.style = s } }

// WithModes overrides the per-side draw modes.
func WithModes(side1, side2 DrawMode) Option {
	return func(c *Coordinate) { c.style.Mode1, c.style.Mode2 = side1, side2 }
}

// NewCoordinate creates an axis with DefaultStyle and range [0, 10].
func NewCoordinate(name string, o Orientation, opts ...Option) *Coordinate {
	c := &Coordinate{
		name:        name,
		orientation: o,
		style:       DefaultStyle,
		min:         0,
		max:         10,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinate) Name() string             { return c.name }
func (c *Coordinate) Orientation() Orientation { return c.orientation }
func (c *Coordinate) Label() string            { return c.label }
func (c *Coordinate) Ticks() []string          { return c.ticks }
func (c *Coordinate) Style() Style             { return c.style }
func (c *Coordinate) IsLog() bool              { return c.log }

// Range returns the current axis range.
func (c *Coordinate) Range() (min, max float64) { return c.min, c.max }

// SetRange sets the axis range, swapping reversed bounds.
func (c *Coordinate) SetRange(min, max float64) {
	if min > max {
		min, max = max, min
	}
	c.min, c.max = min, max
}

// CalcPlotScaling records the pixel span of the axis.
func (c *Coordinate) CalcPlotScaling(offset, length float64) {
	c.offset, c.length = offset, math.Max(0, length)
}

// Span returns the pixel span set by the last CalcPlotScaling call.
func (c *Coordinate) Span() (offset, length float64) { return c.offset, c.length }

// Size1 implements Axis.
func (c *Coordinate) Size1(tm textmetrics.Metrics) SizeResult { return c.size(tm, c.style.Mode1) }

// Size2 implements Axis.
func (c *Coordinate) Size2(tm textmetrics.Metrics) SizeResult { return c.size(tm, c.style.Mode2) }

// size follows a fixed recipe: line offset, outside tick length, tick label
// distance plus the largest tick label across the axis, then label distance
// plus the label height. The label is drawn parallel to the axis, so its
// height always counts.
func (c *Coordinate) size(tm textmetrics.Metrics, mode DrawMode) SizeResult {
	if mode == DrawNone {
		return SizeResult{}
	}
	s := c.style
	required := s.LineOffset
	if mode.Has(DrawTicks) {
		required += s.TickOutside
	}

	var res SizeResult
	if mode.Has(DrawTickLabels) && len(c.ticks) > 0 {
		required += s.TickLabelDistance + c.maxTickLabel(tm)
		first := tm.Measure(s.TickFont, s.TickFontSize, c.ticks[0])
		last := tm.Measure(s.TickFont, s.TickFontSize, c.ticks[len(c.ticks)-1])
		if c.orientation == Horizontal {
			res.ElongationMin = first.Width / 2
			res.ElongationMax = last.Width / 2
		} else {
			res.ElongationMin = first.Height() / 2
			res.ElongationMax = last.Height() / 2
		}
	}
	if mode.Has(DrawAxisLabel) && c.label != "" {
		required += s.LabelDistance + tm.Measure(s.LabelFont, s.LabelFontSize, c.label).Height()
	}
	res.Required = required
	return res
}

// maxTickLabel is the largest tick label extent perpendicular to the axis.
func (c *Coordinate) maxTickLabel(tm textmetrics.Metrics) float64 {
	var m float64
	for _, t := range c.ticks {
		e := tm.Measure(c.style.TickFont, c.style.TickFontSize, t)
		if c.orientation == Horizontal {
			m = math.Max(m, e.Height())
		} else {
			m = math.Max(m, e.Width)
		}
	}
	return m
}

var _ Axis = (*Coordinate)(nil)

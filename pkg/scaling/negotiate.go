package scaling

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotscale/pkg/aspect"
	"github.com/matzehuels/plotscale/pkg/axis"
	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/legend"
	"github.com/matzehuels/plotscale/pkg/margin"
	"github.com/matzehuels/plotscale/pkg/observability"
	"github.com/matzehuels/plotscale/pkg/series"
	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

// PassCount is the number of negotiation passes. The second pass lets the
// legend grid and the axes react to the first estimate of the plot size.
const PassCount = 2

// Negotiate computes the layout of cfg on a canvas of the given size.
// Negative canvas dimensions are treated as zero, and margins larger than
// the canvas clamp the plot rectangle to zero size. Negotiate never fails.
//
// Axes in cfg receive CalcPlotScaling calls, and XAxis may get a new range
// when cfg.AxisAspect is enabled.
func Negotiate(canvas geom.Size, cfg Config, opts ...Option) *Result {
	start := time.Now()
	o := newOptions(opts)
	canvas = canvas.Clamped()
	observability.Negotiation().OnNegotiateStart(canvas.Width, canvas.Height)

	n := &negotiator{
		canvas: canvas,
		cfg:    cfg,
		tm:     cfg.Metrics,
		logger: o.logger,
	}
	if n.tm == nil {
		n.tm = textmetrics.DefaultMonospace
	}
	n.legendMetrics = cfg.Legend.Style.Resolve(n.tm)

	res := &Result{Canvas: canvas, LegendMetrics: n.legendMetrics}

	var prev *geom.Rect
	var st passState
	for k := 1; k <= PassCount; k++ {
		st = n.pass(k, prev)
		res.Passes[k-1] = st.trace()
		observability.Negotiation().OnPassComplete(k, st.plot.Width, st.plot.Height)
		n.logger.Debug("negotiation pass complete",
			"pass", k,
			"plot", st.plot,
			"legend_columns", st.legend.Layout.ColumnCount())

		if k < PassCount {
			n.scaleAxes(st.plot)
			p := st.plot
			prev = &p
		}
	}

	plot := st.plot
	margins := st.margins
	if cfg.Aspect.Maintain {
		if r, shrink, ok := aspect.CorrectRect(plot, cfg.Aspect.Ratio); ok {
			n.logger.Debug("aspect correction", "ratio", cfg.Aspect.Ratio, "from", plot, "to", r)
			plot = r
			margins = margins.Add(shrink)
			res.AspectShrink = shrink
		}
	}
	n.scaleAxes(plot)

	if cfg.AxisAspect.Maintain {
		if aspect.CorrectRanges(cfg.XAxis, cfg.YAxis, cfg.AxisAspect.Ratio, plot.Size()) {
			lo, hi := cfg.XAxis.Range()
			n.logger.Debug("axis aspect correction", "ratio", cfg.AxisAspect.Ratio, "x_min", lo, "x_max", hi)
			res.AxisAspectApplied = true
			n.scaleAxes(plot)
		}
	}

	res.Plot = plot
	res.Margins = margins
	res.Ledger = st.ledger.Clone()
	res.Legend = st.legend
	res.Axes = st.placements
	res.LegendRect = legend.Place(st.legend, n.legendMetrics, cfg.Legend.Position, canvas, plot,
		st.ledger.SumRange(margin.UserBorder, margin.PlotTitle))

	observability.Negotiation().OnNegotiateComplete(plot.Width, plot.Height, time.Since(start))
	return res
}

type negotiator struct {
	canvas        geom.Size
	cfg           Config
	tm            textmetrics.Metrics
	legendMetrics legend.Metrics
	logger        *log.Logger
}

type passState struct {
	ledger     *margin.Ledger
	margins    margin.Margin
	plot       geom.Rect
	legend     legend.SizeDescription
	firstGuess legend.SizeDescription
	placements []AxisPlacement
}

func (s passState) trace() Pass {
	return Pass{
		Plot:          s.plot,
		Margins:       s.margins,
		LegendGuess:   s.firstGuess.Required,
		LegendSize:    s.legend.Required,
		LegendColumns: s.legend.Layout.ColumnCount(),
		LegendRows:    s.legend.Layout.RowCount(),
	}
}

// pass runs one negotiation pass. avail is the plot rectangle the legend
// re-grid is measured against; nil means the rectangle computed in this
// pass.
func (n *negotiator) pass(k int, avail *geom.Rect) passState {
	st := passState{ledger: margin.NewLedger()}
	l := st.ledger

	l.Set(margin.UserBorder, n.cfg.Border)
	l.Set(margin.PlotTitle, n.titleMargin())

	st.legend = n.buildLegend()
	st.firstGuess = st.legend
	l.Set(margin.Legend, st.legend.Margin())

	st.placements = n.reserveAxes(l)

	l.Set(margin.SeriesOutside, series.OutsideSpace(n.cfg.Series, n.tm))

	st.margins = n.totals(l)
	st.plot = geom.Inset(n.canvas, st.margins)

	if n.cfg.Legend.Visible && n.cfg.Legend.Arrangement.Regrids() {
		target := st.plot
		if avail != nil {
			target = *avail
		}
		modified := legend.ModifySize(st.legend, n.legendMetrics, n.cfg.Legend.Position,
			n.cfg.Legend.Arrangement, target.Size())
		if from, to := st.legend.Layout.ColumnCount(), modified.Layout.ColumnCount(); from != to {
			observability.Negotiation().OnLegendRegrid(from, to)
			n.logger.Debug("legend regrid", "pass", k, "from_columns", from, "to_columns", to,
				"width", modified.Required.Width, "height", modified.Required.Height)
		}
		st.legend = modified
		l.Set(margin.Legend, st.legend.Margin())
		st.margins = n.totals(l)
		st.plot = geom.Inset(n.canvas, st.margins)
	}
	return st
}

func (n *negotiator) titleMargin() margin.Margin {
	t := n.cfg.Title
	if t.Text == "" {
		return margin.Margin{}
	}
	h := n.tm.Measure(t.Font, t.Size, t.Text).Height()
	return margin.Margin{Top: h * TitleSpacing}
}

func (n *negotiator) buildLegend() legend.SizeDescription {
	lc := n.cfg.Legend
	if !lc.Visible {
		return legend.SizeDescription{Location: lc.Position.Location}
	}
	layout := legend.Build(n.cfg.Series, lc.Arrangement, n.legendMetrics, n.tm)
	return legend.CalcSize(layout, n.legendMetrics, lc.Position)
}

// reserveAxes adds the outside size of every axis side under AxisOutside,
// stacking axes on the same side outward in declaration order, then
// reserves label overhangs under AxisOutsideElongation where the margins
// gathered so far do not already cover them.
func (n *negotiator) reserveAxes(l *margin.Ledger) []AxisPlacement {
	var placements []AxisPlacement
	var elongation margin.Margin

	for _, a := range n.cfg.axes() {
		side1, side2 := margin.Bottom, margin.Top
		lo, hi := margin.Left, margin.Right
		if a.Orientation() == axis.Vertical {
			side1, side2 = margin.Left, margin.Right
			lo, hi = margin.Bottom, margin.Top
		}
		for _, s := range []struct {
			side margin.Side
			size axis.SizeResult
		}{
			{side1, a.Size1(n.tm)},
			{side2, a.Size2(n.tm)},
		} {
			if s.size.IsZero() {
				continue
			}
			offset := margin.Of(l.Get(margin.AxisOutside), s.side)
			l.Add(margin.AxisOutside, margin.On(s.side, s.size.Required))
			placements = append(placements, AxisPlacement{
				Axis:   a.Name(),
				Side:   s.side,
				Offset: offset,
				Size:   s.size,
			})
			elongation = maxSide(elongation, lo, s.size.ElongationMin)
			elongation = maxSide(elongation, hi, s.size.ElongationMax)
		}
	}

	var extra margin.Margin
	for _, s := range []margin.Side{margin.Left, margin.Right, margin.Top, margin.Bottom} {
		if d := margin.Of(elongation, s) - l.SumSide(s); d > 0 {
			extra = extra.Add(margin.On(s, d))
		}
	}
	l.Set(margin.AxisOutsideElongation, extra)
	return placements
}

// totals returns the ledger sum with synchronized sides overridden.
func (n *negotiator) totals(l *margin.Ledger) margin.Margin {
	m := l.Sum()
	if s := n.cfg.Sync; s != nil {
		if s.Width {
			m.Left, m.Right = s.From.Left, s.From.Right
		}
		if s.Height {
			m.Top, m.Bottom = s.From.Top, s.From.Bottom
		}
	}
	return m
}

func (n *negotiator) scaleAxes(plot geom.Rect) {
	for _, a := range n.cfg.axes() {
		if a.Orientation() == axis.Horizontal {
			a.CalcPlotScaling(plot.X, plot.Width)
		} else {
			a.CalcPlotScaling(plot.Y, plot.Height)
		}
	}
}

func maxSide(m margin.Margin, s margin.Side, v float64) margin.Margin {
	if v > margin.Of(m, s) {
		return margin.With(m, s, v)
	}
	return m
}

package scene

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotscale/pkg/axis"
	"github.com/matzehuels/plotscale/pkg/cache"
	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/legend"
	"github.com/matzehuels/plotscale/pkg/margin"
	"github.com/matzehuels/plotscale/pkg/scaling"
	"github.com/matzehuels/plotscale/pkg/series"
	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

var sides = map[string]margin.Side{
	"left":   margin.Left,
	"right":  margin.Right,
	"top":    margin.Top,
	"bottom": margin.Bottom,
}

// axisSides maps a side selector to the draw modes of side 1 and side 2.
var axisSides = map[string][2]axis.DrawMode{
	"min":  {axis.DrawAll, axis.DrawLine},
	"max":  {axis.DrawLine, axis.DrawAll},
	"both": {axis.DrawAll, axis.DrawAll},
}

func (a AxisSpec) sideOrDefault() string {
	if a.Side == "" {
		return "min"
	}
	return a.Side
}

// CanvasSize returns the canvas size.
func (s *Scene) CanvasSize() geom.Size {
	return geom.Size{Width: s.Canvas.Width, Height: s.Canvas.Height}
}

// TextMetrics returns the configured measurement backend wrapped in a
// cache. A cache size of zero stores nothing but still reports misses.
func (s *Scene) TextMetrics() textmetrics.Metrics {
	var backend textmetrics.Metrics = textmetrics.DefaultMonospace
	if s.Metrics.Backend == BackendOpenType {
		backend = textmetrics.NewOpenType()
	}
	if s.Metrics.Cache == 0 {
		return textmetrics.NewUncached(backend)
	}
	return textmetrics.NewCached(backend, s.Metrics.Cache)
}

// Config builds the negotiation input. The axes are created fresh on each
// call, so results of one negotiation never leak into the next.
func (s *Scene) Config(tm textmetrics.Metrics) scaling.Config {
	// Validated by Parse.
	pos, _ := legend.ParsePosition(s.Legend.Position)
	arr, _ := legend.ParseArrangement(s.Legend.Layout)

	cfg := scaling.Config{
		Metrics: tm,
		Border:  sidesMargin(s.Border),
		Title:   scaling.Title{Text: s.Title.Text, Font: s.Title.Font, Size: s.Title.Size},
		Legend: scaling.Legend{
			Visible:     s.Legend.Visible,
			Position:    pos,
			Arrangement: arr,
			Style: legend.Style{
				Font:             s.Legend.Font,
				FontSize:         s.Legend.Size,
				SampleLength:     s.Legend.SampleLineLength,
				SampleHeight:     s.Legend.SampleHeight,
				XSeparation:      s.Legend.XSeparation,
				YSeparation:      s.Legend.YSeparation,
				ColumnSeparation: s.Legend.ColumnSeparation,
				XMargin:          s.Legend.XMargin,
				YMargin:          s.Legend.YMargin,
				XOffset:          s.Legend.XOffset,
				YOffset:          s.Legend.YOffset,
				FrameWidth:       s.Legend.FrameWidth,
			},
		},
		XAxis:      s.XAxis.build(axis.Horizontal),
		YAxis:      s.YAxis.build(axis.Vertical),
		Aspect:     scaling.Aspect{Maintain: s.Aspect.Maintain, Ratio: s.Aspect.Ratio},
		AxisAspect: scaling.Aspect{Maintain: s.AxisAspect.Maintain, Ratio: s.AxisAspect.Ratio},
	}
	for i, a := range s.Secondary {
		o := axis.Horizontal
		if a.Orientation == "vertical" {
			o = axis.Vertical
		}
		if a.Name == "" {
			a.Name = fmt.Sprintf("secondary-%d", i+1)
		}
		cfg.Secondary = append(cfg.Secondary, a.build(o))
	}
	for _, sr := range s.Series {
		cfg.Series = append(cfg.Series, sr.build())
	}
	return cfg
}

func (a AxisSpec) build(o axis.Orientation) *axis.Coordinate {
	style := axis.DefaultStyle
	style.TickFont, style.LabelFont = a.Font, a.Font
	if a.TickFontSize > 0 {
		style.TickFontSize = a.TickFontSize
	}
	if a.LabelFontSize > 0 {
		style.LabelFontSize = a.LabelFontSize
	}
	modes := axisSides[a.sideOrDefault()]
	style.Mode1, style.Mode2 = modes[0], modes[1]

	lo, hi := 0.0, 10.0
	opts := []axis.Option{axis.WithStyle(style), axis.WithLabel(a.Label), axis.WithTicks(a.Ticks...)}
	if a.Log {
		lo = 1
		opts = append(opts, axis.WithLog())
	}
	if a.Min != nil {
		lo = *a.Min
	}
	if a.Max != nil {
		hi = *a.Max
	}
	return axis.NewCoordinate(a.Name, o, append(opts, axis.WithRange(lo, hi))...)
}

func (sr SeriesSpec) build() series.Series {
	if sr.Kind == KindColorScale {
		cs := series.NewColorScale(sr.Title, sides[sr.Side], sr.Ticks...)
		cs.Hidden = !sr.IsVisible()
		cs.ScaleName = sr.Name
		return cs
	}
	return series.Static{Name: sr.Title, Hidden: !sr.IsVisible(), Outside: sidesMargin(sr.Outside)}
}

func sidesMargin(sd Sides) margin.Margin {
	return margin.Margin{Left: sd.Left, Right: sd.Right, Top: sd.Top, Bottom: sd.Bottom}
}

// Fingerprint returns a stable hash of the scene after defaults and
// normalization, suitable as a cache key for negotiation results.
func (s *Scene) Fingerprint() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return "", err
	}
	return cache.Hash(buf.Bytes()), nil
}

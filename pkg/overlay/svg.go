package overlay

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/plotscale/pkg/fonts"
	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/legend"
	"github.com/matzehuels/plotscale/pkg/margin"
	"github.com/matzehuels/plotscale/pkg/scaling"
)

var useColors = map[margin.Use]string{
	margin.UserBorder:            "#9e9e9e",
	margin.PlotTitle:             "#ab47bc",
	margin.Legend:                "#26a69a",
	margin.AxisOutside:           "#42a5f5",
	margin.AxisOutsideElongation: "#ffa726",
	margin.SeriesOutside:         "#ef5350",
}

const (
	plotStroke   = "#212121"
	legendStroke = "#00796b"
	aspectFill   = "#eeeeee"
)

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title     string
	cells     bool
	bandNames bool
}

// WithTitle adds a caption in the top-left corner.
func WithTitle(s string) SVGOption { return func(r *svgRenderer) { r.title = s } }

// WithoutCells skips the sample and label rectangles of legend items.
func WithoutCells() SVGOption { return func(r *svgRenderer) { r.cells = false } }

// WithBandNames writes the tag name into each margin band.
func WithBandNames() SVGOption { return func(r *svgRenderer) { r.bandNames = true } }

// Band is one drawn margin contribution.
type Band struct {
	Use  margin.Use
	Side margin.Side
	Rect geom.Rect
}

// Bands converts the result's ledger into rectangles. Contributions are
// stacked from the canvas edge inward in tag order and span the whole
// canvas side. Zero contributions are skipped.
func Bands(res *scaling.Result) []Band {
	if res == nil || res.Ledger == nil {
		return nil
	}
	w, h := res.Canvas.Width, res.Canvas.Height
	var cum margin.Margin
	var bands []Band
	for _, e := range res.Ledger.Entries() {
		for _, s := range []margin.Side{margin.Left, margin.Right, margin.Top, margin.Bottom} {
			v := margin.Of(e.Margin, s)
			if v <= 0 {
				continue
			}
			at := margin.Of(cum, s)
			var r geom.Rect
			switch s {
			case margin.Left:
				r = geom.Rect{X: at, Width: v, Height: h}
			case margin.Right:
				r = geom.Rect{X: w - at - v, Width: v, Height: h}
			case margin.Top:
				r = geom.Rect{Y: at, Width: w, Height: v}
			case margin.Bottom:
				r = geom.Rect{Y: h - at - v, Width: w, Height: v}
			}
			bands = append(bands, Band{Use: e.Use, Side: s, Rect: r})
		}
		cum = cum.Add(e.Margin)
	}
	return bands
}

// RenderSVG draws the result as a standalone SVG document.
func RenderSVG(res *scaling.Result, opts ...SVGOption) []byte {
	r := svgRenderer{cells: true}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := res.Canvas.Width, res.Canvas.Height
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white" stroke="%s"/>`+"\n", w, h, plotStroke)

	for _, b := range Bands(res) {
		rect(&buf, b.Rect, fmt.Sprintf(`fill="%s" fill-opacity="0.35" class="band %s"`, useColors[b.Use], b.Use))
		if r.bandNames {
			text(&buf, b.Rect.CenterX(), b.Rect.CenterY(), 8, b.Use.String())
		}
	}

	if !res.AspectShrink.IsZero() {
		outer := geom.Rect{
			X:      res.Plot.X - res.AspectShrink.Left,
			Y:      res.Plot.Y - res.AspectShrink.Top,
			Width:  res.Plot.Width + res.AspectShrink.Horizontal(),
			Height: res.Plot.Height + res.AspectShrink.Vertical(),
		}
		rect(&buf, outer, fmt.Sprintf(`fill="%s" class="aspect"`, aspectFill))
	}
	rect(&buf, res.Plot, fmt.Sprintf(`fill="none" stroke="%s" stroke-width="1.5" class="plot"`, plotStroke))

	if !res.LegendRect.Empty() {
		rect(&buf, res.LegendRect, fmt.Sprintf(`fill="white" stroke="%s" class="legend"`, legendStroke))
		if r.cells {
			renderCells(&buf, res)
		}
	}

	if r.title != "" {
		text(&buf, 4, 12, 10, r.title)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderCells(buf *bytes.Buffer, res *scaling.Result) {
	m := res.LegendMetrics
	for _, c := range legend.Cells(res.Legend.Layout, m, res.LegendRect) {
		rect(buf, c.Sample, fmt.Sprintf(`fill="%s" class="sample"`, legendStroke))
		rect(buf, c.Label, `fill="none" stroke="#b2dfdb" stroke-dasharray="2,2" class="label"`)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" dominant-baseline="middle">%s</text>`+"\n",
			c.Label.X, c.Label.CenterY(), fonts.FallbackFontFamily, m.FontSize, escapeXML(c.Item.Label))
	}
}

func rect(buf *bytes.Buffer, r geom.Rect, attrs string) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s/>`+"\n", r.X, r.Y, r.Width, r.Height, attrs)
}

func text(buf *bytes.Buffer, x, y, size float64, s string) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" text-anchor="start">%s</text>`+"\n",
		x, y, fonts.FallbackFontFamily, size, escapeXML(s))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

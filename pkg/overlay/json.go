package overlay

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/margin"
	"github.com/matzehuels/plotscale/pkg/scaling"
)

type jsonResult struct {
	Canvas     geom.Size     `json:"canvas"`
	Plot       geom.Rect     `json:"plot"`
	Margins    margin.Margin `json:"margins"`
	Ledger     []jsonEntry   `json:"ledger"`
	Axes       []jsonAxis    `json:"axes,omitempty"`
	Legend     *jsonLegend   `json:"legend,omitempty"`
	Aspect     *geom.Insets  `json:"aspect_shrink,omitempty"`
	AxisAspect bool          `json:"axis_aspect_applied,omitempty"`
	Passes     []jsonPass    `json:"passes"`
	Converged  bool          `json:"converged"`
}

type jsonEntry struct {
	Use    string        `json:"use"`
	Margin margin.Margin `json:"margin"`
}

type jsonAxis struct {
	Axis          string  `json:"axis"`
	Side          string  `json:"side"`
	Offset        float64 `json:"offset"`
	Required      float64 `json:"required"`
	ElongationMin float64 `json:"elongation_min,omitempty"`
	ElongationMax float64 `json:"elongation_max,omitempty"`
}

type jsonLegend struct {
	Location string     `json:"location"`
	Required geom.Size  `json:"required"`
	Rect     geom.Rect  `json:"rect"`
	Columns  [][]string `json:"columns"`
}

type jsonPass struct {
	Plot          geom.Rect `json:"plot"`
	LegendGuess   geom.Size `json:"legend_guess"`
	LegendSize    geom.Size `json:"legend_size"`
	LegendColumns int       `json:"legend_columns"`
	LegendRows    int       `json:"legend_rows"`
}

// RenderJSON encodes the result as indented JSON.
func RenderJSON(res *scaling.Result) ([]byte, error) {
	out := jsonResult{
		Canvas:     res.Canvas,
		Plot:       res.Plot,
		Margins:    res.Margins,
		AxisAspect: res.AxisAspectApplied,
		Converged:  res.Converged(),
	}
	if res.Ledger != nil {
		for _, e := range res.Ledger.Entries() {
			out.Ledger = append(out.Ledger, jsonEntry{Use: e.Use.String(), Margin: e.Margin})
		}
	}
	for _, a := range res.Axes {
		out.Axes = append(out.Axes, jsonAxis{
			Axis:          a.Axis,
			Side:          a.Side.String(),
			Offset:        a.Offset,
			Required:      a.Size.Required,
			ElongationMin: a.Size.ElongationMin,
			ElongationMax: a.Size.ElongationMax,
		})
	}
	if res.Legend.Layout.Count() > 0 {
		l := &jsonLegend{
			Location: res.Legend.Location.String(),
			Required: res.Legend.Required,
			Rect:     res.LegendRect,
		}
		for _, col := range res.Legend.Layout.Columns {
			labels := make([]string, len(col.Items))
			for i, it := range col.Items {
				labels[i] = it.Label
			}
			l.Columns = append(l.Columns, labels)
		}
		out.Legend = l
	}
	if !res.AspectShrink.IsZero() {
		shrink := res.AspectShrink
		out.Aspect = &shrink
	}
	for _, p := range res.Passes {
		out.Passes = append(out.Passes, jsonPass{
			Plot:          p.Plot,
			LegendGuess:   p.LegendGuess,
			LegendSize:    p.LegendSize,
			LegendColumns: p.LegendColumns,
			LegendRows:    p.LegendRows,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

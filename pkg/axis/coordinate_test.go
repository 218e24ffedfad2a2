package axis

import (
	"testing"

	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

var testMetrics = textmetrics.Monospace{Advance: 1, Ascent: 1.5, Descent: 0.5}

var testStyle = Style{
	TickOutside:       3,
	TickLabelDistance: 3,
	LabelDistance:     5,
	TickFontSize:      10,
	LabelFontSize:     10,
	Mode1:             DrawAll,
	Mode2:             DrawLine,
}

func TestCoordinateSize(t *testing.T) {
	tests := []struct {
		name  string
		o     Orientation
		modes [2]DrawMode
		label string
		side  int
		want  SizeResult
	}{
		{
			name:  "horizontal side 1",
			o:     Horizontal,
			modes: [2]DrawMode{DrawAll, DrawLine},
			label: "x",
			side:  1,
			want:  SizeResult{Required: 51, ElongationMin: 5, ElongationMax: 15},
		},
		{
			name:  "vertical side 1",
			o:     Vertical,
			modes: [2]DrawMode{DrawAll, DrawLine},
			label: "y",
			side:  1,
			want:  SizeResult{Required: 61, ElongationMin: 10, ElongationMax: 10},
		},
		{
			name:  "line only",
			o:     Vertical,
			modes: [2]DrawMode{DrawAll, DrawLine},
			side:  2,
			want:  SizeResult{},
		},
		{
			name:  "ticks without labels",
			o:     Horizontal,
			modes: [2]DrawMode{DrawAll, DrawLine | DrawTicks},
			side:  2,
			want:  SizeResult{Required: 3},
		},
		{
			name:  "no axis label text",
			o:     Horizontal,
			modes: [2]DrawMode{DrawAll, DrawLine},
			side:  1,
			want:  SizeResult{Required: 26, ElongationMin: 5, ElongationMax: 15},
		},
		{
			name:  "none",
			o:     Horizontal,
			modes: [2]DrawMode{DrawNone, DrawNone},
			label: "x",
			side:  1,
			want:  SizeResult{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCoordinate("a", tt.o,
				WithStyle(testStyle),
				WithModes(tt.modes[0], tt.modes[1]),
				WithTicks("0", "10", "200"),
				WithLabel(tt.label),
			)
			var got SizeResult
			if tt.side == 1 {
				got = c.Size1(testMetrics)
			} else {
				got = c.Size2(testMetrics)
			}
			if got != tt.want {
				t.Errorf("size = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCoordinateRange(t *testing.T) {
	c := NewCoordinate("x", Horizontal)
	if lo, hi := c.Range(); lo != 0 || hi != 10 {
		t.Errorf("default range = [%v, %v], want [0, 10]", lo, hi)
	}
	c.SetRange(5, -5)
	if lo, hi := c.Range(); lo != -5 || hi != 5 {
		t.Errorf("reversed range = [%v, %v], want [-5, 5]", lo, hi)
	}
	if c.IsLog() {
		t.Error("axis should be linear by default")
	}
	if !NewCoordinate("y", Vertical, WithLog()).IsLog() {
		t.Error("WithLog should set log mode")
	}
}

func TestCoordinateCalcPlotScaling(t *testing.T) {
	c := NewCoordinate("x", Horizontal)
	c.CalcPlotScaling(40, -3)
	if off, l := c.Span(); off != 40 || l != 0 {
		t.Errorf("Span() = (%v, %v), want (40, 0)", off, l)
	}
}

func TestDrawModeHas(t *testing.T) {
	if !DrawAll.Has(DrawTicks | DrawAxisLabel) {
		t.Error("DrawAll should include ticks and axis label")
	}
	if DrawLine.Has(DrawTicks) {
		t.Error("DrawLine should not include ticks")
	}
}

package legend

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/margin"
)

func fixedItems(n int, w, h float64) Layout {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: i, Label: fmt.Sprintf("series %02d", i+1), Size: geom.Size{Width: w, Height: h}}
	}
	return Layout{Columns: []Column{{Items: items}}}
}

func TestCalcSizeSingleColumn(t *testing.T) {
	// Five 100x20 items, 20px sample, 5px x separation, 2px y separation.
	l := fixedItems(5, 100, 20)
	m := Metrics{SampleLength: 20, XSeparation: 5, YSeparation: 2}

	got := CalcSize(l, m, DefaultPosition)
	if want := (geom.Size{Width: 125, Height: 108}); got.Required != want {
		t.Errorf("Required = %+v, want %+v", got.Required, want)
	}

	// Frame and margins extend every non-zero side twice.
	m.XMargin, m.YMargin, m.FrameWidth = 4, 3, 1
	got = CalcSize(l, m, DefaultPosition)
	if want := (geom.Size{Width: 125 + 8 + 2, Height: 108 + 6 + 2}); got.Required != want {
		t.Errorf("Required with frame = %+v, want %+v", got.Required, want)
	}
}

func TestCalcSizeOffsets(t *testing.T) {
	l := fixedItems(2, 50, 10)
	m := Metrics{SampleLength: 10, XOffset: 7, YOffset: 9}
	base := CalcSize(l, m, DefaultPosition).Required

	tests := []struct {
		pos  string
		want geom.Size
	}{
		{"inside-top-right", base},
		{"outside-bottom-left", geom.Size{Width: base.Width, Height: base.Height + 9}},
		{"outside-top-center", geom.Size{Width: base.Width, Height: base.Height + 9}},
		{"outside-left-top", geom.Size{Width: base.Width + 7, Height: base.Height}},
		{"outside-right", geom.Size{Width: base.Width + 7, Height: base.Height}},
	}
	for _, tt := range tests {
		t.Run(tt.pos, func(t *testing.T) {
			pos, err := ParsePosition(tt.pos)
			if err != nil {
				t.Fatal(err)
			}
			if got := CalcSize(l, m, pos).Required; got != tt.want {
				t.Errorf("Required = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalcSizeIdempotent(t *testing.T) {
	l := fixedItems(6, 40, 12)
	m := Metrics{SampleLength: 10, XSeparation: 2, YSeparation: 1, XMargin: 3, YMargin: 3, FrameWidth: 1}
	pos := Position{Location: OutsideRight}
	a := CalcSize(l, m, pos)
	b := CalcSize(a.Layout, m, pos)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("CalcSize not idempotent (-first +second):\n%s", diff)
	}
}

func TestCalcSizeEmpty(t *testing.T) {
	m := Metrics{XMargin: 5, YMargin: 5, FrameWidth: 1, XOffset: 3, YOffset: 3}
	got := CalcSize(Layout{}, m, Position{Location: OutsideBottom})
	if got.Required != (geom.Size{}) {
		t.Errorf("empty legend Required = %+v, want zero", got.Required)
	}
	if !got.Margin().IsZero() {
		t.Errorf("empty legend Margin = %+v, want zero", got.Margin())
	}
}

func TestSizeDescriptionMargin(t *testing.T) {
	d := SizeDescription{Required: geom.Size{Width: 30, Height: 40}}
	tests := []struct {
		loc  Location
		want margin.Margin
	}{
		{Inside, margin.Margin{}},
		{OutsideLeft, margin.Margin{Left: 30}},
		{OutsideRight, margin.Margin{Right: 30}},
		{OutsideTop, margin.Margin{Top: 40}},
		{OutsideBottom, margin.Margin{Bottom: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.loc.String(), func(t *testing.T) {
			d.Location = tt.loc
			if got := d.Margin(); got != tt.want {
				t.Errorf("Margin() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// scenarioMetrics gives every column a width of 20 + 5 + 90 = 115 pixels
// and puts 10 pixels between columns.
var scenarioMetrics = Metrics{SampleLength: 20, XSeparation: 5, YSeparation: 2, ColumnSeparation: 10}

func TestModifySizeOutsideBottomMultiRow(t *testing.T) {
	// Ten items in one row are 1240px wide, far beyond the 400px available.
	pos := Position{Location: OutsideBottom}
	first := CalcSize(Build(makeSeries(10, label), MultiRow, Metrics{FontSize: 10}, testMetrics), scenarioMetrics, pos)
	if first.Required.Width != 1240 {
		t.Fatalf("single row width = %v, want 1240", first.Required.Width)
	}

	got := ModifySize(first, scenarioMetrics, pos, MultiRow, geom.Size{Width: 400, Height: 300})
	// Rows increase until three columns (4+3+3 rows deep) fit: 3*115 + 2*10.
	if got.Required.Width != 365 {
		t.Errorf("width = %v, want 365", got.Required.Width)
	}
	if got.Layout.ColumnCount() != 3 || got.Layout.RowCount() != 4 {
		t.Errorf("grid = %d columns x %d rows, want 3x4", got.Layout.ColumnCount(), got.Layout.RowCount())
	}
	if diff := cmp.Diff(ids(first.Layout.Items()), ids(got.Layout.Items())); diff != "" {
		t.Errorf("item order changed (-before +after):\n%s", diff)
	}
}

func TestModifySizeOutsideBottomMultiColumn(t *testing.T) {
	pos := Position{Location: OutsideBottom}
	first := CalcSize(fixedItems(10, 90, 20), scenarioMetrics, pos)

	t.Run("wide enough for one item per column", func(t *testing.T) {
		got := ModifySize(first, scenarioMetrics, pos, MultiColumn, geom.Size{Width: 2000, Height: 300})
		if diff := cmp.Diff(make10(1), columnSizes(got.Layout)); diff != "" {
			t.Errorf("column sizes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nothing fits keeps last candidate", func(t *testing.T) {
		got := ModifySize(first, scenarioMetrics, pos, MultiColumn, geom.Size{Width: 50, Height: 300})
		if got.Layout.ColumnCount() != 1 {
			t.Errorf("columns = %d, want 1", got.Layout.ColumnCount())
		}
	})
}

func TestModifySizeOutsideRight(t *testing.T) {
	pos := Position{Location: OutsideRight}
	first := CalcSize(fixedItems(10, 90, 20), scenarioMetrics, pos)
	// One column is 10*20 + 9*2 = 218px tall; three columns of 4 rows are 86px.
	got := ModifySize(first, scenarioMetrics, pos, MultiColumn, geom.Size{Width: 400, Height: 100})
	if diff := cmp.Diff([]int{4, 3, 3}, columnSizes(got.Layout)); diff != "" {
		t.Errorf("column sizes mismatch (-want +got):\n%s", diff)
	}
	if got.Required.Height != 86 {
		t.Errorf("height = %v, want 86", got.Required.Height)
	}
}

func TestModifySizeInside(t *testing.T) {
	pos := DefaultPosition
	first := CalcSize(fixedItems(6, 90, 20), scenarioMetrics, pos)
	// One column: 115 x 130. Two columns: 240 x 64.
	got := ModifySize(first, scenarioMetrics, pos, MultiColumn, geom.Size{Width: 300, Height: 100})
	if got.Layout.ColumnCount() != 2 {
		t.Errorf("columns = %d, want 2", got.Layout.ColumnCount())
	}
	if want := (geom.Size{Width: 240, Height: 64}); got.Required != want {
		t.Errorf("Required = %+v, want %+v", got.Required, want)
	}
}

func TestModifySizeFixedArrangements(t *testing.T) {
	pos := Position{Location: OutsideBottom}
	first := CalcSize(fixedItems(10, 90, 20), scenarioMetrics, pos)
	for _, arr := range []Arrangement{OneColumn, OneRow} {
		t.Run(arr.String(), func(t *testing.T) {
			got := ModifySize(first, scenarioMetrics, pos, arr, geom.Size{Width: 10, Height: 10})
			if diff := cmp.Diff(first, got); diff != "" {
				t.Errorf("fixed arrangement changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlace(t *testing.T) {
	canvas := geom.Size{Width: 400, Height: 300}
	plot := geom.Rect{X: 50, Y: 40, Width: 300, Height: 200}
	before := margin.Margin{Left: 5, Right: 5, Top: 20, Bottom: 10}
	m := Metrics{XOffset: 5, YOffset: 10}

	tests := []struct {
		name string
		pos  string
		req  geom.Size
		want geom.Rect
	}{
		{"outside bottom left", "outside-bottom-left", geom.Size{Width: 125, Height: 110},
			geom.Rect{X: 50, Y: 190, Width: 125, Height: 100}},
		{"outside top right", "outside-top-right", geom.Size{Width: 100, Height: 40},
			geom.Rect{X: 250, Y: 20, Width: 100, Height: 30}},
		{"outside right center", "outside-right-center", geom.Size{Width: 65, Height: 100},
			geom.Rect{X: 335, Y: 90, Width: 60, Height: 100}},
		{"outside left bottom", "outside-left-bottom", geom.Size{Width: 45, Height: 50},
			geom.Rect{X: 5, Y: 190, Width: 40, Height: 50}},
		{"inside top right", "inside-top-right", geom.Size{Width: 125, Height: 60},
			geom.Rect{X: 220, Y: 50, Width: 125, Height: 60}},
		{"inside bottom left", "inside-bottom-left", geom.Size{Width: 100, Height: 60},
			geom.Rect{X: 55, Y: 170, Width: 100, Height: 60}},
		{"inside center", "inside-center", geom.Size{Width: 100, Height: 60},
			geom.Rect{X: 150, Y: 110, Width: 100, Height: 60}},
		{"empty", "inside-top-left", geom.Size{}, geom.Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParsePosition(tt.pos)
			if err != nil {
				t.Fatal(err)
			}
			desc := SizeDescription{Required: tt.req, Location: pos.Location}
			if got := Place(desc, m, pos, canvas, plot, before); got != tt.want {
				t.Errorf("Place() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCells(t *testing.T) {
	l := Redistribute(fixedItems(3, 40, 10), 2, ColumnMajor)
	m := Metrics{SampleLength: 20, SampleHeight: 10, XSeparation: 5, YSeparation: 2, ColumnSeparation: 8, XMargin: 1, YMargin: 1, FrameWidth: 1}
	box := geom.Rect{X: 100, Y: 50, Width: 200, Height: 100}

	cells := Cells(l, m, box)
	if len(cells) != 3 {
		t.Fatalf("len(cells) = %d, want 3", len(cells))
	}
	want := []geom.Rect{
		{X: 127, Y: 52, Width: 40, Height: 10},
		{X: 127, Y: 64, Width: 40, Height: 10},
		{X: 200, Y: 52, Width: 40, Height: 10},
	}
	for i, c := range cells {
		if c.Item.ID != i {
			t.Errorf("cell %d holds item %d", i, c.Item.ID)
		}
		if c.Label != want[i] {
			t.Errorf("cell %d label = %+v, want %+v", i, c.Label, want[i])
		}
	}
	if cells[0].Sample != (geom.Rect{X: 102, Y: 52, Width: 20, Height: 10}) {
		t.Errorf("cell 0 sample = %+v", cells[0].Sample)
	}
	if Cells(l, m, geom.Rect{}) != nil {
		t.Error("Cells of an empty box should be nil")
	}
}

func TestStyleResolve(t *testing.T) {
	got := DefaultStyle.Resolve(testMetrics)
	want := Metrics{
		FontSize:         10,
		SampleLength:     30,
		SampleHeight:     20,
		XSeparation:      7.5,
		YSeparation:      4,
		ColumnSeparation: 10,
		XMargin:          5,
		YMargin:          5,
		XOffset:          10,
		YOffset:          10,
		FrameWidth:       1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func label(i int) string { return fmt.Sprintf("series %02d", i+1) }

func make10(v int) []int {
	out := make([]int, 10)
	for i := range out {
		out[i] = v
	}
	return out
}

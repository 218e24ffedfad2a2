package legend

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/series"
	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

// 10px per rune, 20px line height at size 10.
var testMetrics = textmetrics.Monospace{Advance: 1, Ascent: 1.5, Descent: 0.5}

func makeSeries(n int, label func(i int) string) []series.Series {
	list := make([]series.Series, n)
	for i := range list {
		list[i] = series.Static{Name: label(i)}
	}
	return list
}

func makeItems(n int) Layout {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: i, Label: fmt.Sprintf("item %d", i), Size: geom.Size{Width: 60, Height: 20}}
	}
	return Layout{Columns: []Column{{Items: items}}}
}

func ids(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func columnSizes(l Layout) []int {
	out := make([]int, len(l.Columns))
	for i, c := range l.Columns {
		out[i] = len(c.Items)
	}
	return out
}

func TestBuild(t *testing.T) {
	list := []series.Series{
		series.Static{Name: "alpha"},
		series.Static{Name: "hidden", Hidden: true},
		series.Static{Name: ""},
		series.Static{Name: "gamma"},
	}
	m := Metrics{FontSize: 10, SampleHeight: 25}

	t.Run("one column", func(t *testing.T) {
		l := Build(list, MultiColumn, m, testMetrics)
		want := Layout{Columns: []Column{{Items: []Item{
			{ID: 0, Label: "alpha", Size: geom.Size{Width: 50, Height: 25}},
			{ID: 3, Label: "gamma", Size: geom.Size{Width: 50, Height: 25}},
		}}}}
		if diff := cmp.Diff(want, l); diff != "" {
			t.Errorf("Build() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("one row", func(t *testing.T) {
		l := Build(list, OneRow, m, testMetrics)
		if got := columnSizes(l); !cmp.Equal(got, []int{1, 1}) {
			t.Errorf("column sizes = %v, want [1 1]", got)
		}
		if l.Major != RowMajor {
			t.Errorf("Major = %v, want row-major", l.Major)
		}
	})

	t.Run("empty", func(t *testing.T) {
		l := Build(nil, MultiColumn, m, testMetrics)
		if l.Count() != 0 || len(l.Columns) != 0 {
			t.Errorf("Build(nil) = %+v, want empty layout", l)
		}
	})
}

func TestRedistributeEven(t *testing.T) {
	tests := []struct {
		n, k  int
		major Major
		want  []int
	}{
		{7, 3, ColumnMajor, []int{3, 2, 2}},
		{6, 3, ColumnMajor, []int{2, 2, 2}},
		{10, 4, ColumnMajor, []int{3, 3, 2, 2}},
		{5, 0, ColumnMajor, []int{5}},
		{3, 9, ColumnMajor, []int{1, 1, 1}},
		// Rows of 3, 2, 2 dealt across three columns.
		{7, 3, RowMajor, []int{3, 3, 1}},
		{10, 2, RowMajor, []int{2, 2, 2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d items into %d %v", tt.n, tt.k, tt.major), func(t *testing.T) {
			l := Redistribute(makeItems(tt.n), tt.k, tt.major)
			if diff := cmp.Diff(tt.want, columnSizes(l)); diff != "" {
				t.Errorf("column sizes mismatch (-want +got):\n%s", diff)
			}
			if l.Count() != tt.n {
				t.Errorf("Count() = %d, want %d", l.Count(), tt.n)
			}
		})
	}
}

func TestRedistributePreservesOrder(t *testing.T) {
	base := makeItems(11)
	want := ids(base.Items())
	for _, major := range []Major{ColumnMajor, RowMajor} {
		for k := 1; k <= 11; k++ {
			l := Redistribute(base, k, major)
			if diff := cmp.Diff(want, ids(l.Items())); diff != "" {
				t.Fatalf("k=%d %v order mismatch (-want +got):\n%s", k, major, diff)
			}
			// Collapse round trip.
			c := Collapse(l)
			if len(c.Columns) != 1 {
				t.Fatalf("Collapse produced %d columns", len(c.Columns))
			}
			if diff := cmp.Diff(want, ids(c.Items())); diff != "" {
				t.Fatalf("k=%d %v round trip mismatch (-want +got):\n%s", k, major, diff)
			}
		}
	}
}

func TestRedistributeDoesNotAlias(t *testing.T) {
	base := makeItems(4)
	l := Redistribute(base, 2, ColumnMajor)
	l.Columns[0].Items[0].Label = "changed"
	if base.Columns[0].Items[0].Label == "changed" {
		t.Error("Redistribute must not share item storage with its input")
	}
}

func TestRedistributeRegridChain(t *testing.T) {
	// Re-gridding a re-gridded layout is the same as re-gridding the original.
	base := makeItems(9)
	direct := Redistribute(base, 4, RowMajor)
	chained := Redistribute(Redistribute(base, 2, ColumnMajor), 4, RowMajor)
	if diff := cmp.Diff(direct, chained); diff != "" {
		t.Errorf("chained re-grid mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutMetrics(t *testing.T) {
	l := Layout{Columns: []Column{
		{Items: []Item{
			{ID: 0, Size: geom.Size{Width: 40, Height: 10}},
			{ID: 1, Size: geom.Size{Width: 70, Height: 30}},
		}},
		{Items: []Item{
			{ID: 2, Size: geom.Size{Width: 50, Height: 12}},
		}},
	}}
	m := Metrics{SampleLength: 20, SampleHeight: 15, XSeparation: 5, YSeparation: 2, ColumnSeparation: 8}

	if got := l.RowCount(); got != 2 {
		t.Errorf("RowCount() = %d, want 2", got)
	}
	if got := l.RowHeight(0, m); got != 15 {
		t.Errorf("RowHeight(0) = %v, want 15 (sample height wins)", got)
	}
	if got := l.RowHeight(1, m); got != 30 {
		t.Errorf("RowHeight(1) = %v, want 30", got)
	}
	// (20+5+70) + 8 + (20+5+50)
	if got := l.OverallWidth(m); got != 178 {
		t.Errorf("OverallWidth() = %v, want 178", got)
	}
	// 15 + 2 + 30
	if got := l.OverallHeight(m); got != 47 {
		t.Errorf("OverallHeight() = %v, want 47", got)
	}
}

func TestBuildMeasuresLabels(t *testing.T) {
	list := makeSeries(3, func(i int) string { return fmt.Sprintf("s%d", i) })
	l := Build(list, OneColumn, Metrics{FontSize: 10}, testMetrics)
	for _, it := range l.Items() {
		if it.Size != (geom.Size{Width: 20, Height: 20}) {
			t.Errorf("item %d size = %+v, want 20x20", it.ID, it.Size)
		}
	}
}

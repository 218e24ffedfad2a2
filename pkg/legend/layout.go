// Package legend lays out a plot legend as a grid of items.
//
// Each item pairs a sample glyph with a label. Items are packed into
// columns; the grid can be re-dealt into more columns or rows when the
// space around the plot is known. Item order is preserved through every
// re-grid: a column-major layout reads top-to-bottom then left-to-right, a
// row-major layout reads left-to-right then top-to-bottom.
//
// A Layout is a value. Operations that change the grid return a new
// Layout and never modify their argument.
package legend

import (
	"math"

	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/series"
	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

// Item is one legend entry. ID is the index of the series in the list the
// legend was built from. Size.Width is the label width; Size.Height is the
// larger of the label height and the sample height.
type Item struct {
	ID    int
	Label string
	Size  geom.Size
}

// Column is an ordered list of items drawn top to bottom.
type Column struct {
	Items []Item
}

// LabelWidth returns the widest label in the column.
func (c Column) LabelWidth() float64 {
	var w float64
	for _, it := range c.Items {
		w = math.Max(w, it.Size.Width)
	}
	return w
}

// Major is the reading order of a grid.
type Major int

const (
	ColumnMajor Major = iota
	RowMajor
)

func (m Major) String() string {
	if m == RowMajor {
		return "row-major"
	}
	return "column-major"
}

// Layout is a legend grid.
type Layout struct {
	Columns []Column
	Major   Major
}

// Count returns the number of items.
func (l Layout) Count() int {
	n := 0
	for _, c := range l.Columns {
		n += len(c.Items)
	}
	return n
}

// ColumnCount returns the number of non-empty columns.
func (l Layout) ColumnCount() int {
	n := 0
	for _, c := range l.Columns {
		if len(c.Items) > 0 {
			n++
		}
	}
	return n
}

// RowCount returns the length of the longest column.
func (l Layout) RowCount() int {
	n := 0
	for _, c := range l.Columns {
		n = max(n, len(c.Items))
	}
	return n
}

// Items returns all items in reading order.
func (l Layout) Items() []Item {
	items := make([]Item, 0, l.Count())
	if l.Major == RowMajor {
		for r := 0; r < l.RowCount(); r++ {
			for _, c := range l.Columns {
				if r < len(c.Items) {
					items = append(items, c.Items[r])
				}
			}
		}
		return items
	}
	for _, c := range l.Columns {
		items = append(items, c.Items...)
	}
	return items
}

// RowHeight returns the height of row r: the tallest item in that row, but
// never less than the sample height.
func (l Layout) RowHeight(r int, m Metrics) float64 {
	h := m.SampleHeight
	for _, c := range l.Columns {
		if r < len(c.Items) {
			h = math.Max(h, c.Items[r].Size.Height)
		}
	}
	return h
}

// OverallWidth returns the content width: per column the sample length,
// the sample-to-label separation and the widest label, plus the column
// separations in between.
func (l Layout) OverallWidth(m Metrics) float64 {
	var w float64
	n := 0
	for _, c := range l.Columns {
		if len(c.Items) == 0 {
			continue
		}
		if n > 0 {
			w += m.ColumnSeparation
		}
		w += m.SampleLength + m.XSeparation + c.LabelWidth()
		n++
	}
	return w
}

// OverallHeight returns the content height: all row heights plus the row
// separations in between.
func (l Layout) OverallHeight(m Metrics) float64 {
	var h float64
	rows := l.RowCount()
	for r := 0; r < rows; r++ {
		if r > 0 {
			h += m.YSeparation
		}
		h += l.RowHeight(r, m)
	}
	return h
}

// Clone returns a deep copy of l.
func (l Layout) Clone() Layout {
	out := Layout{Major: l.Major, Columns: make([]Column, len(l.Columns))}
	for i, c := range l.Columns {
		out.Columns[i] = Column{Items: append([]Item(nil), c.Items...)}
	}
	return out
}

// Build measures the titles of all visible series with a non-empty title
// and packs them into a single column, or a single row for OneRow and
// MultiRow.
func Build(list []series.Series, arr Arrangement, m Metrics, tm textmetrics.Metrics) Layout {
	var items []Item
	for i, s := range list {
		if s == nil || !s.Visible() || s.Title() == "" {
			continue
		}
		e := tm.Measure(m.Font, m.FontSize, s.Title())
		items = append(items, Item{
			ID:    i,
			Label: s.Title(),
			Size:  geom.Size{Width: e.Width, Height: math.Max(e.Height(), m.SampleHeight)},
		})
	}
	if len(items) == 0 {
		return Layout{}
	}
	if arr.rowWise() {
		return deal(items, 1, RowMajor)
	}
	return deal(items, 1, ColumnMajor)
}

// Collapse returns l as a single column in reading order.
func Collapse(l Layout) Layout {
	items := l.Items()
	if len(items) == 0 {
		return Layout{}
	}
	return Layout{Columns: []Column{{Items: items}}, Major: ColumnMajor}
}

// Redistribute collapses l and deals its items into k columns
// (ColumnMajor) or k rows (RowMajor). The first N mod k groups receive
// ceil(N/k) items and the rest floor(N/k). k is clamped to [1, N].
func Redistribute(l Layout, k int, major Major) Layout {
	items := l.Items()
	if len(items) == 0 {
		return Layout{}
	}
	return deal(items, k, major)
}

func deal(items []Item, k int, major Major) Layout {
	n := len(items)
	k = min(max(k, 1), n)
	q, rem := n/k, n%k

	groups := make([][]Item, k)
	idx := 0
	for g := range groups {
		size := q
		if g < rem {
			size++
		}
		groups[g] = append([]Item(nil), items[idx:idx+size]...)
		idx += size
	}

	if major == ColumnMajor {
		cols := make([]Column, k)
		for i, g := range groups {
			cols[i] = Column{Items: g}
		}
		return Layout{Columns: cols, Major: ColumnMajor}
	}

	// Row r's j-th item goes to column j. Longer rows come first, so every
	// column holds a contiguous prefix of the rows.
	cols := make([]Column, len(groups[0]))
	for _, row := range groups {
		for j, it := range row {
			cols[j].Items = append(cols[j].Items, it)
		}
	}
	return Layout{Columns: cols, Major: RowMajor}
}

// Package margin implements the margin ledger: an ordered accumulator of
// independent margin contributions, each tagged by purpose.
//
// The tags are totally ordered (see [Use]). Besides the total per side,
// the ledger answers range queries over a contiguous run of tags, which
// tells the layout how far a side already extends from the canvas edge
// before a given contribution begins.
//
// A Ledger is owned by a single negotiation and is not safe for
// concurrent mutation.
package margin

import (
	"fmt"

	"github.com/matzehuels/plotscale/pkg/geom"
)

// Use tags the purpose of a margin contribution. The declaration order is
// the canvas-edge-inward order of the contributions.
type Use int

const (
	UserBorder Use = iota
	PlotTitle
	Legend
	AxisOutside
	AxisOutsideElongation
	SeriesOutside

	numUses = int(SeriesOutside) + 1
)

// Uses lists all tags in order.
var Uses = []Use{UserBorder, PlotTitle, Legend, AxisOutside, AxisOutsideElongation, SeriesOutside}

var useNames = [numUses]string{
	UserBorder:            "user-border",
	PlotTitle:             "plot-title",
	Legend:                "legend",
	AxisOutside:           "axis-outside",
	AxisOutsideElongation: "axis-elongation",
	SeriesOutside:         "series-outside",
}

// String returns the tag's kebab-case name.
func (u Use) String() string {
	if !u.valid() {
		return fmt.Sprintf("use(%d)", int(u))
	}
	return useNames[u]
}

func (u Use) valid() bool { return u >= 0 && int(u) < numUses }

// Side selects one canvas side.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// Margin is the padding one contribution reserves on each side.
type Margin = geom.Insets

// Of returns the value of m on side s.
func Of(m Margin, s Side) float64 {
	switch s {
	case Left:
		return m.Left
	case Right:
		return m.Right
	case Top:
		return m.Top
	case Bottom:
		return m.Bottom
	}
	return 0
}

// On returns a Margin that is v on side s and zero elsewhere.
func On(s Side, v float64) Margin {
	return With(Margin{}, s, v)
}

// With returns m with side s replaced by v.
func With(m Margin, s Side, v float64) Margin {
	switch s {
	case Left:
		m.Left = v
	case Right:
		m.Right = v
	case Top:
		m.Top = v
	case Bottom:
		m.Bottom = v
	}
	return m
}

// Entry is one tagged contribution, as returned by [Ledger.Entries].
type Entry struct {
	Use    Use
	Margin Margin
}

// Ledger stores one Margin per Use. The zero value is an empty ledger.
type Ledger struct {
	entries [numUses]Margin
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Set replaces the contribution for u. Negative sides are stored as zero.
// Unknown tags are ignored.
func (l *Ledger) Set(u Use, m Margin) {
	if !u.valid() {
		return
	}
	l.entries[u] = m.Normalized()
}

// Add accumulates m into the contribution for u. Negative sides of m add
// nothing, so side sums never decrease.
func (l *Ledger) Add(u Use, m Margin) {
	if !u.valid() {
		return
	}
	l.entries[u] = l.entries[u].Add(m.Normalized())
}

// Get returns the contribution for u.
func (l *Ledger) Get(u Use) Margin {
	if !u.valid() {
		return Margin{}
	}
	return l.entries[u]
}

// Sum returns the total over all tags.
func (l *Ledger) Sum() Margin {
	var total Margin
	for _, m := range l.entries {
		total = total.Add(m)
	}
	return total
}

// SumSide returns the total over all tags for one side.
func (l *Ledger) SumSide(s Side) float64 {
	return Of(l.Sum(), s)
}

// SumRange returns the total over the tags from start to stop inclusive.
// A reversed range is normalized. A range whose bounds coincide is empty
// and sums to zero; use [Ledger.Get] for a single tag.
func (l *Ledger) SumRange(start, stop Use) Margin {
	if start == stop {
		return Margin{}
	}
	if start > stop {
		start, stop = stop, start
	}
	start = max(start, UserBorder)
	stop = min(stop, SeriesOutside)

	var total Margin
	for u := start; u <= stop; u++ {
		total = total.Add(l.entries[u])
	}
	return total
}

// SumRangeSide returns SumRange(start, stop) for a single side.
func (l *Ledger) SumRangeSide(start, stop Use, s Side) float64 {
	return Of(l.SumRange(start, stop), s)
}

// Entries returns the non-zero contributions in tag order.
func (l *Ledger) Entries() []Entry {
	var out []Entry
	for _, u := range Uses {
		if m := l.entries[u]; !m.IsZero() {
			out = append(out, Entry{Use: u, Margin: m})
		}
	}
	return out
}

// Clone returns a detached copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := *l
	return &c
}

// Package series negotiates the space plot series need outside the plot
// rectangle, such as color bars next to an image.
//
// The negotiator only knows two capabilities. Every series implements
// [Series]; series that draw outside the plot rectangle also implement
// [OutsideSizer]. Concrete series types are irrelevant to the layout.
package series

import (
	"github.com/matzehuels/plotscale/pkg/geom"
	"github.com/matzehuels/plotscale/pkg/textmetrics"
)

// Space is the per-side outside space of a series in pixels.
type Space = geom.Insets

// Series is the capability every plotted series provides.
type Series interface {
	Visible() bool
	Title() string
}

// OutsideSizer is implemented by series that draw outside the plot
// rectangle.
type OutsideSizer interface {
	OutsideSize(tm textmetrics.Metrics) Space
}

// OutsideSpace sums the outside space of every visible series per side.
// Hidden series and series without the OutsideSizer capability contribute
// nothing; negative answers count as zero.
func OutsideSpace(list []Series, tm textmetrics.Metrics) Space {
	var total Space
	for _, s := range list {
		if s == nil || !s.Visible() {
			continue
		}
		o, ok := s.(OutsideSizer)
		if !ok {
			continue
		}
		total = total.Add(o.OutsideSize(tm).Normalized())
	}
	return total
}

// Static is a series with a fixed title and outside space.
type Static struct {
	Name    string
	Hidden  bool
	Outside Space
}

func (s Static) Title() string                         { return s.Name }
func (s Static) Visible() bool                         { return !s.Hidden }
func (s Static) OutsideSize(textmetrics.Metrics) Space { return s.Outside }

var (
	_ Series       = Static{}
	_ OutsideSizer = Static{}
)

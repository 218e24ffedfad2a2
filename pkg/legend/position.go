package legend

import (
	"fmt"
	"strings"
)

// Location is where the legend box lives relative to the plot rectangle.
type Location int

const (
	Inside Location = iota
	OutsideLeft
	OutsideRight
	OutsideTop
	OutsideBottom
)

func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case OutsideLeft:
		return "outside-left"
	case OutsideRight:
		return "outside-right"
	case OutsideTop:
		return "outside-top"
	case OutsideBottom:
		return "outside-bottom"
	}
	return fmt.Sprintf("location(%d)", int(l))
}

// Outside reports whether the legend reserves a margin.
func (l Location) Outside() bool { return l != Inside }

// Align positions the legend box along one axis.
type Align int

const (
	AlignStart Align = iota // left or top
	AlignCenter
	AlignEnd // right or bottom
)

// Position combines a location with the box alignment. For outside-top
// and outside-bottom legends only H is used, for outside-left and
// outside-right only V.
type Position struct {
	Location Location
	H        Align
	V        Align
}

// DefaultPosition is inside the plot, top right.
var DefaultPosition = Position{Location: Inside, H: AlignEnd, V: AlignStart}

func (p Position) String() string {
	h := [...]string{"left", "center", "right"}
	v := [...]string{"top", "center", "bottom"}
	switch p.Location {
	case OutsideTop, OutsideBottom:
		return p.Location.String() + "-" + h[p.H]
	case OutsideLeft, OutsideRight:
		return p.Location.String() + "-" + v[p.V]
	default:
		if p.H == AlignCenter && p.V == AlignCenter {
			return "inside-center"
		}
		return "inside-" + v[p.V] + "-" + h[p.H]
	}
}

var (
	hAligns = map[string]Align{"left": AlignStart, "center": AlignCenter, "right": AlignEnd}
	vAligns = map[string]Align{"top": AlignStart, "center": AlignCenter, "bottom": AlignEnd}
)

// ParsePosition parses forms like "outside-bottom-left", "outside-right-top"
// or "inside-top-right". A missing alignment means center.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "-")
	bad := fmt.Errorf("invalid legend position %q", s)
	if len(parts) == 0 || len(parts) > 3 {
		return Position{}, bad
	}

	p := Position{H: AlignCenter, V: AlignCenter}
	switch parts[0] {
	case "inside":
		rest := parts[1:]
		if len(rest) == 1 && rest[0] == "center" {
			return p, nil
		}
		if len(rest) != 2 {
			return Position{}, bad
		}
		v, okV := vAligns[rest[0]]
		h, okH := hAligns[rest[1]]
		if !okV || !okH {
			return Position{}, bad
		}
		p.Location, p.H, p.V = Inside, h, v
		return p, nil
	case "outside":
		if len(parts) < 2 {
			return Position{}, bad
		}
		var ok bool
		switch parts[1] {
		case "top", "bottom":
			p.Location = OutsideTop
			if parts[1] == "bottom" {
				p.Location = OutsideBottom
			}
			if len(parts) == 3 {
				if p.H, ok = hAligns[parts[2]]; !ok {
					return Position{}, bad
				}
			}
		case "left", "right":
			p.Location = OutsideLeft
			if parts[1] == "right" {
				p.Location = OutsideRight
			}
			if len(parts) == 3 {
				if p.V, ok = vAligns[parts[2]]; !ok {
					return Position{}, bad
				}
			}
		default:
			return Position{}, bad
		}
		return p, nil
	}
	return Position{}, bad
}

// Arrangement selects how the legend grid may grow.
type Arrangement int

const (
	OneColumn Arrangement = iota
	OneRow
	MultiColumn
	MultiRow
)

var arrangementNames = [...]string{"one-column", "one-row", "multi-column", "multi-row"}

func (a Arrangement) String() string {
	if a < 0 || int(a) >= len(arrangementNames) {
		return fmt.Sprintf("arrangement(%d)", int(a))
	}
	return arrangementNames[a]
}

// ParseArrangement parses "one-column", "one-row", "multi-column" or
// "multi-row".
func ParseArrangement(s string) (Arrangement, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range arrangementNames {
		if n == name {
			return Arrangement(i), nil
		}
	}
	return 0, fmt.Errorf("invalid legend layout %q (want one of %s)", s, strings.Join(arrangementNames[:], ", "))
}

// Regrids reports whether the second pass may change the grid.
func (a Arrangement) Regrids() bool { return a == MultiColumn || a == MultiRow }

func (a Arrangement) rowWise() bool { return a == OneRow || a == MultiRow }

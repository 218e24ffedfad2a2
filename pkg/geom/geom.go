// Package geom provides the small pixel-space value types shared by the
// layout negotiation packages.
//
// All coordinates are in pixels with the origin at the top-left corner of
// the canvas and y growing downward. None of the types carry behavior that
// depends on a drawing backend.
package geom

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Clamped returns s with negative dimensions replaced by zero.
func (s Size) Clamped() Size {
	return Size{Width: NonNegative(s.Width), Height: NonNegative(s.Height)}
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Inset shrinks the canvas-sized rectangle [0,0,size] by the given insets.
// Dimensions that would become negative are clamped to zero, and the
// origin is clamped to the canvas so degenerate rectangles stay on it.
func Inset(size Size, in Insets) Rect {
	return Rect{
		X:      min(NonNegative(in.Left), NonNegative(size.Width)),
		Y:      min(NonNegative(in.Top), NonNegative(size.Height)),
		Width:  NonNegative(size.Width - in.Left - in.Right),
		Height: NonNegative(size.Height - in.Top - in.Bottom),
	}
}

// Insets holds one value per canvas side.
type Insets struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Add returns the side-wise sum of i and o.
func (i Insets) Add(o Insets) Insets {
	return Insets{
		Left:   i.Left + o.Left,
		Right:  i.Right + o.Right,
		Top:    i.Top + o.Top,
		Bottom: i.Bottom + o.Bottom,
	}
}

// Normalized returns i with negative sides replaced by zero.
func (i Insets) Normalized() Insets {
	return Insets{
		Left:   NonNegative(i.Left),
		Right:  NonNegative(i.Right),
		Top:    NonNegative(i.Top),
		Bottom: NonNegative(i.Bottom),
	}
}

// Horizontal returns Left+Right.
func (i Insets) Horizontal() float64 { return i.Left + i.Right }

// Vertical returns Top+Bottom.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

// IsZero reports whether every side is zero.
func (i Insets) IsZero() bool { return i == Insets{} }

// NonNegative clamps v to be at least zero.
func NonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// Package textmetrics measures rendered text for layout.
//
// Layout code never shapes text itself. It asks a [Metrics] implementation
// how wide a string is and how far it reaches above and below the baseline
// at a given font and size. Three implementations are provided:
//
//   - [Monospace]: deterministic fixed-advance metrics for tests and
//     terminal previews
//   - [OpenType]: real glyph advances from the embedded Go fonts
//   - [Cached]: a memoizing wrapper around any other implementation
package textmetrics

import "unicode/utf8"

// Extent is the measured size of a single line of text in pixels.
type Extent struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (e Extent) Height() float64 { return e.Ascent + e.Descent }

// Metrics measures a line of text set in a font family at a size in pixels.
// Implementations must be deterministic: the same arguments always produce
// the same extent.
type Metrics interface {
	Measure(font string, size float64, text string) Extent
}

// XWidth returns the width of the letter 'X', the unit font-relative
// layout distances are expressed in.
func XWidth(m Metrics, font string, size float64) float64 {
	return m.Measure(font, size, "X").Width
}

// FontHeight returns the ascent + descent of the font at size.
func FontHeight(m Metrics, font string, size float64) float64 {
	return m.Measure(font, size, "X").Height()
}

// Monospace measures every rune with the same advance. All fields are
// fractions of the font size.
type Monospace struct {
	Advance float64
	Ascent  float64
	Descent float64
}

// DefaultMonospace approximates a typical sans-serif face.
var DefaultMonospace = Monospace{Advance: 0.6, Ascent: 0.8, Descent: 0.2}

// Measure implements Metrics. The font name is ignored. Empty text and
// non-positive sizes measure as zero.
func (m Monospace) Measure(_ string, size float64, text string) Extent {
	if text == "" || size <= 0 {
		return Extent{}
	}
	n := float64(utf8.RuneCountInString(text))
	return Extent{
		Width:   n * m.Advance * size,
		Ascent:  m.Ascent * size,
		Descent: m.Descent * size,
	}
}

var _ Metrics = Monospace{}

// Package scene loads plot scene descriptions from TOML files.
//
// A scene names everything a negotiation reads (canvas size, border,
// title, legend, axes, series and aspect constraints) without any data.
// [Parse] decodes and validates a scene; [Scene.Config] turns it into a
// [scaling.Config] ready for [scaling.Negotiate].
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults. Negative sizes and distances are clamped to zero with a
// warning instead.
package scene

import "github.com/matzehuels/plotscale/pkg/legend"

// Defaults applied before decoding.
const (
	DefaultWidth        = 640
	DefaultHeight       = 480
	DefaultBackend      = BackendOpenType
	DefaultTitleSize    = 14
	DefaultTickSize     = 10
	DefaultLabelSize    = 11
	DefaultPosition     = "inside-top-right"
	DefaultArrangement  = "one-column"
	DefaultCacheEntries = 4096
)

// Text measurement backends.
const (
	BackendOpenType  = "opentype"
	BackendMonospace = "monospace"
)

// Series kinds.
const (
	KindLine       = "line"
	KindStatic     = "static"
	KindColorScale = "color-scale"
)

// Scene is the decoded form of a scene file.
type Scene struct {
	Canvas     Canvas       `toml:"canvas"`
	Metrics    MetricsSpec  `toml:"metrics"`
	Border     Sides        `toml:"border"`
	Title      TitleSpec    `toml:"title"`
	Legend     LegendSpec   `toml:"legend"`
	XAxis      AxisSpec     `toml:"x_axis"`
	YAxis      AxisSpec     `toml:"y_axis"`
	Secondary  []AxisSpec   `toml:"secondary_axis"`
	Series     []SeriesSpec `toml:"series"`
	Aspect     AspectSpec   `toml:"aspect"`
	AxisAspect AspectSpec   `toml:"axis_aspect"`
}

// Canvas is the drawing surface size in pixels.
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// MetricsSpec selects the text measurement backend.
type MetricsSpec struct {
	Backend string `toml:"backend"`
	// Cache is the number of memoized measurements; zero disables caching.
	Cache int `toml:"cache"`
}

// Sides holds one pixel value per canvas side.
type Sides struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
}

// TitleSpec is the plot title.
type TitleSpec struct {
	Text string  `toml:"text"`
	Font string  `toml:"font"`
	Size float64 `toml:"size"`
}

// LegendSpec configures the legend. Distances use the font-relative units
// of legend.Style.
type LegendSpec struct {
	Visible          bool    `toml:"visible"`
	Position         string  `toml:"position"`
	Layout           string  `toml:"layout"`
	Font             string  `toml:"font"`
	Size             float64 `toml:"size"`
	SampleLineLength float64 `toml:"sample_line_length"`
	SampleHeight     float64 `toml:"sample_height"`
	XSeparation      float64 `toml:"x_separation"`
	YSeparation      float64 `toml:"y_separation"`
	ColumnSeparation float64 `toml:"column_separation"`
	XMargin          float64 `toml:"x_margin"`
	YMargin          float64 `toml:"y_margin"`
	XOffset          float64 `toml:"x_offset"`
	YOffset          float64 `toml:"y_offset"`
	FrameWidth       float64 `toml:"frame_width"`
}

// AxisSpec describes a coordinate axis. Orientation is only read for
// secondary axes. Side selects where ticks and labels are drawn: "min"
// (bottom or left), "max" (top or right) or "both".
type AxisSpec struct {
	Name          string   `toml:"name"`
	Orientation   string   `toml:"orientation"`
	Label         string   `toml:"label"`
	Ticks         []string `toml:"ticks"`
	Min           *float64 `toml:"min"`
	Max           *float64 `toml:"max"`
	Log           bool     `toml:"log"`
	Side          string   `toml:"side"`
	Font          string   `toml:"font"`
	TickFontSize  float64  `toml:"tick_font_size"`
	LabelFontSize float64  `toml:"label_font_size"`
}

// SeriesSpec describes one series. Visible defaults to true.
type SeriesSpec struct {
	Title   string   `toml:"title"`
	Visible *bool    `toml:"visible"`
	Kind    string   `toml:"kind"`
	Side    string   `toml:"side"`
	Ticks   []string `toml:"ticks"`
	Name    string   `toml:"name"`
	Outside Sides    `toml:"outside"`
}

// IsVisible reports whether the series is drawn.
func (s SeriesSpec) IsVisible() bool { return s.Visible == nil || *s.Visible }

// AspectSpec is an optional aspect ratio constraint.
type AspectSpec struct {
	Maintain bool    `toml:"maintain"`
	Ratio    float64 `toml:"ratio"`
}

// Default returns a scene with every default filled in.
func Default() *Scene {
	st := legend.DefaultStyle
	return &Scene{
		Canvas:  Canvas{Width: DefaultWidth, Height: DefaultHeight},
		Metrics: MetricsSpec{Backend: DefaultBackend, Cache: DefaultCacheEntries},
		Title:   TitleSpec{Size: DefaultTitleSize},
		Legend: LegendSpec{
			Visible:          true,
			Position:         DefaultPosition,
			Layout:           DefaultArrangement,
			Size:             st.FontSize,
			SampleLineLength: st.SampleLength,
			SampleHeight:     st.SampleHeight,
			XSeparation:      st.XSeparation,
			YSeparation:      st.YSeparation,
			ColumnSeparation: st.ColumnSeparation,
			XMargin:          st.XMargin,
			YMargin:          st.YMargin,
			XOffset:          st.XOffset,
			YOffset:          st.YOffset,
			FrameWidth:       st.FrameWidth,
		},
		XAxis:      AxisSpec{Name: "x", Side: "min"},
		YAxis:      AxisSpec{Name: "y", Side: "min"},
		Aspect:     AspectSpec{Ratio: 1},
		AxisAspect: AspectSpec{Ratio: 1},
	}
}

package scene

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotscale/pkg/errors"
	"github.com/matzehuels/plotscale/pkg/fonts"
	"github.com/matzehuels/plotscale/pkg/legend"
)

// Load reads and validates the scene file at path. A nil logger discards
// normalization warnings.
func Load(path string, logger *log.Logger) (*Scene, error) {
	if err := errors.ValidateScenePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data, logger)
}

// Parse decodes a scene from TOML, fills defaults and validates it.
func Parse(data []byte, logger *log.Logger) (*Scene, error) {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	s := Default()
	md, err := toml.Decode(string(data), s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.normalize(logger)
	return s, nil
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks a scene for values the negotiation cannot use. It is
// called by Parse and can be called again after fields were changed.
func (s *Scene) Validate() error {
	if err := s.validateNumbers(); err != nil {
		return err
	}

	switch s.Metrics.Backend {
	case BackendOpenType, BackendMonospace:
	default:
		return errors.New(errors.ErrCodeInvalidMetrics, "unknown metrics backend %q", s.Metrics.Backend)
	}
	if s.Metrics.Cache < 0 {
		return errors.New(errors.ErrCodeInvalidMetrics, "metrics cache must not be negative, got %d", s.Metrics.Cache)
	}

	if err := validateFont("title", s.Title.Font); err != nil {
		return err
	}
	if s.Title.Text != "" {
		if err := errors.ValidateFontSize("title", s.Title.Size); err != nil {
			return err
		}
	}

	if err := s.validateLegend(); err != nil {
		return err
	}

	if err := validateAxis("x_axis", s.XAxis, false); err != nil {
		return err
	}
	if err := validateAxis("y_axis", s.YAxis, false); err != nil {
		return err
	}
	for i, a := range s.Secondary {
		if err := validateAxis(fmt.Sprintf("secondary_axis[%d]", i), a, true); err != nil {
			return err
		}
	}

	for i, sr := range s.Series {
		if err := validateSeries(i, sr); err != nil {
			return err
		}
	}

	if err := errors.ValidateRatio("aspect", s.Aspect.Maintain, s.Aspect.Ratio); err != nil {
		return err
	}
	return errors.ValidateRatio("axis_aspect", s.AxisAspect.Maintain, s.AxisAspect.Ratio)
}

func (s *Scene) validateNumbers() error {
	checks := []struct {
		what   string
		values []float64
	}{
		{"canvas", []float64{s.Canvas.Width, s.Canvas.Height}},
		{"border", sidesValues(s.Border)},
		{"title size", []float64{s.Title.Size}},
		{"legend", legendValues(s.Legend)},
		{"aspect ratio", []float64{s.Aspect.Ratio, s.AxisAspect.Ratio}},
	}
	for _, c := range checks {
		if err := errors.ValidateFinite(c.what, c.values...); err != nil {
			return err
		}
	}
	if err := errors.ValidateFinite("x_axis range", s.XAxis.rangeValues()...); err != nil {
		return err
	}
	if err := errors.ValidateFinite("y_axis range", s.YAxis.rangeValues()...); err != nil {
		return err
	}
	for i, a := range s.Secondary {
		if err := errors.ValidateFinite(fmt.Sprintf("secondary_axis[%d] range", i), a.rangeValues()...); err != nil {
			return err
		}
	}
	for i, sr := range s.Series {
		if err := errors.ValidateFinite(fmt.Sprintf("series[%d] outside", i), sidesValues(sr.Outside)...); err != nil {
			return err
		}
	}
	return nil
}

// rangeValues returns the explicitly set bounds of the axis.
func (a AxisSpec) rangeValues() []float64 {
	var vs []float64
	for _, v := range []*float64{a.Min, a.Max} {
		if v != nil {
			vs = append(vs, *v)
		}
	}
	return vs
}

func (s *Scene) validateLegend() error {
	if err := validateFont("legend", s.Legend.Font); err != nil {
		return err
	}
	if err := errors.ValidateFontSize("legend", s.Legend.Size); err != nil {
		return err
	}
	if _, err := legend.ParsePosition(s.Legend.Position); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPosition, err, "legend position")
	}
	if _, err := legend.ParseArrangement(s.Legend.Layout); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLayout, err, "legend layout")
	}
	return nil
}

func validateAxis(what string, a AxisSpec, secondary bool) error {
	if secondary {
		switch a.Orientation {
		case "horizontal", "vertical":
		default:
			return errors.New(errors.ErrCodeInvalidAxis, "%s: orientation must be horizontal or vertical, got %q", what, a.Orientation)
		}
	} else if a.Orientation != "" {
		return errors.New(errors.ErrCodeInvalidAxis, "%s: orientation is fixed for primary axes", what)
	}
	if _, ok := axisSides[a.sideOrDefault()]; !ok {
		return errors.New(errors.ErrCodeInvalidAxis, "%s: side must be min, max or both, got %q", what, a.Side)
	}
	if a.Min != nil && a.Max != nil && *a.Min == *a.Max {
		return errors.New(errors.ErrCodeInvalidAxis, "%s: empty range [%v, %v]", what, *a.Min, *a.Max)
	}
	if a.Log {
		if (a.Min != nil && *a.Min <= 0) || (a.Max != nil && *a.Max <= 0) {
			return errors.New(errors.ErrCodeInvalidAxis, "%s: logarithmic range must be positive", what)
		}
	}
	if err := validateFont(what, a.Font); err != nil {
		return err
	}
	for _, size := range []float64{a.TickFontSize, a.LabelFontSize} {
		if size != 0 {
			if err := errors.ValidateFontSize(what, size); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateSeries(i int, sr SeriesSpec) error {
	switch sr.Kind {
	case "", KindLine, KindStatic:
	case KindColorScale:
		if _, ok := sides[sr.Side]; !ok {
			return errors.New(errors.ErrCodeInvalidSeries, "series[%d]: color-scale side must be left, right, top or bottom, got %q", i, sr.Side)
		}
	default:
		return errors.New(errors.ErrCodeInvalidSeries, "series[%d]: unknown kind %q", i, sr.Kind)
	}
	return nil
}

func validateFont(what, family string) error {
	if _, ok := fonts.TTF(family); !ok {
		return errors.New(errors.ErrCodeFontNotFound, "%s: unknown font %q (known: %s)", what, family, strings.Join(fonts.Families(), ", "))
	}
	return nil
}

// =============================================================================
// Normalization
// =============================================================================

// normalize clamps negative sizes and distances to zero.
func (s *Scene) normalize(logger *log.Logger) {
	clamp := func(what string, v *float64) {
		if *v < 0 {
			logger.Warn("negative value clamped to zero", "field", what, "value", *v)
			*v = 0
		}
	}
	clampSides := func(what string, sd *Sides) {
		clamp(what+".left", &sd.Left)
		clamp(what+".right", &sd.Right)
		clamp(what+".top", &sd.Top)
		clamp(what+".bottom", &sd.Bottom)
	}

	clamp("canvas.width", &s.Canvas.Width)
	clamp("canvas.height", &s.Canvas.Height)
	clampSides("border", &s.Border)
	for i := range s.Series {
		clampSides(fmt.Sprintf("series[%d].outside", i), &s.Series[i].Outside)
	}

	l := &s.Legend
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"sample_line_length", &l.SampleLineLength},
		{"sample_height", &l.SampleHeight},
		{"x_separation", &l.XSeparation},
		{"y_separation", &l.YSeparation},
		{"column_separation", &l.ColumnSeparation},
		{"x_margin", &l.XMargin},
		{"y_margin", &l.YMargin},
		{"x_offset", &l.XOffset},
		{"y_offset", &l.YOffset},
		{"frame_width", &l.FrameWidth},
	} {
		clamp("legend."+f.name, f.v)
	}
}

func sidesValues(sd Sides) []float64 {
	return []float64{sd.Left, sd.Right, sd.Top, sd.Bottom}
}

func legendValues(l LegendSpec) []float64 {
	return []float64{
		l.Size, l.SampleLineLength, l.SampleHeight, l.XSeparation, l.YSeparation,
		l.ColumnSeparation, l.XMargin, l.YMargin, l.XOffset, l.YOffset, l.FrameWidth,
	}
}

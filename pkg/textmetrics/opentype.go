package textmetrics

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/plotscale/pkg/fonts"
)

// OpenType measures text with the embedded Go fonts at 72 DPI, so one
// point equals one pixel. Unknown families fall back to [fonts.Default].
//
// Faces are created lazily per (family, size) and reused. An OpenType
// value is safe for concurrent use; face access is serialized because
// font.Face implementations are not.
type OpenType struct {
	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	family string
	size   float64
}

// NewOpenType returns an OpenType backend with no faces loaded.
func NewOpenType() *OpenType {
	return &OpenType{faces: make(map[faceKey]font.Face)}
}

// Measure implements Metrics.
func (o *OpenType) Measure(family string, size float64, text string) Extent {
	if text == "" || size <= 0 {
		return Extent{}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	face, err := o.face(family, size)
	if err != nil {
		return Extent{}
	}
	m := face.Metrics()
	return Extent{
		Width:   toFloat(font.MeasureString(face, text)),
		Ascent:  toFloat(m.Ascent),
		Descent: toFloat(m.Descent),
	}
}

// Close releases all cached faces.
func (o *OpenType) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for k, f := range o.faces {
		_ = f.Close()
		delete(o.faces, k)
	}
	return nil
}

func (o *OpenType) face(family string, size float64) (font.Face, error) {
	if _, ok := fonts.TTF(family); !ok {
		family = fonts.Default
	}
	key := faceKey{family, size}
	if f, ok := o.faces[key]; ok {
		return f, nil
	}

	parsed, err := fonts.Parsed(family)
	if err != nil {
		return nil, err
	}
	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	o.faces[key] = f
	return f, nil
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

var _ Metrics = (*OpenType)(nil)

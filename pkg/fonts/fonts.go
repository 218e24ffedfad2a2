// Package fonts provides the embedded font files used for text measurement.
//
// The Go font family ships with golang.org/x/image as TTF byte slices, so
// the fonts are compiled into the binary without external files. Parsed
// fonts are cached after the first request.
package fonts

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Family names accepted by TTF and Parsed.
const (
	Regular = "go"
	Bold    = "go-bold"
	Italic  = "go-italic"
	Mono    = "go-mono"
)

// Default is the family used when a font name is empty.
const Default = Regular

// FontFamily is the CSS font-family name for the embedded regular font.
const FontFamily = "Go"

// FallbackFontFamily provides fallback fonts for viewers without the Go fonts.
const FallbackFontFamily = "'" + FontFamily + "', 'Helvetica Neue', 'Arial', sans-serif"

var ttfs = map[string][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
	Italic:  goitalic.TTF,
	Mono:    gomono.TTF,
}

// TTF returns the raw font data for a family name. Names are matched
// case-insensitively; the empty name selects Default.
func TTF(family string) ([]byte, bool) {
	data, ok := ttfs[normalize(family)]
	return data, ok
}

// Families returns the known family names in sorted order.
func Families() []string {
	names := make([]string, 0, len(ttfs))
	for name := range ttfs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type parsedFont struct {
	once sync.Once
	font *opentype.Font
	err  error
}

var (
	parsedMu sync.Mutex
	parsed   = map[string]*parsedFont{}
)

// Parsed returns the parsed OpenType font for a family. Each family is
// parsed once per process.
func Parsed(family string) (*opentype.Font, error) {
	name := normalize(family)
	data, ok := ttfs[name]
	if !ok {
		return nil, fmt.Errorf("unknown font family %q (known: %s)", family, strings.Join(Families(), ", "))
	}

	parsedMu.Lock()
	p, ok := parsed[name]
	if !ok {
		p = &parsedFont{}
		parsed[name] = p
	}
	parsedMu.Unlock()

	p.once.Do(func() {
		p.font, p.err = opentype.Parse(data)
	})
	return p.font, p.err
}

func normalize(family string) string {
	name := strings.ToLower(strings.TrimSpace(family))
	if name == "" {
		return Default
	}
	return name
}

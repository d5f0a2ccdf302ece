package text

import (
	"sync"
	"unicode/utf8"
)

// Measurer provides font metrics for laying out a single line of text.
// Measure returns the advance width of s and its height above the
// baseline, both in points, when set in font f at size points.
//
// Implementations must be safe for concurrent use.
type Measurer interface {
	Measure(s string, f Font, size float64) (width, height float64)
}

// measureKey identifies a measurement in the measurement cache.
type measureKey struct {
	text string
	font Font
	size float64
}

// extent is a cached measurement.
type extent struct {
	width, height float64
}

// OpenTypeMeasurer measures text with golang.org/x/image/font/opentype:
// glyph advances plus pair kerning, and the font ascent as height.
type OpenTypeMeasurer struct {
	fonts *FontSet
	cache *Cache[measureKey, extent]
}

// NewOpenTypeMeasurer creates a measurer. Without WithFontSet it measures
// with GoFonts.
func NewOpenTypeMeasurer(opts ...MeasurerOption) (*OpenTypeMeasurer, error) {
	cfg := defaultMeasurerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &OpenTypeMeasurer{
		fonts: cfg.fonts,
		cache: NewCache[measureKey, extent](cfg.cacheSize),
	}, nil
}

// Measure implements Measurer.
func (m *OpenTypeMeasurer) Measure(s string, f Font, size float64) (width, height float64) {
	e := m.cache.GetOrCreate(measureKey{s, f, size}, func() extent {
		src, err := m.fonts.Source(f)
		if err != nil {
			slogger().Warn("text: measuring with estimate", "font", f.String(), "err", err)
			w, h := EstimateMeasurer{}.Measure(s, f, size)
			return extent{w, h}
		}
		return extent{src.Advance(s, size), src.Metrics(size).Ascent}
	})
	return e.width, e.height
}

// EstimateMeasurer approximates metrics without font files: every rune
// advances AdvanceRatio times the size, and the height is HeightRatio
// times the size. Zero ratios select 0.6 for monospace fonts, 0.5 for
// other fonts, and 0.7 for the height.
type EstimateMeasurer struct {
	AdvanceRatio float64
	HeightRatio  float64
}

// Measure implements Measurer.
func (e EstimateMeasurer) Measure(s string, f Font, size float64) (width, height float64) {
	adv := e.AdvanceRatio
	if adv == 0 {
		adv = 0.5
		if f.IsMonospace() {
			adv = 0.6
		}
	}
	h := e.HeightRatio
	if h == 0 {
		h = 0.7
	}
	return float64(utf8.RuneCountInString(s)) * adv * size, h * size
}

// DefaultMeasurer returns the shared OpenTypeMeasurer over GoFonts, or an
// EstimateMeasurer if the Go fonts cannot be loaded.
var DefaultMeasurer = sync.OnceValue(func() Measurer {
	m, err := NewOpenTypeMeasurer()
	if err != nil {
		slogger().Warn("text: falling back to estimated metrics", "err", err)
		return EstimateMeasurer{}
	}
	return m
})

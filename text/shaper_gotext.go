package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// ShapingMeasurer measures text after HarfBuzz shaping with
// go-text/typesetting, so ligatures, contextual forms and GPOS kerning are
// reflected in the width. The height is the ascent of the shaped line.
//
// ShapingMeasurer is safe for concurrent use. It caches parsed font.Font
// objects (which are thread-safe) and creates a lightweight font.Face per
// call (font.Face is NOT safe for concurrent use). HarfbuzzShaper instances
// are pooled since they are not concurrent-safe either.
type ShapingMeasurer struct {
	fonts    *FontSet
	language language.Language
	cache    *Cache[measureKey, extent]

	shaperPool sync.Pool

	// mu protects fontCache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewShapingMeasurer creates a shaping measurer. Without WithFontSet it
// shapes with GoFonts.
func NewShapingMeasurer(opts ...MeasurerOption) (*ShapingMeasurer, error) {
	cfg := defaultMeasurerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &ShapingMeasurer{
		fonts:    cfg.fonts,
		language: language.NewLanguage(cfg.language),
		cache:    NewCache[measureKey, extent](cfg.cacheSize),
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fontCache: make(map[*FontSource]*font.Font),
	}, nil
}

// Measure implements Measurer.
func (m *ShapingMeasurer) Measure(s string, f Font, size float64) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	e := m.cache.GetOrCreate(measureKey{s, f, size}, func() extent {
		out, err := m.shape(s, f, size)
		if err != nil {
			slogger().Warn("text: shaping failed, measuring with estimate", "font", f.String(), "err", err)
			w, h := EstimateMeasurer{}.Measure(s, f, size)
			return extent{w, h}
		}
		return extent{fixedToFloat(out.Advance), fixedToFloat(out.LineBounds.Ascent)}
	})
	return e.width, e.height
}

// shape runs HarfBuzz over s as a single left-to-right run.
func (m *ShapingMeasurer) shape(s string, f Font, size float64) (shaping.Output, error) {
	src, err := m.fonts.Source(f)
	if err != nil {
		return shaping.Output{}, err
	}
	goTextFont, err := m.getOrCreateFont(src)
	if err != nil {
		return shaping.Output{}, err
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  m.language,
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)
	return out, nil
}

// getOrCreateFont returns the cached go-text font for src, parsing it on
// first use.
func (m *ShapingMeasurer) getOrCreateFont(src *FontSource) (*font.Font, error) {
	m.mu.RLock()
	if f, ok := m.fontCache[src]; ok {
		m.mu.RUnlock()
		return f, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.fontCache[src]; ok {
		return f, nil
	}
	face, err := font.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, err
	}
	m.fontCache[src] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSet maps the standard fonts to the font files used to measure them.
// Fonts without an entry use the fallback source.
//
// FontSet is safe for concurrent use.
type FontSet struct {
	mu       sync.RWMutex
	sources  map[Font]*FontSource
	fallback *FontSource
}

// NewFontSet creates a font set that measures every font with fallback
// until Set assigns a dedicated source.
func NewFontSet(fallback *FontSource) *FontSet {
	return &FontSet{
		sources:  make(map[Font]*FontSource),
		fallback: fallback,
	}
}

// Set assigns the source used to measure f.
func (fs *FontSet) Set(f Font, src *FontSource) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.sources[f] = src
}

// Source returns the source used to measure f.
func (fs *FontSet) Source(f Font) (*FontSource, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if src, ok := fs.sources[f]; ok {
		return src, nil
	}
	if fs.fallback != nil {
		return fs.fallback, nil
	}
	return nil, fmt.Errorf("%w for %s", ErrNoFontSource, f)
}

// goFontFiles holds the Go font files indexed by [mono][bold][slanted].
var goFontFiles = [2][2][2][]byte{
	{
		{goregular.TTF, goitalic.TTF},
		{gobold.TTF, gobolditalic.TTF},
	},
	{
		{gomono.TTF, gomonoitalic.TTF},
		{gomonobold.TTF, gomonobolditalic.TTF},
	},
}

// GoFonts returns a font set built from the Go fonts: Courier variants map
// to Go Mono, every other font to the proportional Go face of matching
// weight and slant. The set is parsed once and shared.
var GoFonts = sync.OnceValues(func() (*FontSet, error) {
	var parsed [2][2][2]*FontSource
	for m := range 2 {
		for b := range 2 {
			for s := range 2 {
				src, err := NewFontSource(goFontFiles[m][b][s])
				if err != nil {
					return nil, err
				}
				parsed[m][b][s] = src
			}
		}
	}
	fs := NewFontSet(parsed[0][0][0])
	for _, f := range Fonts() {
		fs.Set(f, parsed[b2i(f.IsMonospace())][b2i(f.IsBold())][b2i(f.IsSlanted())])
	}
	return fs, nil
})

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

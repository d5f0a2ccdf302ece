package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned by ParseFont for a name that is not one of
	// the standard PostScript fonts.
	ErrUnknownFont = errors.New("text: unknown font")

	// ErrNoFontSource is returned when a FontSet has no source for a font
	// and no fallback.
	ErrNoFontSource = errors.New("text: no font source")
)

package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Font identifies one of the 35 standard PostScript fonts. The numeric
// value is the XFig PostScript font number.
type Font int

// Standard PostScript fonts, in XFig order.
const (
	TimesRoman Font = iota
	TimesItalic
	TimesBold
	TimesBoldItalic
	AvantGardeBook
	AvantGardeBookOblique
	AvantGardeDemi
	AvantGardeDemiOblique
	BookmanLight
	BookmanLightItalic
	BookmanDemi
	BookmanDemiItalic
	Courier
	CourierOblique
	CourierBold
	CourierBoldOblique
	Helvetica
	HelveticaOblique
	HelveticaBold
	HelveticaBoldOblique
	HelveticaNarrow
	HelveticaNarrowOblique
	HelveticaNarrowBold
	HelveticaNarrowBoldOblique
	NewCenturySchoolbookRoman
	NewCenturySchoolbookItalic
	NewCenturySchoolbookBold
	NewCenturySchoolbookBoldItalic
	PalatinoRoman
	PalatinoItalic
	PalatinoBold
	PalatinoBoldItalic
	Symbol
	ZapfChanceryMediumItalic
	ZapfDingbats

	fontCount
)

// fontInfo holds the names of a font in every output format.
type fontInfo struct {
	postScript string
	family     string // CSS font-family list
	bold       bool
	slant      string // CSS font-style
	mono       bool
}

const (
	timesFamily      = "Times New Roman, Times, serif"
	avantGardeFamily = "ITC Avant Garde Gothic, URW Gothic L, sans-serif"
	bookmanFamily    = "ITC Bookman, URW Bookman L, serif"
	courierFamily    = "Courier New, Courier, monospace"
	helveticaFamily  = "Helvetica, Arial, sans-serif"
	narrowFamily     = "Helvetica Narrow, Arial Narrow, sans-serif"
	centuryFamily    = "New Century Schoolbook, Century Schoolbook L, serif"
	palatinoFamily   = "Palatino Linotype, Palatino, serif"
	symbolFamily     = "Symbol"
	chanceryFamily   = "ITC Zapf Chancery, URW Chancery L, cursive"
	dingbatsFamily   = "ITC Zapf Dingbats, Dingbats"
	normal           = "normal"
	italic           = "italic"
	oblique          = "oblique"
	proportional     = false
	monospace        = true
	regularWeight    = false
	boldWeight       = true
)

var fonts = [fontCount]fontInfo{
	{"Times-Roman", timesFamily, regularWeight, normal, proportional},
	{"Times-Italic", timesFamily, regularWeight, italic, proportional},
	{"Times-Bold", timesFamily, boldWeight, normal, proportional},
	{"Times-BoldItalic", timesFamily, boldWeight, italic, proportional},
	{"AvantGarde-Book", avantGardeFamily, regularWeight, normal, proportional},
	{"AvantGarde-BookOblique", avantGardeFamily, regularWeight, oblique, proportional},
	{"AvantGarde-Demi", avantGardeFamily, boldWeight, normal, proportional},
	{"AvantGarde-DemiOblique", avantGardeFamily, boldWeight, oblique, proportional},
	{"Bookman-Light", bookmanFamily, regularWeight, normal, proportional},
	{"Bookman-LightItalic", bookmanFamily, regularWeight, italic, proportional},
	{"Bookman-Demi", bookmanFamily, boldWeight, normal, proportional},
	{"Bookman-DemiItalic", bookmanFamily, boldWeight, italic, proportional},
	{"Courier", courierFamily, regularWeight, normal, monospace},
	{"Courier-Oblique", courierFamily, regularWeight, oblique, monospace},
	{"Courier-Bold", courierFamily, boldWeight, normal, monospace},
	{"Courier-BoldOblique", courierFamily, boldWeight, oblique, monospace},
	{"Helvetica", helveticaFamily, regularWeight, normal, proportional},
	{"Helvetica-Oblique", helveticaFamily, regularWeight, oblique, proportional},
	{"Helvetica-Bold", helveticaFamily, boldWeight, normal, proportional},
	{"Helvetica-BoldOblique", helveticaFamily, boldWeight, oblique, proportional},
	{"Helvetica-Narrow", narrowFamily, regularWeight, normal, proportional},
	{"Helvetica-Narrow-Oblique", narrowFamily, regularWeight, oblique, proportional},
	{"Helvetica-Narrow-Bold", narrowFamily, boldWeight, normal, proportional},
	{"Helvetica-Narrow-BoldOblique", narrowFamily, boldWeight, oblique, proportional},
	{"NewCenturySchlbk-Roman", centuryFamily, regularWeight, normal, proportional},
	{"NewCenturySchlbk-Italic", centuryFamily, regularWeight, italic, proportional},
	{"NewCenturySchlbk-Bold", centuryFamily, boldWeight, normal, proportional},
	{"NewCenturySchlbk-BoldItalic", centuryFamily, boldWeight, italic, proportional},
	{"Palatino-Roman", palatinoFamily, regularWeight, normal, proportional},
	{"Palatino-Italic", palatinoFamily, regularWeight, italic, proportional},
	{"Palatino-Bold", palatinoFamily, boldWeight, normal, proportional},
	{"Palatino-BoldItalic", palatinoFamily, boldWeight, italic, proportional},
	{"Symbol", symbolFamily, regularWeight, normal, proportional},
	{"ZapfChancery-MediumItalic", chanceryFamily, regularWeight, italic, proportional},
	{"ZapfDingbats", dingbatsFamily, regularWeight, normal, proportional},
}

func (f Font) info() fontInfo {
	if !f.IsValid() {
		return fonts[TimesRoman]
	}
	return fonts[f]
}

// IsValid reports whether f is one of the standard fonts.
func (f Font) IsValid() bool {
	return f >= 0 && f < fontCount
}

// PostScriptName returns the name used with findfont, e.g. "Times-Roman".
// Invalid fonts report the Times-Roman name.
func (f Font) PostScriptName() string {
	return f.info().postScript
}

// String returns the PostScript name, or "Font(n)" for an invalid font.
func (f Font) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Font(%d)", int(f))
	}
	return fonts[f].postScript
}

// SVGFamily returns a CSS font-family list approximating the font.
func (f Font) SVGFamily() string { return f.info().family }

// SVGWeight returns the CSS font-weight, "normal" or "bold".
func (f Font) SVGWeight() string {
	if f.info().bold {
		return "bold"
	}
	return normal
}

// SVGStyle returns the CSS font-style: "normal", "italic" or "oblique".
func (f Font) SVGStyle() string { return f.info().slant }

// IsBold reports whether the font has a bold weight.
func (f Font) IsBold() bool { return f.info().bold }

// IsSlanted reports whether the font is italic or oblique.
func (f Font) IsSlanted() bool { return f.info().slant != normal }

// IsMonospace reports whether every glyph has the same advance.
func (f Font) IsMonospace() bool { return f.info().mono }

// Fonts returns every standard font in XFig order.
func Fonts() []Font {
	all := make([]Font, fontCount)
	for i := range all {
		all[i] = Font(i)
	}
	return all
}

var fontsByName = make(map[string]Font, fontCount)

func init() {
	for i := range fonts {
		fontsByName[fontKey(fonts[i].postScript)] = Font(i)
	}
}

// fontKey folds case and drops separators so that "Times-Roman",
// "times roman" and "TIMESROMAN" compare equal.
func fontKey(name string) string {
	name = cases.Fold().String(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, name)
}

// ParseFont returns the font with the given PostScript name. Matching
// ignores case, spaces, hyphens and underscores.
func ParseFont(name string) (Font, error) {
	if f, ok := fontsByName[fontKey(name)]; ok {
		return f, nil
	}
	return TimesRoman, fmt.Errorf("%w: %q", ErrUnknownFont, name)
}

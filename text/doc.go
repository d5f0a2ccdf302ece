// Package text supplies the font data that board needs to place text:
// the 35 standard PostScript fonts with their names in every output
// format, font-metrics providers, and string encodings for PostScript and
// XFig.
//
// Two Measurer implementations read real font files:
//
//   - OpenTypeMeasurer: glyph advances and kerning via golang.org/x/image
//   - ShapingMeasurer: HarfBuzz shaping via go-text/typesetting
//
// Both measure the standard fonts with metric substitutes from a FontSet.
// GoFonts maps every standard font to the closest Go font; NewFontSet and
// Set use other files:
//
//	src, err := text.NewFontSourceFromFile("NimbusSans-Regular.otf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fs := text.NewFontSet(src)
//	m, err := text.NewOpenTypeMeasurer(text.WithFontSet(fs))
//
// EstimateMeasurer needs no font files and is useful where exact metrics do
// not matter.
package text

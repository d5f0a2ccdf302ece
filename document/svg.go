package document

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/gogpu/board"
)

// svgWriter writes SVG 1.1 documents.
type svgWriter struct{}

func (svgWriter) WriteBoard(w io.Writer, b *Board) error {
	t := board.NewTransformSVG()
	fr := b.fit(t)
	ew := &errWriter{w: w}

	ew.print(xml.Header, "<!-- Created with ", Creator, " -->\n")
	ew.print(`<svg width="`, board.FormatNumber(fr.width/pointsPerMM), `mm" height="`, board.FormatNumber(fr.height/pointsPerMM),
		`mm" viewBox="0 0 `, board.FormatNumber(fr.width), " ", board.FormatNumber(fr.height),
		`" xmlns="http://www.w3.org/2000/svg" version="1.1">`, "\n")
	if b.title != "" {
		ew.print("<title>")
		if ew.err == nil {
			ew.err = xml.EscapeText(ew, []byte(b.title))
		}
		ew.print("</title>\n")
	}
	ew.print("<desc>Created with ", Creator, "</desc>\n")

	if c := b.background; !c.IsNull() {
		ew.printf(`<rect x="0" y="0" width="%s" height="%s" stroke="none" fill="rgb(%d,%d,%d)"`,
			board.FormatNumber(fr.width), board.FormatNumber(fr.height), c.R, c.G, c.B)
		if c.A != 255 {
			ew.print(` fill-opacity="`, strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64), `"`)
		}
		ew.print(" />\n")
	}
	b.EmitSVG(ew, t)

	ew.print("</svg>\n")
	return ew.err
}

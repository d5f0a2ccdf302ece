package document

import (
	"io"
	"math"

	"github.com/gogpu/board"
)

// epsProlog defines the short operator names the shapes emit.
const epsProlog = `/cp {closepath} bind def
/ef {eofill} bind def
/gr {grestore} bind def
/gs {gsave} bind def
/l {lineto} bind def
/m {moveto} bind def
/n {newpath} bind def
/s {stroke} bind def
/slc {setlinecap} bind def
/slj {setlinejoin} bind def
/slw {setlinewidth} bind def
/srgb {setrgbcolor} bind def
/rot {rotate} bind def
/sc {scale} bind def
/sd {setdash} bind def
/tr {translate} bind def
`

// epsWriter writes Encapsulated PostScript.
type epsWriter struct{}

func (epsWriter) WriteBoard(w io.Writer, b *Board) error {
	t := board.NewTransformEPS()
	fr := b.fit(t)
	ew := &errWriter{w: w}

	ew.print("%!PS-Adobe-2.0 EPSF-2.0\n")
	if b.title != "" {
		ew.print("%%Title: ", b.title, "\n")
	}
	ew.print("%%Creator: ", Creator, "\n")
	ew.printf("%%%%BoundingBox: 0 0 %d %d\n", int(math.Ceil(fr.width)), int(math.Ceil(fr.height)))
	ew.print("%%HiResBoundingBox: 0 0 ", board.FormatNumber(fr.width), " ", board.FormatNumber(fr.height), "\n")
	ew.print("%%Magnification: 1.0000\n%%EndComments\n", epsProlog, "%%EndProlog\n")

	if !b.background.IsNull() {
		ew.print("n 0 0 m ", board.FormatNumber(fr.width), " 0 l ", board.FormatNumber(fr.width), " ", board.FormatNumber(fr.height), " l 0 ",
			board.FormatNumber(fr.height), " l cp ", b.background.PostScriptRGB(), " srgb fill\n")
	}
	b.EmitEPS(ew, t)

	ew.print("showpage\n%%Trailer\n%%EOF\n")
	return ew.err
}

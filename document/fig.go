package document

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/gogpu/board"
)

// figUnitsPerPoint is the FIG resolution (1200 dpi) in units per point.
const figUnitsPerPoint = 1200.0 / 72

// figBackgroundDepth puts the background behind every shape.
const figBackgroundDepth = 999

// figPapers are the paper names XFig accepts that match a PageSize name.
var figPapers = map[string]bool{
	"Letter": true, "Legal": true,
	"A0": true, "A1": true, "A2": true, "A3": true, "A4": true,
}

// figWriter writes XFig 3.2 files.
type figWriter struct{}

func (figWriter) WriteBoard(w io.Writer, b *Board) error {
	t := board.NewTransformFIG()
	fr := b.fit(t)
	t.SetDepthRange(b.MinDepth(), b.MaxDepth())

	// Color pseudo-objects must precede every object, so the body is
	// rendered first to collect the palette.
	palette := board.NewPalette()
	bg := -1
	if !b.background.IsNull() {
		bg = palette.Index(b.background)
	}
	var body bytes.Buffer
	b.EmitFIG(&body, t, palette)

	paper := "A4"
	if figPapers[b.page.Name] {
		paper = b.page.Name
	}

	ew := &errWriter{w: w}
	ew.print("#FIG 3.2 Produced by ", Creator, "\n")
	ew.print("Portrait\nCenter\nMetric\n", paper, "\n100.00\nSingle\n-2\n1200 2\n")
	if ew.err == nil {
		_, ew.err = palette.WriteTo(w)
	}
	if bg >= 0 {
		x := strconv.Itoa(int(math.Round(fr.width * figUnitsPerPoint)))
		y := strconv.Itoa(int(math.Round(fr.height * figUnitsPerPoint)))
		c := strconv.Itoa(bg)
		ew.print("2 2 0 0 ", c, " ", c, " ", strconv.Itoa(figBackgroundDepth),
			" -1 20 0.000 0 0 -1 0 0 5\n\t 0 0 ", x, " 0 ", x, " ", y, " 0 ", y, " 0 0\n")
	}
	board.Logger().Debug("document: fig palette", "user colors", palette.Len())

	if ew.err == nil {
		_, ew.err = body.WriteTo(w)
	}
	return ew.err
}

package document

import (
	"io"

	"github.com/gogpu/board"
)

// tikzPictureOptions make one TikZ unit a point with y pointing down, the
// coordinate system of TransformTikZ.
const tikzPictureOptions = `[anchor=south west,text depth=0,x={(1pt,0cm)},y={(0cm,-1pt)}]`

// tikzWriter writes a tikzpicture environment for inclusion in LaTeX.
type tikzWriter struct{}

func (tikzWriter) WriteBoard(w io.Writer, b *Board) error {
	t := board.NewTransformTikZ()
	fr := b.fit(t)
	ew := &errWriter{w: w}

	ew.print("% Created with ", Creator, "\n")
	ew.print(`\begin{tikzpicture}`, tikzPictureOptions, "\n")
	if c := b.background; !c.IsNull() {
		ew.printf("\\fill[fill={rgb,255:red,%d;green,%d;blue,%d}] (0,0) rectangle (%s,%s);\n",
			c.R, c.G, c.B, board.FormatNumber(fr.width), board.FormatNumber(fr.height))
	}
	b.EmitTikZ(ew, t)

	ew.print("\\end{tikzpicture}\n")
	return ew.err
}

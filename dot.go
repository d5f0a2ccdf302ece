package board

import (
	"io"
	"strconv"
)

// Dot is a point drawn as a zero-length round-capped stroke, so its size
// is the line width.
type Dot struct {
	attributes
	pos Point
}

// NewDot creates a dot at (x, y).
func NewDot(x, y float64, opts ...Option) *Dot {
	o := collectOptions(opts)
	return &Dot{attributes: o.attributes(), pos: Pt(x, y)}
}

func (d *Dot) Name() string { return "Dot" }

func (d *Dot) Clone() Shape {
	c := *d
	return &c
}

// Position returns the location of the dot.
func (d *Dot) Position() Point { return d.pos }

func (d *Dot) Center(LineWidthFlag) Point { return d.pos }

func (d *Dot) Rotate(angle float64, pivot Point) {
	d.pos = d.pos.RotateAround(angle, pivot)
}

func (d *Dot) Translate(dx, dy float64) {
	d.pos = d.pos.Add(Pt(dx, dy))
}

// Scale leaves the position unchanged; only the line width may scale.
func (d *Dot) Scale(sx, sy float64) {
	d.updateLineWidth(sx, sy)
}

func (d *Dot) ScaleAll(s float64) {
	d.pos = d.pos.Mul(s)
	d.lineWidth *= s
}

func (d *Dot) BoundingBox(flag LineWidthFlag) Rect {
	return d.inflate(Rect{Left: d.pos.X, Top: d.pos.Y}, flag)
}

func (d *Dot) EmitEPS(w io.Writer, t *TransformEPS) {
	if !d.stroked() {
		return
	}
	p := pointString(t.MapX(d.pos.X), t.MapY(d.pos.Y), " ")
	writeStrings(w, FormatNumber(t.MapWidth(d.lineWidth)), " slw 1 slc 1 slj [] 0 sd n ",
		p, " m ", p, " l ", d.penColor.PostScriptRGB(), " srgb stroke\n")
}

func (d *Dot) EmitFIG(w io.Writer, t *TransformFIG, p *Palette) {
	if !d.stroked() {
		return
	}
	x, y := strconv.Itoa(t.MapX(d.pos.X)), strconv.Itoa(t.MapY(d.pos.Y))
	writeStrings(w, "2 1 0 ", strconv.Itoa(t.MapWidth(d.lineWidth)), " ",
		strconv.Itoa(p.Index(d.penColor)), " -1 ", strconv.Itoa(t.MapDepth(d.Depth())),
		" -1 -1 0.000 1 1 -1 0 0 2\n\t ", x, " ", y, " ", x, " ", y, "\n")
}

func (d *Dot) EmitSVG(w io.Writer, t *TransformSVG) {
	if !d.stroked() {
		return
	}
	x, y := FormatNumber(t.MapX(d.pos.X)), FormatNumber(t.MapY(d.pos.Y))
	writeStrings(w, `<line x1="`, x, `" y1="`, y, `" x2="`, x, `" y2="`, y,
		`" style="stroke:`, d.penColor.svgString(),
		";stroke-opacity:", d.penColor.svgOpacity(),
		";stroke-width:", FormatNumber(t.MapWidth(d.lineWidth)),
		`;stroke-linecap:round" />`, "\n")
}

func (d *Dot) EmitTikZ(w io.Writer, t *TransformTikZ) {
	if !d.stroked() {
		return
	}
	p := "(" + pointString(t.MapX(d.pos.X), t.MapY(d.pos.Y), ",") + ")"
	writeStrings(w, `\draw[draw=`, d.penColor.tikzString(),
		",line width=", FormatNumber(t.MapWidth(d.lineWidth)),
		"pt,line cap=round] ", p, " -- ", p, ";\n")
}

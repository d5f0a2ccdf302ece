package board

import (
	"io"
	"strconv"
)

// Line is a straight segment between two points.
type Line struct {
	attributes
	a, b Point
}

// NewLine creates a line from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64, opts ...Option) *Line {
	o := collectOptions(opts)
	return &Line{attributes: o.attributes(), a: Pt(x1, y1), b: Pt(x2, y2)}
}

// NewLineBetween creates a line from a to b.
func NewLineBetween(a, b Point, opts ...Option) *Line {
	return NewLine(a.X, a.Y, b.X, b.Y, opts...)
}

func (l *Line) Name() string { return "Line" }

func (l *Line) Clone() Shape {
	c := *l
	return &c
}

// Endpoints returns the start and end points.
func (l *Line) Endpoints() (Point, Point) { return l.a, l.b }

func (l *Line) Center(flag LineWidthFlag) Point {
	return l.BoundingBox(flag).Center()
}

func (l *Line) Rotate(angle float64, pivot Point) {
	l.a = l.a.RotateAround(angle, pivot)
	l.b = l.b.RotateAround(angle, pivot)
}

func (l *Line) Translate(dx, dy float64) {
	d := Pt(dx, dy)
	l.a = l.a.Add(d)
	l.b = l.b.Add(d)
}

func (l *Line) Scale(sx, sy float64) {
	c := l.a.Mid(l.b)
	l.a = l.a.ScaleAround(sx, sy, c)
	l.b = l.b.ScaleAround(sx, sy, c)
	l.updateLineWidth(sx, sy)
}

func (l *Line) ScaleAll(s float64) {
	l.a = l.a.Mul(s)
	l.b = l.b.Mul(s)
	l.lineWidth *= s
}

func (l *Line) BoundingBox(flag LineWidthFlag) Rect {
	return l.inflate(RectFromPoints(l.a, l.b), flag)
}

func (l *Line) EmitEPS(w io.Writer, t *TransformEPS) {
	if !l.stroked() {
		return
	}
	writeStrings(w, l.epsProperties(t), " n ",
		pointString(t.MapX(l.a.X), t.MapY(l.a.Y), " "), " m ",
		pointString(t.MapX(l.b.X), t.MapY(l.b.Y), " "), " l ",
		l.penColor.PostScriptRGB(), " srgb stroke\n")
}

func (l *Line) EmitFIG(w io.Writer, t *TransformFIG, p *Palette) {
	writeStrings(w, "2 1 ", l.figCommon(t, p), " ",
		strconv.Itoa(int(l.lineJoin)), " ", strconv.Itoa(int(l.lineCap)), " -1 0 0 2\n\t ",
		strconv.Itoa(t.MapX(l.a.X)), " ", strconv.Itoa(t.MapY(l.a.Y)), " ",
		strconv.Itoa(t.MapX(l.b.X)), " ", strconv.Itoa(t.MapY(l.b.Y)), "\n")
}

func (l *Line) EmitSVG(w io.Writer, t *TransformSVG) {
	writeStrings(w, `<line x1="`, FormatNumber(t.MapX(l.a.X)), `" y1="`, FormatNumber(t.MapY(l.a.Y)),
		`" x2="`, FormatNumber(t.MapX(l.b.X)), `" y2="`, FormatNumber(t.MapY(l.b.Y)), `"`,
		l.svgStyle(t), " />\n")
}

func (l *Line) EmitTikZ(w io.Writer, t *TransformTikZ) {
	writeStrings(w, `\path`, l.tikzOptions(t), " (",
		pointString(t.MapX(l.a.X), t.MapY(l.a.Y), ","), ") -- (",
		pointString(t.MapX(l.b.X), t.MapY(l.b.Y), ","), ");\n")
}

// Arrow is a line with a triangular head at its end point. The head is
// derived from the line direction and width when needed, not stored.
type Arrow struct {
	Line
}

// NewArrow creates an arrow from (x1, y1) pointing at (x2, y2). The head is
// filled with the fill color, or with the pen color when unfilled.
func NewArrow(x1, y1, x2, y2 float64, opts ...Option) *Arrow {
	return &Arrow{Line: *NewLine(x1, y1, x2, y2, opts...)}
}

func (a *Arrow) Name() string { return "Arrow" }

func (a *Arrow) Clone() Shape {
	c := *a
	return &c
}

// head returns the tip and the two base corners of the arrow head.
// A zero-length arrow has a degenerate head at its tip.
func (a *Arrow) head() [3]Point {
	dir := a.a.Sub(a.b).Normalize()
	length := 10 * a.lineWidth
	back := a.b.Add(dir.Mul(length))
	side := Pt(dir.Y, -dir.X).Mul(length / 2)
	return [3]Point{a.b, back.Add(side), back.Sub(side)}
}

func (a *Arrow) headPath() Path {
	h := a.head()
	return Path{points: h[:], closed: true}
}

func (a *Arrow) headColor() Color {
	if a.Filled() {
		return a.fillColor
	}
	return a.penColor
}

func (a *Arrow) BoundingBox(flag LineWidthFlag) Rect {
	h := a.headPath()
	return a.Line.BoundingBox(flag).Union(a.inflate(h.BoundingBox(), flag))
}

func (a *Arrow) EmitEPS(w io.Writer, t *TransformEPS) {
	a.Line.EmitEPS(w, t)
	c := a.headColor()
	if c.IsNull() {
		return
	}
	h := a.headPath()
	writeStrings(w, "n ")
	h.EmitEPS(w, t)
	writeStrings(w, c.PostScriptRGB(), " srgb fill\n")
}

func (a *Arrow) EmitFIG(w io.Writer, t *TransformFIG, p *Palette) {
	a.Line.EmitFIG(w, t, p)
	c := a.headColor()
	if c.IsNull() {
		return
	}
	head := attributes{fillColor: c, lineStyle: SolidStyle, depth: a.depth, hasDepth: a.hasDepth}
	h := a.headPath()
	writeStrings(w, "2 3 ", head.figCommon(t, p), " 0 0 -1 0 0 ",
		strconv.Itoa(h.FIGPointCount()), "\n\t")
	h.EmitFIG(w, t)
	writeStrings(w, "\n")
}

func (a *Arrow) EmitSVG(w io.Writer, t *TransformSVG) {
	a.Line.EmitSVG(w, t)
	c := a.headColor()
	if c.IsNull() {
		return
	}
	h := a.headPath()
	writeStrings(w, `<polygon points="`)
	h.EmitSVGPoints(w, t)
	writeStrings(w, `" style="fill:`, c.svgString(), ";fill-opacity:", c.svgOpacity(), `;stroke:none" />`, "\n")
}

func (a *Arrow) EmitTikZ(w io.Writer, t *TransformTikZ) {
	a.Line.EmitTikZ(w, t)
	c := a.headColor()
	if c.IsNull() {
		return
	}
	h := a.headPath()
	writeStrings(w, `\fill[color=`, c.tikzString(), "] ")
	h.EmitTikZ(w, t)
	writeStrings(w, ";\n")
}

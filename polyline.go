package board

import (
	"io"
	"math"
	"strconv"
)

// vertices holds the attributes and geometry shared by Polyline and the
// fixed-size polygons. It has no Append: a Rectangle keeps four vertices,
// a Triangle three.
type vertices struct {
	attributes
	path Path
}

func newVertices(points []Point, closed bool, opts []Option) vertices {
	o := collectOptions(opts)
	return vertices{
		attributes: o.attributes(),
		path:       Path{points: append([]Point(nil), points...), closed: closed},
	}
}

func (p *vertices) cloneVertices() vertices {
	return vertices{attributes: p.attributes, path: p.path.clone()}
}

// Polyline is a sequence of connected segments, optionally closed into a
// polygon.
type Polyline struct {
	vertices
}

// NewPolyline creates a polyline through points.
func NewPolyline(points []Point, closed bool, opts ...Option) *Polyline {
	return &Polyline{vertices: newVertices(points, closed, opts)}
}

// NewPolylineFromPath creates a polyline with a copy of path.
func NewPolylineFromPath(path *Path, opts ...Option) *Polyline {
	return NewPolyline(path.points, path.closed, opts...)
}

func (p *Polyline) Name() string { return "Polyline" }

func (p *Polyline) Clone() Shape {
	return &Polyline{vertices: p.cloneVertices()}
}

// Append adds vertices at the end.
func (p *Polyline) Append(points ...Point) {
	p.path.Append(points...)
}

// Vertex returns the i-th vertex. It panics if i is out of range.
func (p *vertices) Vertex(i int) Point { return p.path.At(i) }

// SetVertex moves the i-th vertex. It panics if i is out of range.
func (p *vertices) SetVertex(i int, pt Point) { p.path.Set(i, pt) }

// VertexCount returns the number of vertices.
func (p *vertices) VertexCount() int { return p.path.Len() }

// Closed reports whether the polyline is a polygon.
func (p *vertices) Closed() bool { return p.path.closed }

// Path returns a copy of the geometry.
func (p *vertices) Path() *Path { return p.path.Clone() }

func (p *vertices) Center(flag LineWidthFlag) Point {
	return p.BoundingBox(flag).Center()
}

func (p *vertices) Rotate(angle float64, pivot Point) {
	p.path.Rotate(angle, pivot)
}

func (p *vertices) Translate(dx, dy float64) {
	p.path.Translate(dx, dy)
}

func (p *vertices) Scale(sx, sy float64) {
	p.path.Scale(sx, sy)
	p.updateLineWidth(sx, sy)
}

func (p *vertices) ScaleAll(s float64) {
	p.path.ScaleAll(s)
	p.lineWidth *= s
}

func (p *vertices) BoundingBox(flag LineWidthFlag) Rect {
	return p.inflate(p.path.BoundingBox(), flag)
}

func (p *vertices) EmitEPS(w io.Writer, t *TransformEPS) {
	if p.path.IsEmpty() {
		return
	}
	p.epsFillAndStroke(w, t, func() { p.path.EmitEPS(w, t) })
}

// figPolyline writes a FIG polyline record of the given sub type.
func (p *vertices) figPolyline(w io.Writer, t *TransformFIG, pal *Palette, subType int) {
	if p.path.IsEmpty() {
		return
	}
	writeStrings(w, "2 ", strconv.Itoa(subType), " ", p.figCommon(t, pal), " ",
		strconv.Itoa(int(p.lineJoin)), " ", strconv.Itoa(int(p.lineCap)), " -1 0 0 ",
		strconv.Itoa(p.path.FIGPointCount()), "\n\t")
	p.path.EmitFIG(w, t)
	writeStrings(w, "\n")
}

func (p *vertices) EmitFIG(w io.Writer, t *TransformFIG, pal *Palette) {
	subType := 1
	if p.path.closed {
		subType = 3
	}
	p.figPolyline(w, t, pal, subType)
}

func (p *vertices) EmitSVG(w io.Writer, t *TransformSVG) {
	if p.path.IsEmpty() {
		return
	}
	tag := "polyline"
	if p.path.closed {
		tag = "polygon"
	}
	writeStrings(w, "<", tag, p.svgStyle(t), "\n          points=\"")
	p.path.EmitSVGPoints(w, t)
	writeStrings(w, "\" />\n")
}

func (p *vertices) EmitTikZ(w io.Writer, t *TransformTikZ) {
	if p.path.IsEmpty() {
		return
	}
	writeStrings(w, `\path`, p.tikzOptions(t), " ")
	p.path.EmitTikZ(w, t)
	writeStrings(w, ";\n")
}

// Rectangle is a closed polygon of four vertices, starting at the top-left
// corner and running clockwise. It remembers whether it is still
// axis-aligned so that formats with a native rectangle can use it.
type Rectangle struct {
	vertices
	axisAligned bool
}

// NewRectangle creates a rectangle from its top-left corner and size.
// The y axis points up: the bottom edge is at top - height.
func NewRectangle(left, top, width, height float64, opts ...Option) *Rectangle {
	r := &Rectangle{
		vertices: newVertices([]Point{
			Pt(left, top),
			Pt(left+width, top),
			Pt(left+width, top-height),
			Pt(left, top-height),
		}, true, opts),
		axisAligned: true,
	}
	return r
}

// NewRectangleFromRect creates a rectangle covering r.
func NewRectangleFromRect(r Rect, opts ...Option) *Rectangle {
	return NewRectangle(r.Left, r.Top, r.Width, r.Height, opts...)
}

func (r *Rectangle) Name() string { return "Rectangle" }

func (r *Rectangle) Clone() Shape {
	return &Rectangle{vertices: r.cloneVertices(), axisAligned: r.axisAligned}
}

func (r *Rectangle) X() float64          { return r.path.points[0].X }
func (r *Rectangle) Y() float64          { return r.path.points[0].Y }
func (r *Rectangle) Width() float64      { return r.path.points[1].Distance(r.path.points[0]) }
func (r *Rectangle) Height() float64     { return r.path.points[0].Distance(r.path.points[3]) }
func (r *Rectangle) TopLeft() Point      { return r.path.points[0] }
func (r *Rectangle) TopRight() Point     { return r.path.points[1] }
func (r *Rectangle) BottomRight() Point  { return r.path.points[2] }
func (r *Rectangle) BottomLeft() Point   { return r.path.points[3] }
func (r *Rectangle) IsAxisAligned() bool { return r.axisAligned }

func (r *Rectangle) Rotate(angle float64, pivot Point) {
	r.vertices.Rotate(angle, pivot)
	r.updateAxisAligned()
}

func (r *Rectangle) Scale(sx, sy float64) {
	r.vertices.Scale(sx, sy)
	r.updateAxisAligned()
}

// SetVertex moves the i-th corner. It panics if i is out of range.
func (r *Rectangle) SetVertex(i int, pt Point) {
	r.vertices.SetVertex(i, pt)
	r.updateAxisAligned()
}

func (r *Rectangle) updateAxisAligned() {
	const eps = 1e-9
	p := r.path.points
	horizontal := func(a, b Point) bool { return math.Abs(a.Y-b.Y) < eps }
	vertical := func(a, b Point) bool { return math.Abs(a.X-b.X) < eps }
	r.axisAligned = horizontal(p[0], p[1]) && vertical(p[1], p[2]) && horizontal(p[2], p[3]) && vertical(p[3], p[0]) ||
		vertical(p[0], p[1]) && horizontal(p[1], p[2]) && vertical(p[2], p[3]) && horizontal(p[3], p[0])
}

func (r *Rectangle) EmitFIG(w io.Writer, t *TransformFIG, p *Palette) {
	subType := 3
	if r.axisAligned {
		subType = 2
	}
	r.figPolyline(w, t, p, subType)
}

func (r *Rectangle) EmitSVG(w io.Writer, t *TransformSVG) {
	if !r.axisAligned {
		r.vertices.EmitSVG(w, t)
		return
	}
	box := r.path.BoundingBox()
	writeStrings(w, `<rect x="`, FormatNumber(t.MapX(box.Left)),
		`" y="`, FormatNumber(t.MapY(box.Top)),
		`" width="`, FormatNumber(t.Scale(box.Width)),
		`" height="`, FormatNumber(t.Scale(box.Height)), `"`,
		r.svgStyle(t), " />\n")
}

func (r *Rectangle) EmitTikZ(w io.Writer, t *TransformTikZ) {
	if !r.axisAligned {
		r.vertices.EmitTikZ(w, t)
		return
	}
	box := r.path.BoundingBox()
	writeStrings(w, `\path`, r.tikzOptions(t), " (",
		pointString(t.MapX(box.Left), t.MapY(box.Top), ","), ") rectangle (",
		pointString(t.MapX(box.Right()), t.MapY(box.Bottom()), ","), ");\n")
}

// Triangle is a closed polygon of three vertices.
type Triangle struct {
	vertices
}

// NewTriangle creates a triangle from its vertices.
func NewTriangle(p1, p2, p3 Point, opts ...Option) *Triangle {
	return &Triangle{vertices: newVertices([]Point{p1, p2, p3}, true, opts)}
}

func (t *Triangle) Name() string { return "Triangle" }

func (t *Triangle) Clone() Shape {
	return &Triangle{vertices: t.cloneVertices()}
}

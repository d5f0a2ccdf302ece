package board

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// svgPointsPerLine is the number of points written on one line of an SVG
// path or points attribute.
const svgPointsPerLine = 6

const svgContinuation = "\n                  "

// Path is an ordered sequence of points, open or closed.
// It is the geometry shared by polylines, rectangles, triangles, text boxes
// and group clipping paths.
type Path struct {
	points []Point
	closed bool
}

// NewPath creates a path from points.
func NewPath(closed bool, points ...Point) *Path {
	return &Path{points: append([]Point(nil), points...), closed: closed}
}

// Append adds points to the end of the path.
func (p *Path) Append(points ...Point) *Path {
	p.points = append(p.points, points...)
	return p
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// IsEmpty reports whether the path has no points.
func (p *Path) IsEmpty() bool {
	return len(p.points) == 0
}

// At returns the i-th point. It panics if i is out of range.
func (p *Path) At(i int) Point {
	return p.points[i]
}

// Set replaces the i-th point. It panics if i is out of range.
func (p *Path) Set(i int, pt Point) {
	p.points[i] = pt
}

// Points returns a copy of the points.
func (p *Path) Points() []Point {
	return append([]Point(nil), p.points...)
}

// Closed reports whether the last point connects back to the first.
func (p *Path) Closed() bool {
	return p.closed
}

// SetClosed sets whether the path is closed.
func (p *Path) SetClosed(closed bool) {
	p.closed = closed
}

// Clear removes all points.
func (p *Path) Clear() {
	p.points = p.points[:0]
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	c := p.clone()
	return &c
}

func (p *Path) clone() Path {
	return Path{points: append([]Point(nil), p.points...), closed: p.closed}
}

// BoundingBox returns the smallest rectangle containing every point.
// An empty path has the zero Rect.
func (p *Path) BoundingBox() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}
	minX, maxX := p.points[0].X, p.points[0].X
	minY, maxY := p.points[0].Y, p.points[0].Y
	for _, pt := range p.points[1:] {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{Left: minX, Top: maxY, Width: maxX - minX, Height: maxY - minY}
}

// Center returns the center of the bounding box.
func (p *Path) Center() Point {
	return p.BoundingBox().Center()
}

// Rotate rotates every point by angle radians around pivot.
func (p *Path) Rotate(angle float64, pivot Point) *Path {
	return p.Transform(RotateAbout(angle, pivot))
}

// RotateDeg rotates every point by angle degrees around pivot.
func (p *Path) RotateDeg(angle float64, pivot Point) *Path {
	return p.Rotate(angle*math.Pi/180, pivot)
}

// RotateAboutCenter rotates the path around its bounding box center.
func (p *Path) RotateAboutCenter(angle float64) *Path {
	return p.Rotate(angle, p.Center())
}

// Translate moves every point by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	for i := range p.points {
		p.points[i].X += dx
		p.points[i].Y += dy
	}
	return p
}

// Scale scales the path by (sx, sy) about its bounding box center.
// The center is unchanged.
func (p *Path) Scale(sx, sy float64) *Path {
	return p.ScaleAbout(sx, sy, p.Center())
}

// ScaleAbout scales the path by (sx, sy) keeping pivot fixed.
func (p *Path) ScaleAbout(sx, sy float64, pivot Point) *Path {
	return p.Transform(ScaleAbout(sx, sy, pivot))
}

// ScaleAll scales every coordinate by s about the origin.
func (p *Path) ScaleAll(s float64) *Path {
	return p.Transform(Scale(s, s))
}

// Transform applies m to every point.
func (p *Path) Transform(m Matrix) *Path {
	for i, pt := range p.points {
		p.points[i] = m.TransformPoint(pt)
	}
	return p
}

// EmitEPS writes PostScript path construction operators:
// "x y m x y l ... [cp] ". An empty path writes nothing.
func (p *Path) EmitEPS(w io.Writer, t *TransformEPS) {
	if len(p.points) == 0 {
		return
	}
	var b strings.Builder
	first := p.points[0]
	b.WriteString(pointString(t.MapX(first.X), t.MapY(first.Y), " "))
	b.WriteString(" m")
	for _, pt := range p.points[1:] {
		b.WriteByte(' ')
		b.WriteString(pointString(t.MapX(pt.X), t.MapY(pt.Y), " "))
		b.WriteString(" l")
	}
	if p.closed {
		b.WriteString(" cp")
	}
	b.WriteByte(' ')
	writeStrings(w, b.String())
}

// FIGPointCount returns the number of points EmitFIG writes.
func (p *Path) FIGPointCount() int {
	if p.closed && len(p.points) > 0 {
		return len(p.points) + 1
	}
	return len(p.points)
}

// EmitFIG writes " x y" integer pairs, repeating the first point at the end
// of a closed path. An empty path writes nothing.
func (p *Path) EmitFIG(w io.Writer, t *TransformFIG) {
	if len(p.points) == 0 {
		return
	}
	var b strings.Builder
	for _, pt := range p.points {
		writeFIGPoint(&b, t, pt)
	}
	if p.closed {
		writeFIGPoint(&b, t, p.points[0])
	}
	writeStrings(w, b.String())
}

func writeFIGPoint(b *strings.Builder, t *TransformFIG, pt Point) {
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(t.MapX(pt.X)))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(t.MapY(pt.Y)))
}

// EmitSVGCommands writes an SVG path data string "M x y L x y ... [Z]",
// breaking the line every six points. An empty path writes nothing.
func (p *Path) EmitSVGCommands(w io.Writer, t *TransformSVG) {
	if len(p.points) == 0 {
		return
	}
	var b strings.Builder
	first := p.points[0]
	b.WriteString("M ")
	b.WriteString(pointString(t.MapX(first.X), t.MapY(first.Y), " "))
	for i, pt := range p.points[1:] {
		b.WriteString(" L ")
		b.WriteString(pointString(t.MapX(pt.X), t.MapY(pt.Y), " "))
		if (i+1)%svgPointsPerLine == 0 {
			b.WriteString(svgContinuation)
		}
	}
	if p.closed {
		b.WriteString(" Z")
	}
	writeStrings(w, b.String())
}

// EmitSVGPoints writes an SVG points list "x,y x,y ...", breaking the line
// every six points. An empty path writes nothing.
func (p *Path) EmitSVGPoints(w io.Writer, t *TransformSVG) {
	if len(p.points) == 0 {
		return
	}
	var b strings.Builder
	for i, pt := range p.points {
		if i > 0 {
			b.WriteByte(' ')
			if i%svgPointsPerLine == 0 {
				b.WriteString(svgContinuation)
			}
		}
		b.WriteString(pointString(t.MapX(pt.X), t.MapY(pt.Y), ","))
	}
	writeStrings(w, b.String())
}

// EmitTikZ writes a TikZ coordinate chain "(x,y) -- (x,y)", ending with
// " -- cycle" when closed. An empty path writes nothing.
func (p *Path) EmitTikZ(w io.Writer, t *TransformTikZ) {
	if len(p.points) == 0 {
		return
	}
	var b strings.Builder
	for i, pt := range p.points {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteByte('(')
		b.WriteString(pointString(t.MapX(pt.X), t.MapY(pt.Y), ","))
		b.WriteByte(')')
	}
	if p.closed {
		b.WriteString(" -- cycle")
	}
	writeStrings(w, b.String())
}

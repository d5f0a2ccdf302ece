package board

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for board package.
var (
	// ErrShapeType is returned when a shape is requested as a type it is not.
	ErrShapeType = errors.New("board: shape type mismatch")

	// ErrIndexOutOfRange is returned when a list position does not exist.
	ErrIndexOutOfRange = errors.New("board: index out of range")
)

// Shape is a drawable element of a scene.
//
// The set of shapes is closed: Dot, Line, Arrow, Polyline, Rectangle,
// Triangle, GouraudTriangle, Ellipse, Circle, Text, ShapeList and Group.
// Shapes are mutated in place; use Clone or the generic copy helpers
// (Rotated, Translated, Scaled, Resized) for transformed copies.
type Shape interface {
	// Name returns the display name of the concrete type, e.g. "Circle".
	Name() string

	// Clone returns a deep copy sharing no state with the receiver.
	Clone() Shape

	// Center returns the point the shape rotates and scales about.
	Center(flag LineWidthFlag) Point

	// Rotate rotates the shape by angle radians (counter-clockwise)
	// around pivot.
	Rotate(angle float64, pivot Point)

	// Translate moves the shape by (dx, dy).
	Translate(dx, dy float64)

	// Scale scales the shape by (sx, sy) about its center. Line widths are
	// scaled only when LineWidthScaling is enabled. Zero and negative
	// factors are accepted and produce degenerate or mirrored geometry.
	Scale(sx, sy float64)

	// ScaleAll scales every coordinate about the origin and every length,
	// including the line width, by s.
	ScaleAll(s float64)

	// BoundingBox returns the axis-aligned extent of the shape, inflated
	// by half the line width when flag is UseLineWidth.
	BoundingBox(flag LineWidthFlag) Rect

	// EmitEPS writes the shape as PostScript.
	EmitEPS(w io.Writer, t *TransformEPS)

	// EmitFIG writes the shape as XFig records, registering its colors in p.
	EmitFIG(w io.Writer, t *TransformFIG, p *Palette)

	// EmitSVG writes the shape as SVG elements.
	EmitSVG(w io.Writer, t *TransformSVG)

	// EmitTikZ writes the shape as TikZ commands.
	EmitTikZ(w io.Writer, t *TransformTikZ)

	Depth() int
	HasDepth() bool
	SetDepth(depth int)
	ClearDepth()
	ShiftDepth(shift int)

	PenColor() Color
	SetPenColor(c Color)
	FillColor() Color
	SetFillColor(c Color)
	Filled() bool
	LineWidth() float64
	SetLineWidth(w float64)
	LineStyle() LineStyle
	SetLineStyle(s LineStyle)
	LineCap() LineCap
	SetLineCap(c LineCap)
	LineJoin() LineJoin
	SetLineJoin(j LineJoin)

	attrs() *attributes
}

// attributes is the state common to every shape.
type attributes struct {
	penColor  Color
	fillColor Color
	lineWidth float64
	lineStyle LineStyle
	lineCap   LineCap
	lineJoin  LineJoin
	depth     int
	hasDepth  bool
}

func attributesFrom(d Defaults) attributes {
	return attributes{
		penColor:  d.PenColor,
		fillColor: d.FillColor,
		lineWidth: d.LineWidth,
		lineStyle: d.LineStyle,
		lineCap:   d.LineCap,
		lineJoin:  d.LineJoin,
		depth:     -1,
	}
}

func (a *attributes) attrs() *attributes { return a }

func (a *attributes) PenColor() Color          { return a.penColor }
func (a *attributes) SetPenColor(c Color)      { a.penColor = c }
func (a *attributes) FillColor() Color         { return a.fillColor }
func (a *attributes) SetFillColor(c Color)     { a.fillColor = c }
func (a *attributes) LineWidth() float64       { return a.lineWidth }
func (a *attributes) SetLineWidth(w float64)   { a.lineWidth = w }
func (a *attributes) LineStyle() LineStyle     { return a.lineStyle }
func (a *attributes) SetLineStyle(s LineStyle) { a.lineStyle = s }
func (a *attributes) LineCap() LineCap         { return a.lineCap }
func (a *attributes) SetLineCap(c LineCap)     { a.lineCap = c }
func (a *attributes) LineJoin() LineJoin       { return a.lineJoin }
func (a *attributes) SetLineJoin(j LineJoin)   { a.lineJoin = j }

// Filled reports whether the shape has a fill color.
func (a *attributes) Filled() bool {
	return !a.fillColor.IsNull()
}

// Depth returns the depth of the shape, or -1 when none was assigned.
func (a *attributes) Depth() int {
	if !a.hasDepth {
		return -1
	}
	return a.depth
}

// HasDepth reports whether a depth was assigned, explicitly or by a list.
func (a *attributes) HasDepth() bool {
	return a.hasDepth
}

// SetDepth assigns an explicit depth. Higher depths are further back.
func (a *attributes) SetDepth(depth int) {
	a.depth = depth
	a.hasDepth = true
}

// ClearDepth removes the depth so that the next ShapeList.Add assigns one.
func (a *attributes) ClearDepth() {
	a.depth = -1
	a.hasDepth = false
}

// ShiftDepth adds shift to an assigned depth. A shape without a depth is
// left unchanged.
func (a *attributes) ShiftDepth(shift int) {
	if a.hasDepth {
		a.depth += shift
	}
}

// updateLineWidth applies a geometric scale to the line width when
// line width scaling is enabled.
func (a *attributes) updateLineWidth(sx, sy float64) {
	if LineWidthScaling() {
		a.lineWidth *= math.Max(math.Abs(sx), math.Abs(sy))
	}
}

// inflate grows r by half the line width when flag is UseLineWidth.
func (a *attributes) inflate(r Rect, flag LineWidthFlag) Rect {
	if flag == UseLineWidth && a.lineWidth > 0 {
		return r.Grow(a.lineWidth / 2)
	}
	return r
}

func (a *attributes) stroked() bool {
	return !a.penColor.IsNull()
}

// epsProperties returns "w slw cap slc join slj [dash] 0 sd".
func (a *attributes) epsProperties(t *TransformEPS) string {
	return FormatNumber(t.MapWidth(a.lineWidth)) + " slw " +
		strconv.Itoa(int(a.lineCap)) + " slc " +
		strconv.Itoa(int(a.lineJoin)) + " slj [" +
		joinFloats(a.lineStyle.dashPattern(), " ") + "] 0 sd"
}

// epsFillAndStroke fills then strokes the current path built by path.
func (a *attributes) epsFillAndStroke(w io.Writer, t *TransformEPS, path func()) {
	if a.Filled() {
		writeStrings(w, "n ")
		path()
		writeStrings(w, a.fillColor.PostScriptRGB(), " srgb fill\n")
	}
	if a.stroked() {
		writeStrings(w, a.epsProperties(t), " n ")
		path()
		writeStrings(w, a.penColor.PostScriptRGB(), " srgb stroke\n")
	}
}

// svgStyle returns a style attribute with fill and stroke properties.
func (a *attributes) svgStyle(t *TransformSVG) string {
	var b strings.Builder
	b.WriteString(` style="fill:`)
	b.WriteString(a.fillColor.svgString())
	if a.Filled() {
		b.WriteString(";fill-opacity:")
		b.WriteString(a.fillColor.svgOpacity())
	}
	b.WriteString(";stroke:")
	b.WriteString(a.penColor.svgString())
	if a.stroked() {
		b.WriteString(";stroke-opacity:")
		b.WriteString(a.penColor.svgOpacity())
		b.WriteString(";stroke-width:")
		b.WriteString(FormatNumber(t.MapWidth(a.lineWidth)))
		b.WriteString(";stroke-linecap:")
		b.WriteString(a.lineCap.svgString())
		b.WriteString(";stroke-linejoin:")
		b.WriteString(a.lineJoin.svgString())
		if dash := a.lineStyle.dashPattern(); dash != nil {
			b.WriteString(";stroke-dasharray:")
			b.WriteString(joinFloats(dash, ","))
		}
	}
	b.WriteString(`"`)
	return b.String()
}

// tikzOptions returns the bracketed draw options of the shape.
func (a *attributes) tikzOptions(t *TransformTikZ) string {
	var b strings.Builder
	b.WriteString("[fill=")
	b.WriteString(a.fillColor.tikzString())
	b.WriteString(",draw=")
	b.WriteString(a.penColor.tikzString())
	if a.stroked() {
		b.WriteString(",line width=")
		b.WriteString(FormatNumber(t.MapWidth(a.lineWidth)))
		b.WriteString("pt,line cap=")
		b.WriteString(a.lineCap.tikzString())
		b.WriteString(",line join=")
		b.WriteString(a.lineJoin.String())
		if dash := a.lineStyle.dashPattern(); dash != nil {
			b.WriteString(",dash pattern=")
			for i, v := range dash {
				if i > 0 {
					b.WriteByte(' ')
				}
				if i%2 == 0 {
					b.WriteString("on ")
				} else {
					b.WriteString("off ")
				}
				b.WriteString(FormatNumber(v))
				b.WriteString("pt")
			}
		}
	}
	b.WriteString("]")
	return b.String()
}

// figCommon returns the FIG fields shared by polyline and ellipse records:
// line_style thickness pen_color fill_color depth pen_style area_fill style_val.
func (a *attributes) figCommon(t *TransformFIG, p *Palette) string {
	thickness := 0
	pen := -1
	if a.stroked() {
		thickness = t.MapWidth(a.lineWidth)
		pen = p.Index(a.penColor)
	}
	fill := -1
	areaFill := -1
	if a.Filled() {
		fill = p.Index(a.fillColor)
		areaFill = 20
	}
	styleVal := "0.000"
	if a.lineStyle != SolidStyle {
		styleVal = "4.000"
	}
	return fmt.Sprintf("%d %d %d %d %d -1 %d %s",
		int(a.lineStyle), thickness, pen, fill, t.MapDepth(a.Depth()), areaFill, styleVal)
}

// RotateAboutCenter rotates s by angle radians around its own center.
func RotateAboutCenter(s Shape, angle float64) {
	s.Rotate(angle, s.Center(IgnoreLineWidth))
}

// RotateDeg rotates s by angle degrees around pivot.
func RotateDeg(s Shape, angle float64, pivot Point) {
	s.Rotate(angle*math.Pi/180, pivot)
}

// RotateDegAboutCenter rotates s by angle degrees around its own center.
func RotateDegAboutCenter(s Shape, angle float64) {
	RotateAboutCenter(s, angle*math.Pi/180)
}

// ScaleUniform scales s by k in both directions.
func ScaleUniform(s Shape, k float64) {
	s.Scale(k, k)
}

// MoveCenter translates s so that its center lies at p.
func MoveCenter(s Shape, p Point, flag LineWidthFlag) {
	c := s.Center(flag)
	s.Translate(p.X-c.X, p.Y-c.Y)
}

// Resize scales s so that its bounding box measures width x height.
// An axis along which the shape has no extent is left unscaled.
func Resize(s Shape, width, height float64, flag LineWidthFlag) {
	r := s.BoundingBox(flag)
	s.Scale(ratio(width, r.Width), ratio(height, r.Height))
}

// ScaleToWidth scales s uniformly so that its bounding box is w wide.
func ScaleToWidth(s Shape, w float64, flag LineWidthFlag) {
	ScaleUniform(s, ratio(w, s.BoundingBox(flag).Width))
}

// ScaleToHeight scales s uniformly so that its bounding box is h high.
func ScaleToHeight(s Shape, h float64, flag LineWidthFlag) {
	ScaleUniform(s, ratio(h, s.BoundingBox(flag).Height))
}

func ratio(want, have float64) float64 {
	if have == 0 {
		return 1
	}
	return want / have
}

// PushBack moves s one step further back.
func PushBack(s Shape) { s.ShiftDepth(1) }

// PullForward moves s one step toward the front.
func PullForward(s Shape) { s.ShiftDepth(-1) }

// Rotated returns a copy of s rotated by angle radians around pivot.
func Rotated[S Shape](s S, angle float64, pivot Point) S {
	c := s.Clone().(S)
	c.Rotate(angle, pivot)
	return c
}

// RotatedAboutCenter returns a copy of s rotated around its own center.
func RotatedAboutCenter[S Shape](s S, angle float64) S {
	c := s.Clone().(S)
	RotateAboutCenter(c, angle)
	return c
}

// Translated returns a copy of s moved by (dx, dy).
func Translated[S Shape](s S, dx, dy float64) S {
	c := s.Clone().(S)
	c.Translate(dx, dy)
	return c
}

// Scaled returns a copy of s scaled by (sx, sy) about its center.
func Scaled[S Shape](s S, sx, sy float64) S {
	c := s.Clone().(S)
	c.Scale(sx, sy)
	return c
}

// Resized returns a copy of s resized to width x height.
func Resized[S Shape](s S, width, height float64, flag LineWidthFlag) S {
	c := s.Clone().(S)
	Resize(c, width, height, flag)
	return c
}

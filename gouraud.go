package board

import (
	"io"
	"strconv"
)

// GouraudTriangle is a triangle shaded by interpolating three vertex colors.
//
// None of the output formats has a portable gradient mesh, so EPS, SVG and
// TikZ approximate the shading: the triangle is split into four sub-triangles
// per subdivision level and every leaf is filled with the mean color of its
// corners. FIG renders the whole triangle with the mean of the three vertex
// colors.
type GouraudTriangle struct {
	vertices
	colors       [3]Color
	subdivisions int
}

// NewGouraudTriangle creates a shaded triangle. Unless overridden by
// options it has no outline, and its fill color is the mean vertex color.
func NewGouraudTriangle(p0 Point, c0 Color, p1 Point, c1 Color, p2 Point, c2 Color,
	subdivisions int, opts ...Option) *GouraudTriangle {
	o := collectOptions(opts)
	o.defaults.PenColor = Null
	o.defaults.FillColor = MeanColor(c0, c1, c2)
	o.defaults.LineWidth = 0
	return &GouraudTriangle{
		vertices: vertices{
			attributes: o.attributes(),
			path:       Path{points: []Point{p0, p1, p2}, closed: true},
		},
		colors:       [3]Color{c0, c1, c2},
		subdivisions: max(subdivisions, 0),
	}
}

// NewGouraudTriangleBrightness creates a shaded triangle whose vertex
// colors are fill with its brightness multiplied by b0, b1 and b2.
func NewGouraudTriangleBrightness(p0 Point, b0 float64, p1 Point, b1 float64, p2 Point, b2 float64,
	fill Color, subdivisions int, opts ...Option) *GouraudTriangle {
	return NewGouraudTriangle(p0, fill.Brightness(b0), p1, fill.Brightness(b1), p2, fill.Brightness(b2),
		subdivisions, opts...)
}

func (g *GouraudTriangle) Name() string { return "GouraudTriangle" }

func (g *GouraudTriangle) Clone() Shape {
	return &GouraudTriangle{
		vertices:     g.cloneVertices(),
		colors:       g.colors,
		subdivisions: g.subdivisions,
	}
}

// VertexColors returns the colors of the three vertices.
func (g *GouraudTriangle) VertexColors() [3]Color { return g.colors }

// SetVertexColor changes the color of vertex i.
func (g *GouraudTriangle) SetVertexColor(i int, c Color) { g.colors[i] = c }

// Subdivisions returns the number of subdivision levels.
func (g *GouraudTriangle) Subdivisions() int { return g.subdivisions }

// MeanColor returns the flat color used where shading is unavailable.
func (g *GouraudTriangle) MeanColor() Color {
	return MeanColor(g.colors[:]...)
}

// flatTriangles calls fn for every leaf of the subdivision, in drawing order.
func (g *GouraudTriangle) flatTriangles(fn func(p [3]Point, c Color)) {
	var split func(p [3]Point, c [3]Color, level int)
	split = func(p [3]Point, c [3]Color, level int) {
		if level == 0 {
			fn(p, MeanColor(c[:]...))
			return
		}
		m01, m12, m20 := p[0].Mid(p[1]), p[1].Mid(p[2]), p[2].Mid(p[0])
		c01, c12, c20 := c[0].Lerp(c[1], 0.5), c[1].Lerp(c[2], 0.5), c[2].Lerp(c[0], 0.5)
		split([3]Point{p[0], m01, m20}, [3]Color{c[0], c01, c20}, level-1)
		split([3]Point{m01, p[1], m12}, [3]Color{c01, c[1], c12}, level-1)
		split([3]Point{m20, m12, p[2]}, [3]Color{c20, c12, c[2]}, level-1)
		split([3]Point{m01, m12, m20}, [3]Color{c01, c12, c20}, level-1)
	}
	if g.path.Len() != 3 {
		return
	}
	split([3]Point(g.path.points), g.colors, g.subdivisions)
}

func (g *GouraudTriangle) EmitEPS(w io.Writer, t *TransformEPS) {
	g.flatTriangles(func(p [3]Point, c Color) {
		if c.IsNull() {
			return
		}
		tri := Path{points: p[:], closed: true}
		writeStrings(w, "n ")
		tri.EmitEPS(w, t)
		writeStrings(w, c.PostScriptRGB(), " srgb fill\n")
	})
	if g.stroked() {
		writeStrings(w, g.epsProperties(t), " n ")
		g.path.EmitEPS(w, t)
		writeStrings(w, g.penColor.PostScriptRGB(), " srgb stroke\n")
	}
}

func (g *GouraudTriangle) EmitFIG(w io.Writer, t *TransformFIG, p *Palette) {
	if g.path.IsEmpty() {
		return
	}
	flat := g.attributes
	flat.fillColor = g.MeanColor()
	writeStrings(w, "2 3 ", flat.figCommon(t, p), " ",
		strconv.Itoa(int(g.lineJoin)), " ", strconv.Itoa(int(g.lineCap)), " -1 0 0 ",
		strconv.Itoa(g.path.FIGPointCount()), "\n\t")
	g.path.EmitFIG(w, t)
	writeStrings(w, "\n")
}

func (g *GouraudTriangle) EmitSVG(w io.Writer, t *TransformSVG) {
	g.flatTriangles(func(p [3]Point, c Color) {
		if c.IsNull() {
			return
		}
		tri := Path{points: p[:], closed: true}
		writeStrings(w, `<polygon points="`)
		tri.EmitSVGPoints(w, t)
		writeStrings(w, `" style="fill:`, c.svgString(), ";fill-opacity:", c.svgOpacity(), `;stroke:none" />`, "\n")
	})
	if g.stroked() {
		outline := g.attributes
		outline.fillColor = Null
		writeStrings(w, "<polygon", outline.svgStyle(t), "\n          points=\"")
		g.path.EmitSVGPoints(w, t)
		writeStrings(w, "\" />\n")
	}
}

func (g *GouraudTriangle) EmitTikZ(w io.Writer, t *TransformTikZ) {
	g.flatTriangles(func(p [3]Point, c Color) {
		if c.IsNull() {
			return
		}
		tri := Path{points: p[:], closed: true}
		writeStrings(w, `\fill[color=`, c.tikzString(), "] ")
		tri.EmitTikZ(w, t)
		writeStrings(w, ";\n")
	})
	if g.stroked() {
		outline := g.attributes
		outline.fillColor = Null
		writeStrings(w, `\path`, outline.tikzOptions(t), " ")
		g.path.EmitTikZ(w, t)
		writeStrings(w, ";\n")
	}
}

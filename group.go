package board

import (
	"io"
	"strconv"
)

// Group is a ShapeList written as one compound object: a FIG compound, an
// SVG <g> element, a TikZ scope. A group may clip its members to a closed
// path.
//
// FIG has no clipping, so a clipped group is written unclipped there.
type Group struct {
	ShapeList
	clip Path
}

// NewGroup creates an empty, unclipped group.
func NewGroup(opts ...Option) *Group {
	return &Group{ShapeList: *NewShapeList(opts...), clip: Path{closed: true}}
}

func (g *Group) Name() string { return "Group" }

func (g *Group) Clone() Shape {
	return &Group{ShapeList: *g.cloneList(), clip: g.clip.clone()}
}

// SetClippingRectangle clips the group to the rectangle whose top-left
// corner is (x, y).
func (g *Group) SetClippingRectangle(x, y, width, height float64) {
	g.clip = Path{points: []Point{
		Pt(x, y), Pt(x+width, y), Pt(x+width, y-height), Pt(x, y-height),
	}, closed: true}
}

// SetClippingPath clips the group to path, which is closed if it is not.
// An empty path removes the clipping.
func (g *Group) SetClippingPath(path *Path) {
	g.clip = path.clone()
	g.clip.closed = true
}

// ClippingPath returns a copy of the clipping path, empty when the group
// is not clipped.
func (g *Group) ClippingPath() *Path {
	return g.clip.Clone()
}

// clipped reports whether the clip path encloses an area.
func (g *Group) clipped() bool {
	return g.clip.Len() > 2
}

// BoundingBox returns the bounding box of the members, restricted to the
// clipping path when there is one.
func (g *Group) BoundingBox(flag LineWidthFlag) Rect {
	r := g.ShapeList.BoundingBox(flag)
	if g.clipped() {
		return r.Intersection(g.clip.BoundingBox())
	}
	return r
}

func (g *Group) Center(flag LineWidthFlag) Point {
	return g.BoundingBox(flag).Center()
}

func (g *Group) Rotate(angle float64, pivot Point) {
	g.ShapeList.Rotate(angle, pivot)
	g.clip.Rotate(angle, pivot)
}

func (g *Group) Translate(dx, dy float64) {
	g.ShapeList.Translate(dx, dy)
	g.clip.Translate(dx, dy)
}

func (g *Group) Scale(sx, sy float64) {
	pivot := g.Center(IgnoreLineWidth)
	g.scaleAbout(sx, sy, pivot)
	g.clip.ScaleAbout(sx, sy, pivot)
}

func (g *Group) ScaleAll(s float64) {
	g.ShapeList.ScaleAll(s)
	g.clip.ScaleAll(s)
}

func (g *Group) EmitEPS(w io.Writer, t *TransformEPS) {
	if !g.clipped() {
		writeStrings(w, "%%% Begin Group\n")
		g.ShapeList.EmitEPS(w, t)
		writeStrings(w, "%%% End Group\n")
		return
	}
	writeStrings(w, "%%% Begin Clipped Group\ngs n ")
	g.clip.EmitEPS(w, t)
	writeStrings(w, "clip\n")
	g.ShapeList.EmitEPS(w, t)
	writeStrings(w, "gr\n%%% End Clipped Group\n")
}

// EmitFIG writes the members inside a compound. An empty group writes
// nothing since XFig rejects empty compounds.
func (g *Group) EmitFIG(w io.Writer, t *TransformFIG, p *Palette) {
	if g.Len() == 0 {
		return
	}
	r := g.BoundingBox(UseLineWidth)
	writeStrings(w, "6 ",
		strconv.Itoa(t.MapX(r.Left)), " ", strconv.Itoa(t.MapY(r.Top)), " ",
		strconv.Itoa(t.MapX(r.Right())), " ", strconv.Itoa(t.MapY(r.Bottom())), "\n")
	g.ShapeList.EmitFIG(w, t, p)
	writeStrings(w, "-6\n")
}

func (g *Group) EmitSVG(w io.Writer, t *TransformSVG) {
	if !g.clipped() {
		writeStrings(w, "<g>\n")
		g.ShapeList.EmitSVG(w, t)
		writeStrings(w, "</g>\n")
		return
	}
	id := t.NextClipID()
	writeStrings(w, `<g clip-rule="nonzero">`, "\n",
		` <clipPath id="`, id, `" clipPathUnits="userSpaceOnUse">`, "\n",
		`  <path clip-rule="evenodd" d="`)
	g.clip.EmitSVGCommands(w, t)
	writeStrings(w, `" />`, "\n", " </clipPath>\n",
		`<g clip-path="url(#`, id, `)">`, "\n")
	g.ShapeList.EmitSVG(w, t)
	writeStrings(w, "</g>\n</g>\n")
}

func (g *Group) EmitTikZ(w io.Writer, t *TransformTikZ) {
	writeStrings(w, `\begin{scope}`, "\n")
	if g.clipped() {
		writeStrings(w, `\clip `)
		g.clip.EmitTikZ(w, t)
		writeStrings(w, ";\n")
	}
	g.ShapeList.EmitTikZ(w, t)
	writeStrings(w, `\end{scope}`, "\n")
}

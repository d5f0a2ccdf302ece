package board

import (
	"io"
	"math"
	"strconv"

	"github.com/gogpu/board/text"
)

// Text is a single line of text set in one of the standard PostScript
// fonts. Its position is the left end of the baseline.
//
// The extent of the text comes from a text.Measurer when the shape is
// created: the advance width and the height above the baseline. It is
// kept as a four-point box (bottom-left, bottom-right, top-right,
// top-left) that follows every later transform, so the angle and scale of
// the text are derived from the box rather than stored separately.
type Text struct {
	attributes
	box     Path
	content string
	font    text.Font
	svgFont string
	size    float64
	xScale  float64
	yScale  float64
	width   float64
	height  float64
}

// NewText creates text whose baseline starts at (x, y). The pen color is
// the text color. Use WithMeasurer to choose the font metrics and
// WithSVGFont to override the SVG font family.
func NewText(x, y float64, s string, font text.Font, size float64, opts ...Option) *Text {
	o := collectOptions(opts)
	m := o.measurer
	if m == nil {
		m = text.DefaultMeasurer()
	}
	w, h := m.Measure(s, font, size)
	return &Text{
		attributes: o.attributes(),
		box: Path{points: []Point{
			Pt(x, y), Pt(x+w, y), Pt(x+w, y+h), Pt(x, y+h),
		}, closed: true},
		content: s,
		font:    font,
		svgFont: o.svgFont,
		size:    size,
		xScale:  1,
		yScale:  1,
		width:   w,
		height:  h,
	}
}

func (t *Text) Name() string { return "Text" }

func (t *Text) Clone() Shape {
	c := *t
	c.box = t.box.clone()
	return &c
}

// Content returns the text string.
func (t *Text) Content() string { return t.content }

// Font returns the PostScript font.
func (t *Text) Font() text.Font { return t.font }

// Size returns the font size in points, before any scaling.
func (t *Text) Size() float64 { return t.size }

// SVGFont returns the font family written to SVG, or "" for the family
// derived from the font.
func (t *Text) SVGFont() string { return t.svgFont }

// Position returns the left end of the baseline.
func (t *Text) Position() Point { return t.box.points[0] }

// Angle returns the direction of the baseline in radians.
func (t *Text) Angle() float64 {
	d := t.box.points[1].Sub(t.box.points[0])
	if d.X == 0 && d.Y == 0 {
		// Empty text: fall back to the left edge, which is vertical when
		// the text is upright.
		e := t.box.points[3].Sub(t.box.points[0])
		if e.X == 0 && e.Y == 0 {
			return 0
		}
		return math.Atan2(e.Y, e.X) - math.Pi/2
	}
	return math.Atan2(d.Y, d.X)
}

// Center returns the center of the text box, whatever the flag.
func (t *Text) Center(LineWidthFlag) Point {
	return t.box.points[0].Mid(t.box.points[2])
}

func (t *Text) Rotate(angle float64, pivot Point) {
	t.box.Rotate(angle, pivot)
}

func (t *Text) Translate(dx, dy float64) {
	t.box.Translate(dx, dy)
}

func (t *Text) Scale(sx, sy float64) {
	t.box.ScaleAbout(sx, sy, t.Center(IgnoreLineWidth))
	t.xScale *= sx
	t.yScale *= sy
	t.updateLineWidth(sx, sy)
}

func (t *Text) ScaleAll(s float64) {
	t.box.ScaleAll(s)
	t.xScale *= s
	t.yScale *= s
	t.lineWidth *= s
}

// BoundingBox returns the extent of the text box. Text has no stroke, so
// the flag is ignored.
func (t *Text) BoundingBox(LineWidthFlag) Rect {
	return t.box.BoundingBox()
}

// visible reports whether the text produces any output: it needs content
// and a pen color.
func (t *Text) visible() bool { return t.stroked() && t.content != "" }

func (t *Text) degrees() float64 { return t.Angle() * 180 / math.Pi }

func (t *Text) svgFamily() string {
	if t.svgFont != "" {
		return t.svgFont
	}
	return t.font.SVGFamily()
}

func (t *Text) EmitEPS(w io.Writer, tr *TransformEPS) {
	if !t.visible() {
		return
	}
	p := t.Position()
	writeStrings(w, "gs ", pointString(tr.MapX(p.X), tr.MapY(p.Y), " "), " tr ",
		FormatNumber(t.degrees()), " rot ",
		pointString(t.xScale*tr.ScaleFactor(), t.yScale*tr.ScaleFactor(), " "), " sc /",
		t.font.PostScriptName(), " findfont ", FormatNumber(t.size), " scalefont setfont ",
		t.penColor.PostScriptRGB(), " srgb 0 0 m ", text.PostScriptString(t.content), " show gr\n")
}

func (t *Text) EmitFIG(w io.Writer, tr *TransformFIG, p *Palette) {
	if !t.visible() {
		return
	}
	pos := t.Position()
	fontSize := t.size * math.Abs(t.yScale) * tr.ScaleFactor() * 72 / figDPI
	height := int(math.Round(math.Abs(tr.Scale(t.height * t.yScale))))
	length := int(math.Round(math.Abs(tr.Scale(t.width * t.xScale))))
	writeStrings(w, "4 0 ", strconv.Itoa(p.Index(t.penColor)), " ",
		strconv.Itoa(tr.MapDepth(t.Depth())), " -1 ", strconv.Itoa(int(t.font)), " ",
		FormatNumber(fontSize), " ", strconv.FormatFloat(t.Angle(), 'f', 4, 64), " 4 ",
		strconv.Itoa(height), " ", strconv.Itoa(length), " ",
		strconv.Itoa(tr.MapX(pos.X)), " ", strconv.Itoa(tr.MapY(pos.Y)), " ",
		text.FIGString(t.content), "\\001\n")
}

func (t *Text) EmitSVG(w io.Writer, tr *TransformSVG) {
	if !t.visible() {
		return
	}
	p := t.Position()
	writeStrings(w, `<text x="0" y="0" transform="translate(`,
		pointString(tr.MapX(p.X), tr.MapY(p.Y), ","), ") rotate(", FormatNumber(-t.degrees()),
		") scale(", pointString(t.xScale*tr.ScaleFactor(), t.yScale*tr.ScaleFactor(), ","), `)"`,
		` font-family="`, escapeXML(t.svgFamily()), `" font-size="`, FormatNumber(t.size), `"`)
	if weight := t.font.SVGWeight(); weight != "normal" {
		writeStrings(w, ` font-weight="`, weight, `"`)
	}
	if style := t.font.SVGStyle(); style != "normal" {
		writeStrings(w, ` font-style="`, style, `"`)
	}
	writeStrings(w, ` fill="`, t.penColor.svgString(), `"`)
	if t.penColor.A != 255 {
		writeStrings(w, ` fill-opacity="`, t.penColor.svgOpacity(), `"`)
	}
	writeStrings(w, ">", escapeXML(t.content), "</text>\n")
}

func (t *Text) EmitTikZ(w io.Writer, tr *TransformTikZ) {
	if !t.visible() {
		return
	}
	p := t.Position()
	writeStrings(w, `\node[anchor=base west,inner sep=0pt,outer sep=0pt,rotate=`, FormatNumber(t.degrees()),
		",xscale=", FormatNumber(t.xScale*tr.ScaleFactor()), ",yscale=", FormatNumber(t.yScale*tr.ScaleFactor()),
		",text=", t.penColor.tikzString(),
		`,font=\fontsize{`, FormatNumber(t.size), "}{", FormatNumber(t.size*1.2), `}\selectfont] at (`,
		pointString(tr.MapX(p.X), tr.MapY(p.Y), ","), ") {", escapeTikZ(t.content), "};\n")
}

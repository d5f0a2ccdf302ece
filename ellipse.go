package board

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Ellipse is an ellipse given by its center, its two radii and the angle
// of its x radius. The angle is kept in (-π/2, π/2] since an ellipse is
// symmetric under a half turn.
type Ellipse struct {
	attributes
	center  Point
	xRadius float64
	yRadius float64
	angle   float64
	circle  bool
}

// NewEllipse creates an axis-aligned ellipse centered at (cx, cy).
func NewEllipse(cx, cy, xRadius, yRadius float64, opts ...Option) *Ellipse {
	o := collectOptions(opts)
	return &Ellipse{
		attributes: o.attributes(),
		center:     Pt(cx, cy),
		xRadius:    xRadius,
		yRadius:    yRadius,
	}
}

func (e *Ellipse) Name() string { return "Ellipse" }

func (e *Ellipse) Clone() Shape {
	c := *e
	return &c
}

// Radii returns the x and y radii.
func (e *Ellipse) Radii() (float64, float64) { return e.xRadius, e.yRadius }

// Angle returns the rotation of the x radius in radians.
func (e *Ellipse) Angle() float64 { return e.angle }

// IsCircle reports whether the ellipse is drawn as a circle.
func (e *Ellipse) IsCircle() bool { return e.circle }

// Center returns the geometric center, whatever the flag.
func (e *Ellipse) Center(LineWidthFlag) Point { return e.center }

func (e *Ellipse) Rotate(angle float64, pivot Point) {
	e.center = RotateAbout(angle, pivot).TransformPoint(e.center)
	if !e.circle {
		e.angle = normalizeHalfTurn(e.angle + angle)
	}
}

func (e *Ellipse) Translate(dx, dy float64) {
	e.center = e.center.Add(Pt(dx, dy))
}

// Scale maps the ellipse through diag(sx, sy) about its center. The result
// is again an ellipse; its radii and angle are recovered from the
// eigen-decomposition of M·Mᵀ, where M maps the unit circle onto it.
func (e *Ellipse) Scale(sx, sy float64) {
	e.updateLineWidth(sx, sy)
	if e.circle && math.Abs(sx) == math.Abs(sy) {
		e.xRadius *= math.Abs(sx)
		e.yRadius *= math.Abs(sx)
		return
	}

	m := Scale(sx, sy).Multiply(Rotate(e.angle)).Multiply(Scale(e.xRadius, e.yRadius))
	a, b, c := m.gram()

	mean := (a + c) / 2
	d := math.Hypot((a-c)/2, b)
	major := math.Sqrt(mean + d)
	minor := math.Sqrt(math.Max(mean-d, 0))
	phi := 0.5 * math.Atan2(2*b, a-c)
	if a == c && b == 0 {
		phi = e.angle
	}

	// Keep the x radius on the axis closest to its previous direction.
	if math.Abs(normalizeHalfTurn(phi-e.angle)) <= math.Pi/4 {
		e.xRadius, e.yRadius, e.angle = major, minor, normalizeHalfTurn(phi)
	} else {
		e.xRadius, e.yRadius, e.angle = minor, major, normalizeHalfTurn(phi+math.Pi/2)
	}
	if e.circle && math.Abs(e.xRadius-e.yRadius) > 1e-12*math.Max(e.xRadius, 1) {
		e.circle = false
	}
}

func (e *Ellipse) ScaleAll(s float64) {
	e.center = e.center.Mul(s)
	e.xRadius *= math.Abs(s)
	e.yRadius *= math.Abs(s)
	e.lineWidth *= s
}

func (e *Ellipse) BoundingBox(flag LineWidthFlag) Rect {
	cos, sin := math.Cos(e.angle), math.Sin(e.angle)
	hx := math.Hypot(e.xRadius*cos, e.yRadius*sin)
	hy := math.Hypot(e.xRadius*sin, e.yRadius*cos)
	return e.inflate(Rect{
		Left:   e.center.X - hx,
		Top:    e.center.Y + hy,
		Width:  2 * hx,
		Height: 2 * hy,
	}, flag)
}

// normalizeHalfTurn folds an angle into (-π/2, π/2].
func normalizeHalfTurn(a float64) float64 {
	a = math.Mod(a, math.Pi)
	switch {
	case a > math.Pi/2:
		a -= math.Pi
	case a <= -math.Pi/2:
		a += math.Pi
	}
	return a
}

func (e *Ellipse) degrees() float64 { return e.angle * 180 / math.Pi }

func (e *Ellipse) EmitEPS(w io.Writer, t *TransformEPS) {
	cx, cy := t.MapX(e.center.X), t.MapY(e.center.Y)
	rx, ry := t.Scale(e.xRadius), t.Scale(e.yRadius)
	path := func() {
		if rx == 0 || ry == 0 {
			// A flat ellipse is the segment along its longer axis.
			r := math.Max(math.Abs(rx), math.Abs(ry))
			dir := Pt(math.Cos(e.angle), math.Sin(e.angle))
			if rx == 0 {
				dir = Pt(-dir.Y, dir.X)
			}
			a, b := Pt(cx, cy).Sub(dir.Mul(r)), Pt(cx, cy).Add(dir.Mul(r))
			writeStrings(w, pointString(a.X, a.Y, " "), " m ", pointString(b.X, b.Y, " "), " l ")
			return
		}
		writeStrings(w, "matrix currentmatrix ", pointString(cx, cy, " "), " tr ",
			FormatNumber(e.degrees()), " rot ", pointString(rx, ry, " "),
			" sc 0 0 1 0 360 arc cp setmatrix ")
	}
	e.epsFillAndStroke(w, t, path)
}

func (e *Ellipse) EmitFIG(w io.Writer, t *TransformFIG, p *Palette) {
	subType, angle := "1", e.angle
	if e.circle {
		subType, angle = "3", 0
	}
	cx, cy := strconv.Itoa(t.MapX(e.center.X)), strconv.Itoa(t.MapY(e.center.Y))
	rx := int(math.Round(t.Scale(e.xRadius)))
	ry := int(math.Round(t.Scale(e.yRadius)))
	writeStrings(w, "1 ", subType, " ", e.figCommon(t, p), " 1 ", strconv.FormatFloat(angle, 'f', 4, 64), " ",
		cx, " ", cy, " ", strconv.Itoa(rx), " ", strconv.Itoa(ry), " ",
		cx, " ", cy, " ", strconv.Itoa(t.MapX(e.center.X)+rx), " ", cy, "\n")
}

func (e *Ellipse) EmitSVG(w io.Writer, t *TransformSVG) {
	cx, cy := FormatNumber(t.MapX(e.center.X)), FormatNumber(t.MapY(e.center.Y))
	if e.circle {
		writeStrings(w, `<circle cx="`, cx, `" cy="`, cy, `" r="`, FormatNumber(t.Scale(e.xRadius)), `"`,
			e.svgStyle(t), " />\n")
		return
	}
	writeStrings(w, `<ellipse cx="`, cx, `" cy="`, cy,
		`" rx="`, FormatNumber(t.Scale(e.xRadius)), `" ry="`, FormatNumber(t.Scale(e.yRadius)), `"`)
	if e.angle != 0 {
		writeStrings(w, ` transform="rotate(`, FormatNumber(-e.degrees()), ",", cx, ",", cy, `)"`)
	}
	writeStrings(w, e.svgStyle(t), " />\n")
}

func (e *Ellipse) EmitTikZ(w io.Writer, t *TransformTikZ) {
	c := pointString(t.MapX(e.center.X), t.MapY(e.center.Y), ",")
	opts := e.tikzOptions(t)
	if e.circle {
		writeStrings(w, `\path`, opts, " (", c, ") circle (", FormatNumber(t.Scale(e.xRadius)), ");\n")
		return
	}
	if e.angle != 0 {
		opts = strings.TrimSuffix(opts, "]") + ",rotate around={" + FormatNumber(e.degrees()) + ":(" + c + ")}]"
	}
	writeStrings(w, `\path`, opts, " (", c, ") ellipse (",
		FormatNumber(t.Scale(e.xRadius)), " and ", FormatNumber(t.Scale(e.yRadius)), ");\n")
}

// Circle is an ellipse with equal radii. It stays a circle under rotation
// and uniform scaling; an anisotropic scale turns it into a general
// ellipse.
type Circle struct {
	Ellipse
}

// NewCircle creates a circle centered at (cx, cy).
func NewCircle(cx, cy, radius float64, opts ...Option) *Circle {
	c := &Circle{Ellipse: *NewEllipse(cx, cy, radius, radius, opts...)}
	c.circle = true
	return c
}

func (c *Circle) Name() string { return "Circle" }

func (c *Circle) Clone() Shape {
	d := *c
	return &d
}

// Radius returns the x radius, which equals the y radius while the circle
// has not been scaled anisotropically.
func (c *Circle) Radius() float64 { return c.xRadius }

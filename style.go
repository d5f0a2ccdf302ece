package board

import "strings"

// LineStyle is the dash pattern of a stroke.
// Values match the XFig line_style codes.
type LineStyle int

const (
	SolidStyle LineStyle = iota
	DashStyle
	DotStyle
	DashDotStyle
	DashDotDotStyle
	DashDotDotDotStyle
)

// LineCap is the shape of stroke ends.
// Values match the PostScript setlinecap and XFig cap_style codes.
type LineCap int

const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

// LineJoin is the shape of stroke corners.
// Values match the PostScript setlinejoin and XFig join_style codes.
type LineJoin int

const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

// LineWidthFlag selects whether bounding boxes include half the stroke width.
type LineWidthFlag int

const (
	IgnoreLineWidth LineWidthFlag = iota
	UseLineWidth
)

var lineStyleNames = [...]string{"solid", "dash", "dot", "dashdot", "dashdotdot", "dashdotdotdot"}

// String returns the lowercase name of the style.
func (s LineStyle) String() string {
	if s < 0 || int(s) >= len(lineStyleNames) {
		return "solid"
	}
	return lineStyleNames[s]
}

// ParseLineStyle returns the style named s, case-insensitively.
func ParseLineStyle(s string) (LineStyle, bool) {
	s = strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for i, name := range lineStyleNames {
		if s == name {
			return LineStyle(i), true
		}
	}
	return SolidStyle, false
}

// String returns the lowercase name of the cap.
func (c LineCap) String() string {
	switch c {
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	default:
		return "butt"
	}
}

// ParseLineCap returns the cap named s, case-insensitively.
func ParseLineCap(s string) (LineCap, bool) {
	switch strings.ToLower(s) {
	case "butt":
		return ButtCap, true
	case "round":
		return RoundCap, true
	case "square":
		return SquareCap, true
	}
	return ButtCap, false
}

// String returns the lowercase name of the join.
func (j LineJoin) String() string {
	switch j {
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	default:
		return "miter"
	}
}

// ParseLineJoin returns the join named s, case-insensitively.
func ParseLineJoin(s string) (LineJoin, bool) {
	switch strings.ToLower(s) {
	case "miter":
		return MiterJoin, true
	case "round":
		return RoundJoin, true
	case "bevel":
		return BevelJoin, true
	}
	return MiterJoin, false
}

// dashPattern returns the dash array of s in points, nil for solid lines.
func (s LineStyle) dashPattern() []float64 {
	switch s {
	case DashStyle:
		return []float64{6, 3}
	case DotStyle:
		return []float64{1, 2}
	case DashDotStyle:
		return []float64{6, 2, 1, 2}
	case DashDotDotStyle:
		return []float64{6, 2, 1, 2, 1, 2}
	case DashDotDotDotStyle:
		return []float64{6, 2, 1, 2, 1, 2, 1, 2}
	default:
		return nil
	}
}

func joinFloats(values []float64, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, sep)
}

func (c LineCap) svgString() string {
	return c.String()
}

func (c LineCap) tikzString() string {
	switch c {
	case RoundCap:
		return "round"
	case SquareCap:
		return "rect"
	default:
		return "butt"
	}
}

func (j LineJoin) svgString() string {
	return j.String()
}

package board

import "sync/atomic"

// Defaults is the set of attributes a shape receives when its constructor
// is not given an explicit value. Defaults is an immutable value: change
// the process-wide snapshot with SetDefaults, or pass a value to a single
// constructor with WithDefaults.
type Defaults struct {
	LineWidth float64
	PenColor  Color
	FillColor Color
	LineStyle LineStyle
	LineCap   LineCap
	LineJoin  LineJoin
}

// DefaultStyle returns the built-in defaults: 1pt black solid stroke,
// no fill, butt caps and miter joins.
func DefaultStyle() Defaults {
	return Defaults{
		LineWidth: 1.0,
		PenColor:  Black,
		FillColor: Null,
		LineStyle: SolidStyle,
		LineCap:   ButtCap,
		LineJoin:  MiterJoin,
	}
}

var (
	defaultsPtr      atomic.Pointer[Defaults]
	lineWidthScaling atomic.Bool
)

func init() {
	d := DefaultStyle()
	defaultsPtr.Store(&d)
}

// SetDefaults replaces the process-wide defaults snapshot. Shapes already
// constructed are not affected.
func SetDefaults(d Defaults) {
	defaultsPtr.Store(&d)
}

// CurrentDefaults returns the process-wide defaults snapshot.
func CurrentDefaults() Defaults {
	return *defaultsPtr.Load()
}

// ResetDefaults restores DefaultStyle and disables line width scaling.
func ResetDefaults() {
	SetDefaults(DefaultStyle())
	lineWidthScaling.Store(false)
}

// SetLineWidthScaling sets whether Scale also scales line widths.
// It is off by default.
func SetLineWidthScaling(enabled bool) {
	lineWidthScaling.Store(enabled)
}

// LineWidthScaling reports whether Scale also scales line widths.
func LineWidthScaling() bool {
	return lineWidthScaling.Load()
}

package board

import "github.com/gogpu/board/text"

// Option configures a shape during creation.
//
// Example:
//
//	// Defaults from the process-wide snapshot
//	c := board.NewCircle(0, 0, 10)
//
//	// Explicit attributes
//	c := board.NewCircle(0, 0, 10,
//	    board.WithPenColor(board.Blue),
//	    board.WithFillColor(board.Yellow),
//	    board.WithLineWidth(2))
type Option func(*options)

// options holds the optional configuration of a shape constructor.
type options struct {
	defaults    Defaults
	hasDefaults bool
	edits       []func(*attributes)

	// Text only.
	svgFont  string
	measurer text.Measurer
}

func (o *options) edit(f func(*attributes)) {
	o.edits = append(o.edits, f)
}

// collectOptions applies opts and returns the resulting configuration.
func collectOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.hasDefaults {
		o.defaults = CurrentDefaults()
	}
	return o
}

// attributes builds the shape attributes: defaults first, then every
// explicit option in order.
func (o *options) attributes() attributes {
	a := attributesFrom(o.defaults)
	for _, f := range o.edits {
		f(&a)
	}
	return a
}

// WithDefaults makes the constructor read d instead of the process-wide
// snapshot. Explicit attribute options still take precedence, whatever
// their position.
func WithDefaults(d Defaults) Option {
	return func(o *options) {
		o.defaults = d
		o.hasDefaults = true
	}
}

// WithPenColor sets the stroke color. Null disables the stroke.
func WithPenColor(c Color) Option {
	return func(o *options) {
		o.edit(func(a *attributes) { a.penColor = c })
	}
}

// WithFillColor sets the fill color. Null leaves the shape unfilled.
func WithFillColor(c Color) Option {
	return func(o *options) {
		o.edit(func(a *attributes) { a.fillColor = c })
	}
}

// WithLineWidth sets the stroke width in points.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.edit(func(a *attributes) { a.lineWidth = w })
	}
}

// WithLineStyle sets the dash pattern.
func WithLineStyle(s LineStyle) Option {
	return func(o *options) {
		o.edit(func(a *attributes) { a.lineStyle = s })
	}
}

// WithLineCap sets the stroke end style.
func WithLineCap(c LineCap) Option {
	return func(o *options) {
		o.edit(func(a *attributes) { a.lineCap = c })
	}
}

// WithLineJoin sets the stroke corner style.
func WithLineJoin(j LineJoin) Option {
	return func(o *options) {
		o.edit(func(a *attributes) { a.lineJoin = j })
	}
}

// WithDepth gives the shape an explicit depth, which ShapeList.Add keeps.
// Higher depths are further back.
func WithDepth(depth int) Option {
	return func(o *options) {
		o.edit(func(a *attributes) { a.SetDepth(depth) })
	}
}

// WithSVGFont sets the font-family written for a Text in SVG output,
// e.g. "Verdana, Arial". It has no effect on other shapes.
func WithSVGFont(family string) Option {
	return func(o *options) {
		o.svgFont = family
	}
}

// WithMeasurer sets the font-metrics provider used to size a Text.
// It has no effect on other shapes.
func WithMeasurer(m text.Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

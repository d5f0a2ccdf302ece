package board

// Visitor receives shapes during a traversal started by Accept.
type Visitor interface {
	Visit(s Shape)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(s Shape)

// Visit calls f(s).
func (f VisitorFunc) Visit(s Shape) { f(s) }

// Walk calls fn for s and, when s is a ShapeList or a Group, for its
// members in paint order after s itself. If fn returns false the members
// of s are skipped.
func Walk(s Shape, fn func(Shape) bool) {
	if !fn(s) {
		return
	}
	if c, ok := s.(composite); ok {
		for _, m := range c.list().Sorted() {
			Walk(m, fn)
		}
	}
}

// Accept visits s and every shape below it.
func Accept(s Shape, v Visitor) {
	Walk(s, func(s Shape) bool {
		v.Visit(s)
		return true
	})
}

// ShapeCount is the result of CountShapes.
type ShapeCount struct {
	Leaves     int
	Composites int
	ByName     map[string]int
}

// CountShapes counts the shapes below and including s.
func CountShapes(s Shape) ShapeCount {
	c := ShapeCount{ByName: make(map[string]int)}
	Walk(s, func(s Shape) bool {
		switch s.(type) {
		case *ShapeList, *Group:
			c.Composites++
		default:
			c.Leaves++
		}
		c.ByName[s.Name()]++
		return true
	})
	return c
}

// CollectColors returns the distinct pen, fill and vertex colors used
// below s, in paint order of first use. Null is not reported.
func CollectColors(s Shape) []Color {
	var colors []Color
	seen := make(map[Color]bool)
	add := func(c Color) {
		if !c.IsNull() && !seen[c] {
			seen[c] = true
			colors = append(colors, c)
		}
	}
	Walk(s, func(s Shape) bool {
		switch s := s.(type) {
		case *ShapeList, *Group:
			return true
		case *GouraudTriangle:
			for _, c := range s.colors {
				add(c)
			}
		case *Text:
			add(s.penColor)
			return true
		}
		add(s.PenColor())
		add(s.FillColor())
		return true
	})
	return colors
}

// Recolor replaces every pen and fill color below s by fn(color). Null
// colors are passed to fn too, so fn can give a fill to unfilled shapes.
// A GouraudTriangle has its vertex colors mapped and its fill reset to
// their mean.
func Recolor(s Shape, fn func(Color) Color) {
	Walk(s, func(s Shape) bool {
		switch s := s.(type) {
		case *ShapeList, *Group:
			return true
		case *GouraudTriangle:
			for i, c := range s.colors {
				s.colors[i] = fn(c)
			}
			s.penColor = fn(s.penColor)
			s.fillColor = s.MeanColor()
			return true
		}
		s.SetPenColor(fn(s.PenColor()))
		s.SetFillColor(fn(s.FillColor()))
		return true
	})
}

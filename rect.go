package board

import "math"

// Rect is an axis-aligned rectangle given by its top-left corner and its
// size. The y axis points up, so the bottom edge is Top - Height.
//
// The zero value is the degenerate rectangle at the origin.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// RectFromPoints returns the smallest rectangle containing a and b.
func RectFromPoints(a, b Point) Rect {
	left := math.Min(a.X, b.X)
	top := math.Max(a.Y, b.Y)
	return Rect{
		Left:   left,
		Top:    top,
		Width:  math.Max(a.X, b.X) - left,
		Height: top - math.Min(a.Y, b.Y),
	}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top - r.Height }

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top - r.Height/2}
}

func (r Rect) TopLeft() Point     { return Point{X: r.Left, Y: r.Top} }
func (r Rect) TopRight() Point    { return Point{X: r.Right(), Y: r.Top} }
func (r Rect) BottomLeft() Point  { return Point{X: r.Left, Y: r.Bottom()} }
func (r Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Bottom()} }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y <= r.Top && p.Y >= r.Bottom()
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	left := math.Min(r.Left, s.Left)
	top := math.Max(r.Top, s.Top)
	return Rect{
		Left:   left,
		Top:    top,
		Width:  math.Max(r.Right(), s.Right()) - left,
		Height: top - math.Min(r.Bottom(), s.Bottom()),
	}
}

// Intersection returns the overlap of r and s. Disjoint rectangles yield
// the zero Rect.
func (r Rect) Intersection(s Rect) Rect {
	left := math.Max(r.Left, s.Left)
	right := math.Min(r.Right(), s.Right())
	top := math.Min(r.Top, s.Top)
	bottom := math.Max(r.Bottom(), s.Bottom())
	if right < left || top < bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Width: right - left, Height: top - bottom}
}

// Grow returns r enlarged by delta on every side.
func (r Rect) Grow(delta float64) Rect {
	return Rect{
		Left:   r.Left - delta,
		Top:    r.Top + delta,
		Width:  r.Width + 2*delta,
		Height: r.Height + 2*delta,
	}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// ApproxEqual reports whether every field differs by at most eps.
func (r Rect) ApproxEqual(s Rect, eps float64) bool {
	return math.Abs(r.Left-s.Left) <= eps &&
		math.Abs(r.Top-s.Top) <= eps &&
		math.Abs(r.Width-s.Width) <= eps &&
		math.Abs(r.Height-s.Height) <= eps
}

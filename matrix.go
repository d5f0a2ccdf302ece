package board

import "math"

// Matrix is an affine map of the plane, with y pointing up:
//
//	x' = A·x + B·y + C
//	y' = D·x + E·y + F
//
// Paths move through it point by point. Ellipses only use its linear part.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the map that leaves every point in place.
func Identity() Matrix { return Matrix{A: 1, E: 1} }

// Translate returns the map moving every point by (dx, dy).
func Translate(dx, dy float64) Matrix { return Matrix{A: 1, C: dx, E: 1, F: dy} }

// Scale returns the map scaling by (sx, sy) about the origin.
func Scale(sx, sy float64) Matrix { return Matrix{A: sx, E: sy} }

// Rotate returns the counter-clockwise rotation by angle radians about the
// origin.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// RotateAbout returns the rotation by angle radians that keeps pivot fixed.
func RotateAbout(angle float64, pivot Point) Matrix {
	return Rotate(angle).fixing(pivot)
}

// ScaleAbout returns the scaling by (sx, sy) that keeps pivot fixed.
func ScaleAbout(sx, sy float64, pivot Point) Matrix {
	return Scale(sx, sy).fixing(pivot)
}

// fixing returns m with its translation replaced so that pivot maps to
// itself.
func (m Matrix) fixing(pivot Point) Matrix {
	moved := m.TransformVector(pivot)
	m.C, m.F = pivot.X-moved.X, pivot.Y-moved.Y
	return m
}

// Multiply returns the composition m ∘ other: other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	c := m.TransformPoint(Pt(other.C, other.F))
	return Matrix{
		A: m.A*other.A + m.B*other.D, B: m.A*other.B + m.B*other.E, C: c.X,
		D: m.D*other.A + m.E*other.D, E: m.D*other.B + m.E*other.E, F: c.Y,
	}
}

// TransformPoint maps p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y + m.C, Y: m.D*p.X + m.E*p.Y + m.F}
}

// TransformVector maps the direction v, ignoring the translation.
func (m Matrix) TransformVector(v Point) Point {
	return Point{X: m.A*v.X + m.B*v.Y, Y: m.D*v.X + m.E*v.Y}
}

// Determinant returns the area factor of the map; negative for mirrors.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse map, or the identity if m collapses the plane.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	inv := Matrix{A: m.E / det, B: -m.B / det, D: -m.D / det, E: m.A / det}
	back := inv.TransformVector(Pt(m.C, m.F))
	inv.C, inv.F = -back.X, -back.Y
	return inv
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// gram returns the symmetric product L·Lᵀ of the linear part L as
// [[a b] [b c]]. The image of the unit circle under m is the ellipse
// whose axes are the eigenvectors of this product.
func (m Matrix) gram() (a, b, c float64) {
	return m.A*m.A + m.B*m.B, m.A*m.D + m.B*m.E, m.D*m.D + m.E*m.E
}

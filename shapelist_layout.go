package board

// Direction is the side of a list on which Append places a shape.
type Direction int

const (
	DirectionTop Direction = iota
	DirectionRight
	DirectionBottom
	DirectionLeft
)

func (d Direction) String() string {
	switch d {
	case DirectionTop:
		return "top"
	case DirectionRight:
		return "right"
	case DirectionBottom:
		return "bottom"
	case DirectionLeft:
		return "left"
	}
	return "unknown"
}

// Alignment is how Append lines up a shape with the list. AlignTop and
// AlignBottom apply to DirectionLeft and DirectionRight; AlignLeft and
// AlignRight apply to DirectionTop and DirectionBottom.
type Alignment int

const (
	AlignTop Alignment = iota
	AlignBottom
	AlignCenter
	AlignLeft
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignCenter:
		return "center"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	}
	return "unknown"
}

// Append adds a clone of s beside the current drawing, margin away from
// its bounding box in the given direction. An alignment that does not
// apply to the direction falls back to AlignCenter.
func (l *ShapeList) Append(s Shape, dir Direction, align Alignment, margin float64, flag LineWidthFlag) *ShapeList {
	box := l.BoundingBox(flag)
	sbox := s.BoundingBox(flag)

	var dx, dy float64
	switch dir {
	case DirectionRight, DirectionLeft:
		if dir == DirectionRight {
			dx = box.Right() + margin - sbox.Left
		} else {
			dx = box.Left - margin - sbox.Right()
		}
		switch align {
		case AlignTop:
			dy = box.Top - sbox.Top
		case AlignBottom:
			dy = box.Bottom() - sbox.Bottom()
		default:
			if align != AlignCenter {
				Logger().Warn("board: alignment does not apply, centering",
					"direction", dir.String(), "alignment", align.String())
			}
			dy = box.Center().Y - sbox.Center().Y
		}
	default:
		if dir == DirectionTop {
			dy = box.Top + margin - sbox.Bottom()
		} else {
			dy = box.Bottom() - margin - sbox.Top
		}
		switch align {
		case AlignLeft:
			dx = box.Left - sbox.Left
		case AlignRight:
			dx = box.Right() - sbox.Right()
		default:
			if align != AlignCenter {
				Logger().Warn("board: alignment does not apply, centering",
					"direction", dir.String(), "alignment", align.String())
			}
			dx = box.Center().X - sbox.Center().X
		}
	}

	c := s.Clone()
	c.Translate(dx, dy)
	l.add(c)
	return l
}

// AddTiling adds a grid of columns x rows copies of s as a single Group.
// The top-left corner of the grid is at topLeft; cells are the size of the
// bounding box of s plus spacing. The returned group is the stored one.
func (l *ShapeList) AddTiling(s Shape, topLeft Point, columns, rows int, spacing float64, flag LineWidthFlag) *Group {
	box := s.BoundingBox(flag)
	tile := s.Clone()
	tile.Translate(topLeft.X-box.Left, topLeft.Y-box.Top)

	g := NewGroup()
	for row := range rows {
		for col := range columns {
			g.Add(Translated(tile, float64(col)*(box.Width+spacing), -float64(row)*(box.Height+spacing)))
		}
	}
	l.add(g)
	return g
}

// Repeat adds times copies of s. The first copy is s itself; each
// following copy is the previous one scaled by (sx, sy) about its center,
// moved by (dx, dy) and rotated by angle radians about its center.
func (l *ShapeList) Repeat(s Shape, times int, dx, dy, sx, sy, angle float64) *ShapeList {
	c := s.Clone()
	for range times {
		l.Add(c)
		if sx != 1 || sy != 1 {
			c.Scale(sx, sy)
		}
		if dx != 0 || dy != 0 {
			c.Translate(dx, dy)
		}
		if angle != 0 {
			RotateAboutCenter(c, angle)
		}
	}
	return l
}

// NewRepeated returns a list of times copies of s, each moved by (dx, dy)
// and uniformly scaled by scale relative to the previous one.
func NewRepeated(s Shape, times int, dx, dy, scale float64) *ShapeList {
	return NewShapeList().Repeat(s, times, dx, dy, scale, scale, 0)
}

// NewRepeatedTransform is NewRepeated with an anisotropic scale and a
// rotation step.
func NewRepeatedTransform(s Shape, times int, dx, dy, sx, sy, angle float64) *ShapeList {
	return NewShapeList().Repeat(s, times, dx, dy, sx, sy, angle)
}

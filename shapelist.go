package board

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
)

// firstDepth is the depth given to the first shape added to an empty list.
// Later shapes are placed in front of it. It sits midway in the int32 range
// so that shifts in either direction stay representable with a 32-bit int.
const firstDepth = math.MaxInt32 / 2

// ShapeList is an ordered collection of shapes painted back to front.
//
// A list owns its members: Add and its variants store clones, so changing
// a shape after adding it does not affect the list. Members are kept in
// insertion order and painted in order of decreasing depth, shapes of equal
// depth keeping their insertion order.
//
// ShapeList is itself a Shape, so lists nest.
type ShapeList struct {
	attributes
	shapes    []Shape
	nextDepth int
}

// composite is implemented by ShapeList and Group.
type composite interface {
	Shape
	list() *ShapeList
}

// NewShapeList creates an empty list. WithDepth gives the list its own
// depth, which a parent list keeps when the list is added to it.
func NewShapeList(opts ...Option) *ShapeList {
	o := collectOptions(opts)
	return &ShapeList{attributes: o.attributes(), nextDepth: firstDepth}
}

func (l *ShapeList) list() *ShapeList { return l }

func (l *ShapeList) Name() string { return "ShapeList" }

func (l *ShapeList) Clone() Shape {
	return l.cloneList()
}

func (l *ShapeList) cloneList() *ShapeList {
	c := *l
	c.shapes = make([]Shape, len(l.shapes))
	for i, s := range l.shapes {
		c.shapes[i] = s.Clone()
	}
	return &c
}

// Len returns the number of direct members.
func (l *ShapeList) Len() int { return len(l.shapes) }

// Shapes returns the direct members in insertion order. The slice is a
// copy but the shapes are the stored ones.
func (l *ShapeList) Shapes() []Shape {
	return slices.Clone(l.shapes)
}

// Sorted returns the direct members in paint order: decreasing depth,
// insertion order among equal depths.
func (l *ShapeList) Sorted() []Shape {
	sorted := slices.Clone(l.shapes)
	slices.SortStableFunc(sorted, func(a, b Shape) int {
		return cmp.Compare(b.Depth(), a.Depth())
	})
	return sorted
}

// NextDepth returns the depth the next automatically placed shape gets.
func (l *ShapeList) NextDepth() int { return l.nextDepth }

// Clear removes every member and resets depth assignment.
func (l *ShapeList) Clear() {
	l.shapes = nil
	l.nextDepth = firstDepth
}

// Add stores a clone of each shape on top of the list.
//
// A shape without a depth is given the next free depth. A list or group
// without a depth is shifted as a whole so that its deepest member lands
// on the next free depth, and takes that depth as its own. Shapes that
// already have a depth keep it. In every case the next free depth moves in
// front of everything added.
func (l *ShapeList) Add(shapes ...Shape) *ShapeList {
	for _, s := range shapes {
		l.add(s.Clone())
	}
	return l
}

func (l *ShapeList) add(s Shape) {
	if c, ok := s.(composite); ok {
		sub := c.list()
		lo, hi, ok := sub.depthRange()
		if !s.HasDepth() {
			if ok {
				sub.shiftChildren(l.nextDepth - hi)
				lo = l.nextDepth - (hi - lo)
			} else {
				lo = l.nextDepth
			}
			s.SetDepth(l.nextDepth)
		} else if ok {
			lo = min(lo, s.Depth())
		} else {
			lo = s.Depth()
		}
		l.shapes = append(l.shapes, s)
		l.nextDepth = min(l.nextDepth, lo-1)
		return
	}
	if !s.HasDepth() {
		s.SetDepth(l.nextDepth)
	}
	l.shapes = append(l.shapes, s)
	l.nextDepth = min(l.nextDepth, s.Depth()-1)
}

// AddKeepDepth stores a clone of each shape without assigning depths.
func (l *ShapeList) AddKeepDepth(shapes ...Shape) *ShapeList {
	for _, s := range shapes {
		l.shapes = append(l.shapes, s.Clone())
	}
	return l
}

// Insert stores a clone of s at the given depth. Every member at or behind
// depth moves back by the depth span of s (1 for a single shape) so that
// the relative order of what lies behind is unchanged. A list or group is
// shifted so that its front-most member lands on depth.
func (l *ShapeList) Insert(s Shape, depth int) *ShapeList {
	s = s.Clone()
	span := 1
	lo := depth
	if c, ok := s.(composite); ok {
		sub := c.list()
		if clo, chi, ok := sub.depthRange(); ok {
			span = chi - clo + 1
			sub.shiftChildren(depth - clo)
		}
		s.SetDepth(depth + span - 1)
	} else {
		s.SetDepth(depth)
	}

	for _, m := range l.shapes {
		if m.HasDepth() && m.Depth() >= depth {
			m.ShiftDepth(span)
		}
	}
	if l.nextDepth >= depth {
		l.nextDepth += span
	}
	l.shapes = append(l.shapes, s)
	l.nextDepth = min(l.nextDepth, lo-1)
	return l
}

// Dup adds n copies of the most recently added shape, each one step
// further back than the previous one. It does nothing on an empty list.
func (l *ShapeList) Dup(n int) *ShapeList {
	if len(l.shapes) == 0 {
		Logger().Warn("board: Dup on empty list")
		return l
	}
	last := l.shapes[len(l.shapes)-1]
	depth, span := last.Depth()+1, 1
	if c, ok := last.(composite); ok {
		if lo, hi, ok := c.list().depthRange(); ok {
			depth, span = max(hi, last.Depth())+1, hi-lo+1
		}
	}
	for range n {
		l.Insert(last, depth)
		depth += span
	}
	return l
}

// Last returns the k-th most recently added member (0 is the most recent),
// or nil if there is no such member. The returned shape is the stored one.
func (l *ShapeList) Last(k int) Shape {
	if k < 0 || k >= len(l.shapes) {
		return nil
	}
	return l.shapes[len(l.shapes)-1-k]
}

// Top returns the most recently added member, or nil for an empty list.
func (l *ShapeList) Top() Shape {
	return l.Last(0)
}

// LastAs returns the k-th most recently added member of l as a T.
func LastAs[T Shape](l *ShapeList, k int) (T, error) {
	var zero T
	s := l.Last(k)
	if s == nil {
		return zero, fmt.Errorf("board: last(%d) of %d shapes: %w", k, l.Len(), ErrIndexOutOfRange)
	}
	t, ok := s.(T)
	if !ok {
		return zero, fmt.Errorf("board: last(%d) is a %s, not a %T: %w", k, s.Name(), zero, ErrShapeType)
	}
	return t, nil
}

// depthRange returns the smallest and largest depth of the leaves below l.
// ok is false when l holds no leaf.
func (l *ShapeList) depthRange() (lo, hi int, ok bool) {
	lo, hi = math.MaxInt, math.MinInt
	for _, s := range l.shapes {
		var slo, shi int
		if c, isList := s.(composite); isList {
			var found bool
			if slo, shi, found = c.list().depthRange(); !found {
				continue
			}
		} else {
			slo, shi = s.Depth(), s.Depth()
		}
		lo, hi, ok = min(lo, slo), max(hi, shi), true
	}
	return lo, hi, ok
}

// MinDepth returns the front-most depth found below l. An empty list
// reports its own depth.
func (l *ShapeList) MinDepth() int {
	lo, _, ok := l.depthRange()
	if !ok {
		return l.Depth()
	}
	return lo
}

// MaxDepth returns the back-most depth found below l. An empty list
// reports its own depth.
func (l *ShapeList) MaxDepth() int {
	_, hi, ok := l.depthRange()
	if !ok {
		return l.Depth()
	}
	return hi
}

// ShiftDepth adds shift to the depth of the list, of every member at any
// level, and to the next depth to assign.
func (l *ShapeList) ShiftDepth(shift int) {
	l.attributes.ShiftDepth(shift)
	l.shiftChildren(shift)
}

func (l *ShapeList) shiftChildren(shift int) {
	for _, s := range l.shapes {
		s.ShiftDepth(shift)
	}
	l.nextDepth += shift
}

// Center returns the center of the bounding box.
func (l *ShapeList) Center(flag LineWidthFlag) Point {
	return l.BoundingBox(flag).Center()
}

// BoundingBox returns the union of the members' bounding boxes, or the
// zero Rect for an empty list.
func (l *ShapeList) BoundingBox(flag LineWidthFlag) Rect {
	if len(l.shapes) == 0 {
		return Rect{}
	}
	r := l.shapes[0].BoundingBox(flag)
	for _, s := range l.shapes[1:] {
		r = r.Union(s.BoundingBox(flag))
	}
	return r
}

func (l *ShapeList) Rotate(angle float64, pivot Point) {
	for _, s := range l.shapes {
		s.Rotate(angle, pivot)
	}
}

func (l *ShapeList) Translate(dx, dy float64) {
	for _, s := range l.shapes {
		s.Translate(dx, dy)
	}
}

// Scale scales the whole drawing about the center of the list: each member
// is scaled about its own center, then moved to where that center lands.
func (l *ShapeList) Scale(sx, sy float64) {
	l.scaleAbout(sx, sy, l.Center(IgnoreLineWidth))
}

func (l *ShapeList) scaleAbout(sx, sy float64, pivot Point) {
	for _, s := range l.shapes {
		c := s.Center(IgnoreLineWidth)
		s.Scale(sx, sy)
		to := c.ScaleAround(sx, sy, pivot)
		now := s.Center(IgnoreLineWidth)
		s.Translate(to.X-now.X, to.Y-now.Y)
	}
}

func (l *ShapeList) ScaleAll(s float64) {
	for _, m := range l.shapes {
		m.ScaleAll(s)
	}
}

func (l *ShapeList) EmitEPS(w io.Writer, t *TransformEPS) {
	for _, s := range l.Sorted() {
		s.EmitEPS(w, t)
	}
}

func (l *ShapeList) EmitFIG(w io.Writer, t *TransformFIG, p *Palette) {
	for _, s := range l.Sorted() {
		s.EmitFIG(w, t, p)
	}
}

func (l *ShapeList) EmitSVG(w io.Writer, t *TransformSVG) {
	for _, s := range l.Sorted() {
		s.EmitSVG(w, t)
	}
}

func (l *ShapeList) EmitTikZ(w io.Writer, t *TransformTikZ) {
	for _, s := range l.Sorted() {
		s.EmitTikZ(w, t)
	}
}

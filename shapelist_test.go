package board

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// depths returns the depths of the members of l in insertion order.
func depths(l *ShapeList) []int {
	var d []int
	for _, s := range l.Shapes() {
		d = append(d, s.Depth())
	}
	return d
}

// paintOrder returns the names given by label in paint order.
func paintOrder(l *ShapeList, label func(Shape) string) []string {
	var names []string
	for _, s := range l.Sorted() {
		names = append(names, label(s))
	}
	return names
}

func TestAddAssignsDecreasingDepths(t *testing.T) {
	l := NewShapeList()
	l.Add(NewCircle(0, 0, 1))
	l.Add(NewCircle(0, 0, 1))

	first, second := l.Last(1), l.Last(0)
	if second.Depth() != first.Depth()-1 {
		t.Errorf("depths %d then %d, want the second one less", first.Depth(), second.Depth())
	}
	if l.MinDepth() != second.Depth() || l.MaxDepth() != first.Depth() {
		t.Errorf("MinDepth/MaxDepth = %d/%d, want %d/%d", l.MinDepth(), l.MaxDepth(), second.Depth(), first.Depth())
	}
	if got := l.MaxDepth() - l.MinDepth(); got != 1 {
		t.Errorf("depth span = %d, want 1", got)
	}
	if first.Depth() != firstDepth {
		t.Errorf("first depth = %d, want firstDepth", first.Depth())
	}
}

func TestAddKeepsExplicitDepth(t *testing.T) {
	l := NewShapeList()
	l.Add(NewCircle(0, 0, 1, WithDepth(-1)))
	l.Add(NewCircle(0, 0, 1))

	if got := l.Last(1).Depth(); got != -1 {
		t.Errorf("explicit depth changed to %d", got)
	}
	if got := l.Last(0).Depth(); got != -2 {
		t.Errorf("next automatic depth = %d, want -2 (in front of -1)", got)
	}
}

func TestAddKeepDepth(t *testing.T) {
	l := NewShapeList()
	l.AddKeepDepth(NewDot(0, 0), NewDot(1, 1, WithDepth(7)))
	if diff := cmp.Diff([]int{-1, 7}, depths(l)); diff != "" {
		t.Errorf("depths mismatch (-want +got):\n%s", diff)
	}
	if l.Last(1).HasDepth() {
		t.Error("AddKeepDepth assigned a depth")
	}
}

func TestSortedIsStable(t *testing.T) {
	l := NewShapeList()
	names := map[Shape]string{}
	add := func(name string, depth int) {
		l.AddKeepDepth(NewDot(0, 0, WithDepth(depth)))
		names[l.Top()] = name
	}
	add("a", 5)
	add("b", 9)
	add("c", 5)
	add("d", 1)
	add("e", 9)

	got := paintOrder(l, func(s Shape) string { return names[s] })
	if diff := cmp.Diff([]string{"b", "e", "a", "c", "d"}, got); diff != "" {
		t.Errorf("paint order mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertAndAddInterleaved(t *testing.T) {
	l := NewShapeList()
	names := map[Shape]string{}
	label := func(name string) { names[l.Top()] = name }

	l.Add(NewDot(0, 0))
	label("back")
	l.Add(NewDot(0, 0))
	label("middle")
	l.Add(NewDot(0, 0))
	label("front")

	middle := l.Last(1).Depth()
	l.Insert(NewDot(0, 0), middle)
	label("over middle")
	l.Add(NewDot(0, 0))
	label("top")

	got := paintOrder(l, func(s Shape) string { return names[s] })
	want := []string{"back", "middle", "over middle", "front", "top"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paint order mismatch (-want +got):\n%s", diff)
	}

	seen := map[int]bool{}
	for _, d := range depths(l) {
		if seen[d] {
			t.Errorf("depth %d used twice: %v", d, depths(l))
		}
		seen[d] = true
	}
}

func TestInsertComposite(t *testing.T) {
	sub := NewShapeList()
	sub.Add(NewDot(0, 0), NewDot(1, 1), NewDot(2, 2))

	l := NewShapeList()
	l.AddKeepDepth(NewDot(0, 0, WithDepth(10)), NewDot(0, 0, WithDepth(20)))
	l.Insert(sub, 10)

	if diff := cmp.Diff([]int{13, 23, 12}, depths(l)); diff != "" {
		t.Errorf("depths mismatch (-want +got):\n%s", diff)
	}
	inserted := l.Top().(*ShapeList)
	if inserted.MinDepth() != 10 || inserted.MaxDepth() != 12 {
		t.Errorf("inserted range = %d..%d, want 10..12", inserted.MinDepth(), inserted.MaxDepth())
	}
}

func TestAddComposite(t *testing.T) {
	sub := NewShapeList()
	sub.Add(NewDot(0, 0), NewDot(1, 1))

	l := NewShapeList()
	l.Add(NewDot(5, 5))
	l.Add(sub)
	l.Add(NewDot(6, 6))

	inner := l.Last(1).(*ShapeList)
	top := l.Last(0)
	if inner.MaxDepth() != firstDepth-1 || inner.MinDepth() != firstDepth-2 {
		t.Errorf("inner range = %d..%d", inner.MinDepth(), inner.MaxDepth())
	}
	if inner.Depth() != inner.MaxDepth() {
		t.Errorf("composite key %d, want its deepest member %d", inner.Depth(), inner.MaxDepth())
	}
	if top.Depth() >= inner.MinDepth() {
		t.Errorf("shape added after composite at %d, not in front of %d", top.Depth(), inner.MinDepth())
	}
	if l.MinDepth() != top.Depth() || l.MaxDepth() != firstDepth {
		t.Errorf("list range = %d..%d", l.MinDepth(), l.MaxDepth())
	}

	// The original list is untouched.
	if sub.MaxDepth() != firstDepth {
		t.Errorf("source list shifted to %d", sub.MaxDepth())
	}
}

func TestDup(t *testing.T) {
	l := NewShapeList()
	l.Add(NewCircle(0, 0, 1))
	l.Add(NewCircle(0, 0, 2))
	orig := l.Top().Depth()

	l.Dup(2)

	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}
	got := depths(l)
	want := []int{orig + 3, orig, orig + 1, orig + 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("depths mismatch (-want +got):\n%s", diff)
	}
	if r := l.Top().(*Circle).Radius(); r != 2 {
		t.Errorf("duplicate radius = %v, want 2", r)
	}

	NewShapeList().Dup(3) // no-op on an empty list
}

func TestLastAs(t *testing.T) {
	l := NewShapeList()
	l.Add(NewCircle(0, 0, 1), NewRectangle(0, 0, 1, 1))

	r, err := LastAs[*Rectangle](l, 0)
	if err != nil || r == nil {
		t.Fatalf("LastAs[*Rectangle](0) = %v, %v", r, err)
	}
	c, err := LastAs[*Circle](l, 1)
	if err != nil || c == nil {
		t.Fatalf("LastAs[*Circle](1) = %v, %v", c, err)
	}

	tests := []struct {
		name string
		k    int
		want error
	}{
		{"type mismatch", 0, ErrShapeType},
		{"negative", -1, ErrIndexOutOfRange},
		{"too far", 2, ErrIndexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LastAs[*Ellipse](l, tt.k); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
	if l.Last(5) != nil || NewShapeList().Top() != nil {
		t.Error("Last out of range should be nil")
	}
}

func TestOwnershipIsolation(t *testing.T) {
	c := NewCircle(0, 0, 1)
	l := NewShapeList()
	l.Add(c)

	c.Translate(50, 50)
	c.SetFillColor(Red)
	stored := l.Top()
	if stored == Shape(c) {
		t.Fatal("list stored the caller's shape")
	}
	if stored.Center(IgnoreLineWidth) != Pt(0, 0) || stored.Filled() {
		t.Error("mutating the caller's shape changed the stored copy")
	}

	clone := l.Clone().(*ShapeList)
	clone.Top().Translate(1, 1)
	if stored.Center(IgnoreLineWidth) != Pt(0, 0) {
		t.Error("cloned list shares shapes with the original")
	}
	for _, a := range l.Shapes() {
		for _, b := range clone.Shapes() {
			if a == b {
				t.Error("cloned list shares a shape")
			}
		}
	}
}

func TestShiftDepthRecursive(t *testing.T) {
	inner := NewShapeList()
	inner.Add(NewDot(0, 0))
	l := NewShapeList()
	l.Add(NewDot(0, 0), inner)

	before, next := l.MaxDepth(), l.NextDepth()
	l.ShiftDepth(-100)
	if l.MaxDepth() != before-100 || l.NextDepth() != next-100 {
		t.Errorf("after shift: max %d next %d, want %d %d", l.MaxDepth(), l.NextDepth(), before-100, next-100)
	}
	if in := l.Top().(*ShapeList); in.Depth() != in.MaxDepth() {
		t.Errorf("composite key %d not shifted with its member %d", in.Depth(), in.MaxDepth())
	}
}

func TestClear(t *testing.T) {
	l := NewShapeList()
	l.Add(NewDot(0, 0), NewDot(1, 1))
	l.Clear()
	if l.Len() != 0 || l.NextDepth() != firstDepth {
		t.Errorf("after Clear: Len %d NextDepth %d", l.Len(), l.NextDepth())
	}
	if got := l.BoundingBox(UseLineWidth); got != (Rect{}) {
		t.Errorf("empty BoundingBox = %+v, want zero", got)
	}
}

func TestListScaleAboutListCenter(t *testing.T) {
	l := NewShapeList()
	l.Add(NewCircle(-10, 0, 1), NewCircle(10, 0, 1))
	l.Scale(2, 2)

	left, right := l.Last(1).(*Circle), l.Last(0).(*Circle)
	if left.Center(IgnoreLineWidth) != Pt(-20, 0) || right.Center(IgnoreLineWidth) != Pt(20, 0) {
		t.Errorf("centers %v %v, want (-20,0) (20,0)", left.Center(IgnoreLineWidth), right.Center(IgnoreLineWidth))
	}
	if left.Radius() != 2 {
		t.Errorf("radius = %v, want 2", left.Radius())
	}
	want := Rect{Left: -22, Top: 2, Width: 44, Height: 4}
	if diff := cmp.Diff(want, l.BoundingBox(IgnoreLineWidth), bboxApprox); diff != "" {
		t.Errorf("BoundingBox mismatch (-want +got):\n%s", diff)
	}
}

func TestListEmitsInPaintOrder(t *testing.T) {
	l := NewShapeList()
	l.Add(NewRectangle(0, 10, 10, 10, WithPenColor(Red)))
	l.Add(NewRectangle(0, 10, 10, 10, WithPenColor(Blue)))
	l.Insert(NewRectangle(0, 10, 10, 10, WithPenColor(Green)), l.MaxDepth()+1)

	svg := emitAll(l)["svg"]
	green, red, blue := strings.Index(svg, "rgb(0,255,0)"), strings.Index(svg, "rgb(255,0,0)"), strings.Index(svg, "rgb(0,0,255)")
	if green < 0 || !(green < red && red < blue) {
		t.Errorf("SVG paint order wrong (green %d, red %d, blue %d):\n%s", green, red, blue, svg)
	}
}

func TestAppend(t *testing.T) {
	base := func() *ShapeList {
		l := NewShapeList()
		l.Add(NewRectangle(0, 10, 10, 10))
		return l
	}
	tests := []struct {
		name  string
		dir   Direction
		align Alignment
		want  Rect
	}{
		{"right top", DirectionRight, AlignTop, Rect{Left: 12, Top: 10, Width: 4, Height: 2}},
		{"right bottom", DirectionRight, AlignBottom, Rect{Left: 12, Top: 2, Width: 4, Height: 2}},
		{"right center", DirectionRight, AlignCenter, Rect{Left: 12, Top: 6, Width: 4, Height: 2}},
		{"left center", DirectionLeft, AlignCenter, Rect{Left: -6, Top: 6, Width: 4, Height: 2}},
		{"top left", DirectionTop, AlignLeft, Rect{Left: 0, Top: 14, Width: 4, Height: 2}},
		{"bottom right", DirectionBottom, AlignRight, Rect{Left: 6, Top: -2, Width: 4, Height: 2}},
		{"top center", DirectionTop, AlignCenter, Rect{Left: 3, Top: 14, Width: 4, Height: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := base()
			l.Append(NewRectangle(100, 100, 4, 2), tt.dir, tt.align, 2, IgnoreLineWidth)
			if l.Len() != 2 {
				t.Fatalf("Len() = %d, want 2", l.Len())
			}
			if diff := cmp.Diff(tt.want, l.Top().BoundingBox(IgnoreLineWidth), bboxApprox); diff != "" {
				t.Errorf("appended bbox mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAppendAlignmentFallback(t *testing.T) {
	buf := captureLogs(t)

	l := NewShapeList()
	l.Add(NewRectangle(0, 10, 10, 10))
	l.Append(NewRectangle(0, 0, 4, 2), DirectionRight, AlignLeft, 0, IgnoreLineWidth)

	want := Rect{Left: 10, Top: 6, Width: 4, Height: 2}
	if diff := cmp.Diff(want, l.Top().BoundingBox(IgnoreLineWidth), bboxApprox); diff != "" {
		t.Errorf("fallback bbox mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "alignment does not apply") {
		t.Errorf("no warning logged: %q", buf.String())
	}
}

func TestAddTiling(t *testing.T) {
	l := NewShapeList()
	g := l.AddTiling(NewRectangle(50, 50, 10, 5), Pt(0, 0), 3, 2, 1, IgnoreLineWidth)

	if g != l.Top() {
		t.Error("AddTiling did not return the stored group")
	}
	if g.Len() != 6 {
		t.Fatalf("tiles = %d, want 6", g.Len())
	}
	want := Rect{Left: 0, Top: 0, Width: 32, Height: 11}
	if diff := cmp.Diff(want, g.BoundingBox(IgnoreLineWidth), bboxApprox); diff != "" {
		t.Errorf("tiling bbox mismatch (-want +got):\n%s", diff)
	}
	g.Translate(5, 5)
	if got := l.BoundingBox(IgnoreLineWidth).Left; got != 5 {
		t.Errorf("moving the returned group did not move the stored tiling: left %v", got)
	}
}

func TestRepeat(t *testing.T) {
	l := NewRepeated(NewCircle(0, 0, 8), 4, 10, 0, 0.5)
	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}
	var radii, xs []float64
	for _, s := range l.Shapes() {
		c := s.(*Circle)
		radii = append(radii, c.Radius())
		xs = append(xs, c.Center(IgnoreLineWidth).X)
	}
	if diff := cmp.Diff([]float64{8, 4, 2, 1}, radii); diff != "" {
		t.Errorf("radii mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 10, 20, 30}, xs); diff != "" {
		t.Errorf("centers mismatch (-want +got):\n%s", diff)
	}

	star := NewRepeatedTransform(NewLine(0, 0, 10, 0), 4, 0, 0, 1, 1, math.Pi/2)
	last := star.Top().(*Line)
	a, b := last.Endpoints()
	if diff := cmp.Diff([]Point{Pt(5, 5), Pt(5, -5)}, []Point{a, b}, bboxApprox); diff != "" {
		t.Errorf("rotated copy mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupClipping(t *testing.T) {
	g := NewGroup()
	g.Add(NewCircle(0, 0, 10))
	g.SetClippingRectangle(-5, 20, 30, 30)

	want := Rect{Left: -5, Top: 10, Width: 15, Height: 20}
	if diff := cmp.Diff(want, g.BoundingBox(IgnoreLineWidth), bboxApprox); diff != "" {
		t.Errorf("clipped bbox mismatch (-want +got):\n%s", diff)
	}
	if n := g.ClippingPath().Len(); n != 4 {
		t.Errorf("clip path has %d points, want 4", n)
	}

	out := emitAll(g)
	checks := map[string][]string{
		"eps":  {"%%% Begin Clipped Group", "clip\n", "gr\n"},
		"fig":  {"6 ", "\n-6\n"},
		"svg":  {`<clipPath id="clip1"`, `clip-path="url(#clip1)"`, "</g>\n</g>\n"},
		"tikz": {`\begin{scope}`, `\clip (`, `\end{scope}`},
	}
	for format, parts := range checks {
		for _, p := range parts {
			if !strings.Contains(out[format], p) {
				t.Errorf("%s output lacks %q:\n%s", format, p, out[format])
			}
		}
	}
}

func TestGroupClipIDsAreUnique(t *testing.T) {
	l := NewShapeList()
	for range 2 {
		g := NewGroup()
		g.Add(NewDot(0, 0))
		g.SetClippingRectangle(0, 0, 1, 1)
		l.Add(g)
	}
	tr := NewTransformSVG()
	var b strings.Builder
	l.EmitSVG(&b, tr)
	for _, id := range []string{`id="clip1"`, `id="clip2"`} {
		if strings.Count(b.String(), id) != 1 {
			t.Errorf("%s should appear once:\n%s", id, b.String())
		}
	}
}

func TestGroupTransformsClip(t *testing.T) {
	g := NewGroup()
	g.Add(NewRectangle(0, 10, 10, 10))
	g.SetClippingRectangle(0, 10, 5, 10)
	g.Translate(100, 0)

	if got := g.ClippingPath().BoundingBox().Left; got != 100 {
		t.Errorf("clip left = %v after translate, want 100", got)
	}
	c := g.Clone().(*Group)
	c.SetClippingPath(NewPath(false))
	if g.ClippingPath().Len() != 4 {
		t.Error("clone shares the clip path")
	}
	if c.BoundingBox(IgnoreLineWidth).Width != 10 {
		t.Error("empty clip path should remove clipping")
	}
}

func TestGroupUnclippedEnvelope(t *testing.T) {
	g := NewGroup()
	g.Add(NewLine(0, 0, 1, 1))
	out := emitAll(g)
	if !strings.HasPrefix(out["svg"], "<g>\n") || !strings.HasSuffix(out["svg"], "</g>\n") {
		t.Errorf("SVG = %q", out["svg"])
	}
	if !strings.HasPrefix(out["eps"], "%%% Begin Group\n") {
		t.Errorf("EPS = %q", out["eps"])
	}
	if out := emitAll(NewGroup())["fig"]; out != "" {
		t.Errorf("empty group FIG = %q, want empty", out)
	}
}

func TestDupLogsOnEmptyList(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	NewShapeList().Dup(1)
	if !strings.Contains(buf.String(), "Dup on empty list") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestDepthsFitInt32(t *testing.T) {
	l := NewShapeList()
	l.Add(NewDot(0, 0))
	l.Dup(3)
	l.Insert(NewDot(1, 1), l.MaxDepth()+1)
	l.ShiftDepth(1000)

	if l.MaxDepth() <= firstDepth {
		t.Fatalf("MaxDepth() = %d, want shapes pushed behind %d", l.MaxDepth(), firstDepth)
	}
	if l.MaxDepth() > math.MaxInt32 || l.MinDepth() < math.MinInt32 {
		t.Errorf("depth range %d..%d leaves int32", l.MinDepth(), l.MaxDepth())
	}
}

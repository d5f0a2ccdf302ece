package board

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathBoundingBox(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		want Rect
	}{
		{"empty", NewPath(false), Rect{}},
		{"single point", NewPath(false, Pt(3, 4)), Rect{Left: 3, Top: 4}},
		{"triangle", NewPath(true, Pt(0, 0), Pt(4, -2), Pt(1, 5)), Rect{Left: 0, Top: 5, Width: 4, Height: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.path.BoundingBox()); diff != "" {
				t.Errorf("BoundingBox() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPathScaleKeepsCenter(t *testing.T) {
	p := NewPath(true, Pt(0, 0), Pt(4, 0), Pt(4, 2), Pt(0, 2))
	c := p.Center()
	p.Scale(3, -0.5)

	if diff := cmp.Diff(c, p.Center(), approx); diff != "" {
		t.Errorf("center moved (-before +after):\n%s", diff)
	}
	want := Rect{Left: -4, Top: 1.5, Width: 12, Height: 1}
	if diff := cmp.Diff(want, p.BoundingBox(), approx); diff != "" {
		t.Errorf("BoundingBox() mismatch (-want +got):\n%s", diff)
	}
}

func TestPathScaleAboutAndScaleAll(t *testing.T) {
	p := NewPath(false, Pt(1, 1), Pt(3, 2))
	p.ScaleAbout(2, 2, Pt(1, 1))
	if diff := cmp.Diff([]Point{Pt(1, 1), Pt(5, 3)}, p.Points(), approx); diff != "" {
		t.Errorf("ScaleAbout mismatch (-want +got):\n%s", diff)
	}

	p.ScaleAll(0.5)
	if diff := cmp.Diff([]Point{Pt(0.5, 0.5), Pt(2.5, 1.5)}, p.Points(), approx); diff != "" {
		t.Errorf("ScaleAll mismatch (-want +got):\n%s", diff)
	}
}

func TestPathCloneIsIndependent(t *testing.T) {
	p := NewPath(false, Pt(0, 0), Pt(1, 1))
	c := p.Clone()
	c.Translate(5, 5)
	c.SetClosed(true)
	if p.At(1) != Pt(1, 1) || p.Closed() {
		t.Errorf("original changed: %v closed=%v", p.Points(), p.Closed())
	}
}

func TestPathEmit(t *testing.T) {
	closed := NewPath(true, Pt(0, 0), Pt(10, 0), Pt(10, 5))
	open := NewPath(false, Pt(1.5, 2), Pt(3, 3))

	tests := []struct {
		name string
		emit func(*strings.Builder)
		want string
	}{
		{"eps closed", func(b *strings.Builder) { closed.EmitEPS(b, NewTransformEPS()) }, "0 0 m 10 0 l 10 5 l cp "},
		{"eps open", func(b *strings.Builder) { open.EmitEPS(b, NewTransformEPS()) }, "1.5 2 m 3 3 l "},
		{"svg commands", func(b *strings.Builder) { closed.EmitSVGCommands(b, NewTransformSVG()) }, "M 0 0 L 10 0 L 10 -5 Z"},
		{"svg points", func(b *strings.Builder) { open.EmitSVGPoints(b, NewTransformSVG()) }, "1.5,-2 3,-3"},
		{"tikz closed", func(b *strings.Builder) { closed.EmitTikZ(b, NewTransformTikZ()) }, "(0,0) -- (10,0) -- (10,-5) -- cycle"},
		{"fig closed repeats first point", func(b *strings.Builder) { closed.EmitFIG(b, NewTransformFIG()) }, " 0 0 167 0 167 -83 0 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			tt.emit(&b)
			if got := b.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathFIGPointCount(t *testing.T) {
	if got := NewPath(true, Pt(0, 0), Pt(1, 0), Pt(1, 1)).FIGPointCount(); got != 4 {
		t.Errorf("closed FIGPointCount() = %d, want 4", got)
	}
	if got := NewPath(false, Pt(0, 0), Pt(1, 0)).FIGPointCount(); got != 2 {
		t.Errorf("open FIGPointCount() = %d, want 2", got)
	}
	if got := NewPath(true).FIGPointCount(); got != 0 {
		t.Errorf("empty FIGPointCount() = %d, want 0", got)
	}
}

func TestPathSVGLineBreaks(t *testing.T) {
	pts := make([]Point, 8)
	for i := range pts {
		pts[i] = Pt(float64(i), 0)
	}
	var b strings.Builder
	NewPath(false, pts...).EmitSVGPoints(&b, NewTransformSVG())
	if got := strings.Count(b.String(), "\n"); got != 1 {
		t.Errorf("line breaks = %d, want 1 in %q", got, b.String())
	}
}

func TestEmptyPathEmitsNothing(t *testing.T) {
	p := NewPath(true)
	var b strings.Builder
	p.EmitEPS(&b, NewTransformEPS())
	p.EmitFIG(&b, NewTransformFIG())
	p.EmitSVGCommands(&b, NewTransformSVG())
	p.EmitSVGPoints(&b, NewTransformSVG())
	p.EmitTikZ(&b, NewTransformTikZ())
	if b.Len() != 0 {
		t.Errorf("empty path wrote %q", b.String())
	}
}

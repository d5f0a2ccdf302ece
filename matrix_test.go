package board

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(3, 4), Pt(13, 2)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate quarter turn", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate about pivot", RotateAbout(math.Pi, Pt(1, 1)), Pt(2, 1), Pt(0, 1)},
		{"scale about pivot", ScaleAbout(2, 2, Pt(1, 1)), Pt(2, 3), Pt(3, 5)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(1, 0)), Pt(0, 0), Pt(2, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("TransformPoint mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatrixTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(5, 5).Multiply(Scale(2, 2))
	if got := m.TransformVector(Pt(1, 1)); got != Pt(2, 2) {
		t.Errorf("TransformVector = %v, want (2, 2)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translate", Translate(3, -7)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(0.7)},
		{"composite", RotateAbout(1.2, Pt(4, 5)).Multiply(Scale(3, -2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Multiply(tt.m.Invert())
			if diff := cmp.Diff(Identity(), got, approx); diff != "" {
				t.Errorf("m * m^-1 mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if got := Scale(0, 1).Invert(); !got.IsIdentity() {
		t.Errorf("Invert of singular matrix = %+v, want identity", got)
	}
}

func TestMatrixDeterminant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity(), 1},
		{"scale", Scale(2, 3), 6},
		{"mirror", Scale(-1, 1), -1},
		{"rotate", Rotate(0.3), 1},
		{"translate", Translate(9, 9), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Determinant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathRotateMatchesPointRotate(t *testing.T) {
	pivot := Pt(2, -1)
	pts := []Point{Pt(0, 0), Pt(4, 0), Pt(4, 3)}
	p := NewPath(true, pts...)
	p.Rotate(0.9, pivot)

	want := make([]Point, len(pts))
	for i, pt := range pts {
		want[i] = pt.RotateAround(0.9, pivot)
	}
	if diff := cmp.Diff(want, p.Points(), approx); diff != "" {
		t.Errorf("Path.Rotate and Point.RotateAround disagree (-point +path):\n%s", diff)
	}
}

func TestMatrixGram(t *testing.T) {
	// The unit circle through diag(3, 1) then a quarter turn is an ellipse
	// with its long axis along y.
	a, b, c := Rotate(math.Pi / 2).Multiply(Scale(3, 1)).gram()
	if diff := cmp.Diff([]float64{1, 0, 9}, []float64{a, b, c}, approx); diff != "" {
		t.Errorf("gram mismatch (-want +got):\n%s", diff)
	}
}

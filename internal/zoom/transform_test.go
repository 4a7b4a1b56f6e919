package zoom

import (
	"math"
	"testing"

	"gioui.org/f32"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func nearPt(a, b f32.Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestTransformTranslate(t *testing.T) {
	tr := NewTransform(2)
	tr.Translate(-10, 5)
	tr.Translate(-3, 1)

	if got, want := tr.Offset(), f32.Pt(-13, 6); got != want {
		t.Errorf("Offset() = %v, want %v", got, want)
	}
	if got := tr.Scale(); got != 2 {
		t.Errorf("Scale() = %v, want 2", got)
	}
}

func TestTransformScaleByScalesOffset(t *testing.T) {
	tr := NewTransform(1)
	tr.Translate(-100, -40)
	tr.ScaleBy(2)

	if got, want := tr.Offset(), f32.Pt(-200, -80); got != want {
		t.Errorf("Offset() = %v, want %v", got, want)
	}
	if got := tr.Scale(); got != 2 {
		t.Errorf("Scale() = %v, want 2", got)
	}
}

func TestTransformScaleAroundKeepsPivot(t *testing.T) {
	tr := NewTransform(1)
	tr.Translate(-50, -50)
	pivot := f32.Pt(120, 80)
	before := tr.Affine().Invert().Transform(pivot)

	tr.ScaleAround(pivot, 1.5)

	after := tr.Affine().Invert().Transform(pivot)
	if !nearPt(before, after) {
		t.Errorf("image point under pivot moved from %v to %v", before, after)
	}
}

func TestTransformSetScaleKeepsOffset(t *testing.T) {
	tr := NewTransform(1)
	tr.Translate(-7, -9)
	tr.SetScale(2.5)

	v := tr.Values()
	want := [6]float32{2.5, 0, -7, 0, 2.5, -9}
	if v != want {
		t.Errorf("Values() = %v, want %v", v, want)
	}
}

func TestTransformNeverSkews(t *testing.T) {
	tr := NewTransform(0.75)
	tr.Translate(-3, -4)
	tr.ScaleBy(1.3)
	tr.ScaleAround(f32.Pt(10, 20), 0.9)
	tr.Reset(1.1)

	v := tr.Values()
	if v[1] != 0 || v[3] != 0 {
		t.Errorf("skew = (%v, %v), want (0, 0)", v[1], v[3])
	}
	if tr.Offset() != (f32.Point{}) {
		t.Errorf("Offset() after Reset = %v, want zero", tr.Offset())
	}
}

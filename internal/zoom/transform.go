// Package zoom implements the pan and pinch-zoom transform controller for an
// image that must always cover its viewport.
package zoom

import (
	"fmt"

	"gioui.org/f32"
)

// Transform is a 2D affine map from image space to viewport space limited to
// uniform scale and translation. Skew components are always zero.
type Transform struct {
	a f32.Affine2D
}

// NewTransform returns a transform with the given uniform scale and no offset.
func NewTransform(scale float32) Transform {
	return Transform{a: f32.NewAffine2D(scale, 0, 0, 0, scale, 0)}
}

// Translate post-multiplies a translation by (dx, dy).
func (t *Transform) Translate(dx, dy float32) {
	t.a = t.a.Offset(f32.Pt(dx, dy))
}

// ScaleBy post-multiplies a uniform scale about the viewport origin. The
// translation is scaled along with it.
func (t *Transform) ScaleBy(factor float32) {
	t.a = t.a.Scale(f32.Point{}, f32.Pt(factor, factor))
}

// ScaleAround post-multiplies a uniform scale that keeps pivot, given in
// viewport coordinates, fixed on screen.
func (t *Transform) ScaleAround(pivot f32.Point, factor float32) {
	t.a = t.a.Scale(pivot, f32.Pt(factor, factor))
}

// SetScale replaces the scale and clears any skew. The translation is left
// alone; use Reset to clear it too.
func (t *Transform) SetScale(s float32) {
	_, _, ox, _, _, oy := t.a.Elems()
	t.a = f32.NewAffine2D(s, 0, ox, 0, s, oy)
}

// Reset sets the scale to s and the translation to zero.
func (t *Transform) Reset(s float32) {
	*t = NewTransform(s)
}

// Values returns the six components in row order:
// scaleX, skewX, translateX, skewY, scaleY, translateY.
func (t Transform) Values() [6]float32 {
	sx, hx, ox, hy, sy, oy := t.a.Elems()
	return [6]float32{sx, hx, ox, hy, sy, oy}
}

// Offset returns the translation component.
func (t Transform) Offset() f32.Point {
	_, _, ox, _, _, oy := t.a.Elems()
	return f32.Pt(ox, oy)
}

// Scale returns the horizontal scale component. Vertical scale is identical.
func (t Transform) Scale() float32 {
	sx, _, _, _, _, _ := t.a.Elems()
	return sx
}

// Affine returns the transform as a Gio affine, ready for op.Affine.
func (t Transform) Affine() f32.Affine2D {
	return t.a
}

func (t Transform) String() string {
	off := t.Offset()
	return fmt.Sprintf("scale=%.4f offset=(%.2f, %.2f)", t.Scale(), off.X, off.Y)
}

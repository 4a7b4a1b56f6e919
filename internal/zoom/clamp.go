package zoom

import "gioui.org/f32"

// ClampScale applies factor to scale and limits the result to [lo, hi].
// It returns the clamped scale and the factor that takes scale to it, so the
// matrix and the tracked scale never drift apart. When the bounds cross, lo
// wins: covering the viewport takes priority over the zoom ceiling.
func ClampScale(scale, factor, lo, hi float32) (clamped, effective float32) {
	clamped = scale * factor
	if clamped > hi {
		clamped = hi
	}
	if clamped < lo {
		clamped = lo
	}
	return clamped, clamped / scale
}

// ClampPan limits a proposed translation delta so that, once applied to an
// image currently offset by translate, the image still covers the viewport.
// The leading edge may not move past 0 and the trailing edge may not move
// past -(dimension*scale - viewport) on each axis.
func ClampPan(delta, translate, bitmap f32.Point, scale float32, viewport f32.Point) f32.Point {
	return f32.Point{
		X: clampAxis(delta.X, translate.X, bitmap.X*scale-viewport.X),
		Y: clampAxis(delta.Y, translate.Y, bitmap.Y*scale-viewport.Y),
	}
}

func clampAxis(d, t, maxScrollable float32) float32 {
	if t+d > 0 {
		d = -t
	}
	if t+d < -maxScrollable {
		d = -maxScrollable - t
	}
	return d
}

package zoom

import (
	"fmt"
	"math"

	"gioui.org/f32"
)

// CoverFit returns the smallest uniform scale at which an image of size
// bitmap covers a viewport of size viewport on both axes.
func CoverFit(bitmap, viewport f32.Point) (float32, error) {
	if !positive(bitmap.X) || !positive(bitmap.Y) {
		return 0, fmt.Errorf("bitmap %vx%v: %w", bitmap.X, bitmap.Y, ErrDegenerateInput)
	}
	if !positive(viewport.X) || !positive(viewport.Y) {
		return 0, fmt.Errorf("viewport %vx%v: %w", viewport.X, viewport.Y, ErrDegenerateInput)
	}
	sx := viewport.X / bitmap.X
	sy := viewport.Y / bitmap.Y
	if sy > sx {
		return sy, nil
	}
	return sx, nil
}

func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 0)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

package zoom

import (
	"fmt"

	"gioui.org/f32"
	"gioui.org/io/pointer"
)

// Event is an input event consumed by Controller.HandleEvent. Positions are
// in viewport coordinates.
type Event interface {
	isEvent()
}

// PointerDown reports a pointer touching the surface.
type PointerDown struct {
	ID  pointer.ID
	Pos f32.Point
}

// PointerMove reports a tracked pointer moving.
type PointerMove struct {
	ID  pointer.ID
	Pos f32.Point
}

// PointerUp reports a pointer leaving the surface.
type PointerUp struct {
	ID pointer.ID
}

// PointerCancel reports that the host aborted the touch sequence.
type PointerCancel struct{}

// ScaleBegin reports the start of a scale gesture centered on Focus.
type ScaleBegin struct {
	Focus f32.Point
}

// ScaleUpdate reports an incremental scale factor relative to the previous
// update of the same gesture.
type ScaleUpdate struct {
	Factor float32
	Focus  f32.Point
}

// ScaleEnd reports the end of a scale gesture.
type ScaleEnd struct{}

func (PointerDown) isEvent()   {}
func (PointerMove) isEvent()   {}
func (PointerUp) isEvent()     {}
func (PointerCancel) isEvent() {}
func (ScaleBegin) isEvent()    {}
func (ScaleUpdate) isEvent()   {}
func (ScaleEnd) isEvent()      {}

// Mode is the current interaction mode.
type Mode uint8

const (
	Idle Mode = iota
	Dragging
	Zooming
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Zooming:
		return "Zooming"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Snapshot is a read-only copy of the controller state for the renderer.
type Snapshot struct {
	Transform f32.Affine2D
	Scale     float32
	MinScale  float32
	MaxScale  float32
	Mode      Mode
	// Ready is false until both image and viewport sizes are known.
	Ready bool
}

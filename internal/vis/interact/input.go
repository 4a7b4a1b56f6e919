// Package interact turns Gio pointer input into zoom controller events.
package interact

import (
	"math"

	"gioui.org/f32"
	"gioui.org/io/pointer"

	"github.com/elektrokombinacija/zoomview/internal/zoom"
)

// DefaultWheelStep is the zoom factor applied per scroll unit.
const DefaultWheelStep = 1.1

// Input converts Gio pointer events into zoom events. Two simultaneous
// pointers form a pinch whose span ratio is reported as scale updates. Mouse
// wheel scrolling is reported as a one-shot scale gesture around the cursor.
type Input struct {
	// WheelStep is the zoom factor per scroll unit. Zero means DefaultWheelStep.
	WheelStep float32

	touches []touch
	pinch   pinch
}

type touch struct {
	id  pointer.ID
	pos f32.Point
}

type pinch struct {
	active bool
	a, b   pointer.ID
	span   float32
}

// Translate returns the zoom events for ev, in the order they must be
// delivered to the controller.
func (in *Input) Translate(ev pointer.Event) []zoom.Event {
	switch ev.Kind {
	case pointer.Press:
		in.track(ev.PointerID, ev.Position)
		out := []zoom.Event{zoom.PointerDown{ID: ev.PointerID, Pos: ev.Position}}
		if !in.pinch.active && len(in.touches) >= 2 {
			a, b := in.touches[0], in.touches[1]
			in.pinch = pinch{active: true, a: a.id, b: b.id, span: distance(a.pos, b.pos)}
			out = append(out, zoom.ScaleBegin{Focus: midpoint(a.pos, b.pos)})
		}
		return out

	case pointer.Drag:
		if in.index(ev.PointerID) < 0 {
			return nil
		}
		in.track(ev.PointerID, ev.Position)
		var out []zoom.Event
		if u, ok := in.pinchUpdate(); ok {
			out = append(out, u)
		}
		return append(out, zoom.PointerMove{ID: ev.PointerID, Pos: ev.Position})

	case pointer.Release:
		if in.index(ev.PointerID) < 0 {
			return nil
		}
		var out []zoom.Event
		if in.pinch.active && (ev.PointerID == in.pinch.a || ev.PointerID == in.pinch.b) {
			in.pinch = pinch{}
			out = append(out, zoom.ScaleEnd{})
		}
		in.untrack(ev.PointerID)
		return append(out, zoom.PointerUp{ID: ev.PointerID})

	case pointer.Cancel:
		var out []zoom.Event
		if in.pinch.active {
			out = append(out, zoom.ScaleEnd{})
		}
		in.touches = in.touches[:0]
		in.pinch = pinch{}
		return append(out, zoom.PointerCancel{})

	case pointer.Scroll:
		if ev.Scroll.Y == 0 {
			return nil
		}
		return []zoom.Event{
			zoom.ScaleBegin{Focus: ev.Position},
			zoom.ScaleUpdate{Factor: in.wheelFactor(ev.Scroll.Y), Focus: ev.Position},
			zoom.ScaleEnd{},
		}
	}
	return nil
}

// Pointers returns the number of pointers currently pressed.
func (in *Input) Pointers() int {
	return len(in.touches)
}

func (in *Input) pinchUpdate() (zoom.ScaleUpdate, bool) {
	if !in.pinch.active {
		return zoom.ScaleUpdate{}, false
	}
	a, b := in.touches[in.index(in.pinch.a)], in.touches[in.index(in.pinch.b)]
	span := distance(a.pos, b.pos)
	if in.pinch.span <= 0 || span <= 0 || span == in.pinch.span {
		in.pinch.span = span
		return zoom.ScaleUpdate{}, false
	}
	factor := span / in.pinch.span
	in.pinch.span = span
	return zoom.ScaleUpdate{Factor: factor, Focus: midpoint(a.pos, b.pos)}, true
}

// wheelFactor maps a vertical scroll amount to a zoom factor. Scrolling down
// zooms out.
func (in *Input) wheelFactor(dy float32) float32 {
	step := in.WheelStep
	if step == 0 {
		step = DefaultWheelStep
	}
	return float32(math.Pow(float64(step), float64(-dy)))
}

func (in *Input) index(id pointer.ID) int {
	for i, t := range in.touches {
		if t.id == id {
			return i
		}
	}
	return -1
}

func (in *Input) track(id pointer.ID, pos f32.Point) {
	if i := in.index(id); i >= 0 {
		in.touches[i].pos = pos
		return
	}
	in.touches = append(in.touches, touch{id: id, pos: pos})
}

func (in *Input) untrack(id pointer.ID) {
	if i := in.index(id); i >= 0 {
		in.touches = append(in.touches[:i], in.touches[i+1:]...)
	}
}

func distance(a, b f32.Point) float32 {
	d := b.Sub(a)
	return float32(math.Hypot(float64(d.X), float64(d.Y)))
}

func midpoint(a, b f32.Point) f32.Point {
	return a.Add(b).Mul(0.5)
}

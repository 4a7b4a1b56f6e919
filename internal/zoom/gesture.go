package zoom

import (
	"gioui.org/f32"
	"gioui.org/io/pointer"
)

type trackedPointer struct {
	id  pointer.ID
	pos f32.Point
}

// gesture tracks live pointers and the interaction mode. The reference point
// for panning is the centroid of all live pointers, recomputed whenever a
// pointer is added or removed so a change in finger count never produces a
// jump.
type gesture struct {
	mode     Mode
	pointers []trackedPointer
	// previous is the centroid at the last processed event.
	previous f32.Point
	// start is where the first pointer of the sequence went down.
	start f32.Point
}

func (g *gesture) index(id pointer.ID) int {
	for i, p := range g.pointers {
		if p.id == id {
			return i
		}
	}
	return -1
}

func (g *gesture) centroid() f32.Point {
	if len(g.pointers) == 0 {
		return f32.Point{}
	}
	var sum f32.Point
	for _, p := range g.pointers {
		sum = sum.Add(p.pos)
	}
	return sum.Mul(1 / float32(len(g.pointers)))
}

func (g *gesture) down(id pointer.ID, pos f32.Point) {
	if i := g.index(id); i >= 0 {
		g.pointers[i].pos = pos
	} else {
		g.pointers = append(g.pointers, trackedPointer{id: id, pos: pos})
	}
	if len(g.pointers) == 1 {
		g.start = pos
	}
	g.settle()
}

// move updates a tracked pointer and returns how far the centroid moved.
// It reports false when the move must be ignored.
func (g *gesture) move(id pointer.ID, pos f32.Point) (f32.Point, bool) {
	if g.mode != Dragging && g.mode != Zooming {
		return f32.Point{}, false
	}
	i := g.index(id)
	if i < 0 {
		return f32.Point{}, false
	}
	g.pointers[i].pos = pos
	c := g.centroid()
	delta := c.Sub(g.previous)
	g.previous = c
	return delta, true
}

func (g *gesture) up(id pointer.ID) {
	i := g.index(id)
	if i < 0 {
		return
	}
	g.pointers = append(g.pointers[:i], g.pointers[i+1:]...)
	g.settle()
}

func (g *gesture) cancel() {
	g.pointers = g.pointers[:0]
	g.settle()
}

// settle derives the mode from the number of live pointers and resets the
// pan reference point.
func (g *gesture) settle() {
	switch len(g.pointers) {
	case 0:
		g.mode = Idle
	case 1:
		g.mode = Dragging
	default:
		g.mode = Zooming
	}
	g.previous = g.centroid()
}

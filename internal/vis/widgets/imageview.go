// Package widgets provides Gio UI widgets for the image viewer.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/zoomview/internal/vis/interact"
	"github.com/elektrokombinacija/zoomview/internal/zoom"
)

// ImageView draws an image through the controller's transform and feeds it
// pointer input.
type ImageView struct {
	ctrl  *zoom.Controller
	input interact.Input

	img      paint.ImageOp
	hasImage bool
	// viewport is the size last passed to the controller; zero forces a refit.
	viewport image.Point
}

// NewImageView creates an image view driven by ctrl.
func NewImageView(ctrl *zoom.Controller, wheelStep float32) *ImageView {
	return &ImageView{
		ctrl:  ctrl,
		input: interact.Input{WheelStep: wheelStep},
	}
}

// SetImage replaces the displayed image. The transform is refitted on the
// next layout.
func (v *ImageView) SetImage(img image.Image) {
	v.img = paint.NewImageOp(img)
	v.hasImage = true
	size := img.Bounds().Size()
	v.ctrl.SetImage(f32.Pt(float32(size.X), float32(size.Y)))
	v.viewport = image.Point{}
}

// Reset discards pan and zoom on the next layout.
func (v *ImageView) Reset() {
	v.viewport = image.Point{}
}

// ZoomBy zooms by factor around the viewport center.
func (v *ImageView) ZoomBy(factor float32) {
	center := layout.FPt(v.viewport).Mul(0.5)
	v.ctrl.HandleEvent(zoom.ScaleBegin{Focus: center})
	v.ctrl.HandleEvent(zoom.ScaleUpdate{Factor: factor, Focus: center})
	v.ctrl.HandleEvent(zoom.ScaleEnd{})
}

// Layout renders the image view.
func (v *ImageView) Layout(gtx layout.Context) layout.Dimensions {
	// Clip to bounds
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	if bounds != v.viewport && v.hasImage {
		v.viewport = bounds
		if err := v.ctrl.SetViewportSize(layout.FPt(bounds)); err != nil {
			zoom.Logger().Debug("deferring fit", "err", err)
		}
	}

	v.handlePointerEvents(gtx)

	snap := v.ctrl.Snapshot()
	if v.hasImage && snap.Ready {
		t := op.Affine(snap.Transform).Push(gtx.Ops)
		v.img.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		t.Pop()
	}

	return layout.Dimensions{Size: bounds}
}

func (v *ImageView) handlePointerEvents(gtx layout.Context) {
	// Register for pointer events
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	area.Pop()

	// Process events
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  v,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		for _, ze := range v.input.Translate(pe) {
			v.ctrl.HandleEvent(ze)
		}
	}
}

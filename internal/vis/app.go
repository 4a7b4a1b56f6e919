// Package vis implements a Gio-based image viewer around the zoom controller.
package vis

import (
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/zoomview/internal/vis/widgets"
	"github.com/elektrokombinacija/zoomview/internal/zoom"
)

// App is the main viewer application.
type App struct {
	ctrl    *zoom.Controller
	theme   *material.Theme
	view    *widgets.ImageView
	toolbar *widgets.Toolbar
	// minZoom is applied once, after the first successful fit.
	minZoom float32
}

// Options configures the viewer.
type Options struct {
	Zoom zoom.Config
	// MinZoom overrides the cover-fit minimum until the next resize. Zero keeps it.
	MinZoom float32
	// WheelStep is the zoom factor per scroll unit. Zero uses the default.
	WheelStep float32
}

// NewApp creates a viewer showing img.
func NewApp(img image.Image, opts Options) (*App, error) {
	ctrl, err := zoom.New(opts.Zoom)
	if err != nil {
		return nil, err
	}
	view := widgets.NewImageView(ctrl, opts.WheelStep)
	view.SetImage(img)

	return &App{
		ctrl:    ctrl,
		theme:   material.NewTheme(),
		view:    view,
		toolbar: widgets.NewToolbar(ctrl, view),
		minZoom: opts.MinZoom,
	}, nil
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	// Event filters for keyboard input
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			// Request focus for keyboard input
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			if a.minZoom > 0 && a.ctrl.Snapshot().Ready {
				if err := a.ctrl.SetMinZoom(a.minZoom); err != nil {
					return err
				}
				a.minZoom = 0
			}
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case "R", key.NameHome:
		a.view.Reset()
	case "+", "=":
		a.view.ZoomBy(widgets.ButtonStep)
	case "-":
		a.view.ZoomBy(1 / widgets.ButtonStep)
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		// Toolbar at top
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		// Image area
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.view.Layout(gtx)
		}),
	)
}

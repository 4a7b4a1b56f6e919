package zoom

import (
	"fmt"

	"gioui.org/f32"
	"gioui.org/io/pointer"
)

// DefaultMaxScale is the zoom ceiling used when Config.MaxScale is zero.
const DefaultMaxScale = 3

// Config configures a Controller.
type Config struct {
	// MaxScale is the largest allowed scale. Zero means DefaultMaxScale.
	MaxScale float32
	// AnchorAtFocus keeps the gesture focus fixed on screen while zooming.
	// When false, zoom is anchored at the viewport origin.
	AnchorAtFocus bool
}

// DefaultConfig returns the default controller configuration.
func DefaultConfig() Config {
	return Config{MaxScale: DefaultMaxScale}
}

// Controller owns the transform of one image view. It is driven by a single
// event loop and is not safe for concurrent use.
type Controller struct {
	cfg Config

	t Transform
	g gesture

	bitmap   f32.Point
	viewport f32.Point
	// fitted is set once a cover fit succeeded for the current image and
	// viewport. Transform mutations are skipped until then.
	fitted bool

	scale    float32
	minScale float32
	maxScale float32
}

// New returns a controller for cfg.
func New(cfg Config) (*Controller, error) {
	if cfg.MaxScale == 0 {
		cfg.MaxScale = DefaultMaxScale
	}
	if !positive(cfg.MaxScale) {
		return nil, fmt.Errorf("max scale %v: %w", cfg.MaxScale, ErrInvalidBounds)
	}
	return &Controller{
		cfg:      cfg,
		t:        NewTransform(1),
		scale:    1,
		maxScale: cfg.MaxScale,
	}, nil
}

// SetImage records the size of a newly assigned image. The transform is not
// recomputed until the next SetViewportSize.
func (c *Controller) SetImage(size f32.Point) {
	c.bitmap = size
	c.fitted = false
}

// SetViewportSize records the viewport size and resets the transform to the
// cover-fit scale with no offset. Any pan or zoom is discarded. It returns
// ErrDegenerateInput, and leaves the controller unfitted, if the image or
// viewport has a non-positive dimension.
func (c *Controller) SetViewportSize(size f32.Point) error {
	c.viewport = size
	s, err := CoverFit(c.bitmap, size)
	if err != nil {
		c.fitted = false
		return err
	}
	c.minScale = s
	c.scale = s
	c.t.Reset(s)
	c.fitted = true
	if s > c.maxScale {
		Logger().Warn("cover scale exceeds max zoom", "cover", s, "max", c.maxScale)
	}
	Logger().Debug("viewport reset", "viewport", size, "bitmap", c.bitmap, "scale", s)
	return nil
}

// SetMinZoom sets the minimum scale until the next SetViewportSize
// recomputes it. It returns ErrInvalidBounds if v is not positive or exceeds
// the maximum.
func (c *Controller) SetMinZoom(v float32) error {
	if !positive(v) || v > c.maxScale {
		return fmt.Errorf("min zoom %v with max %v: %w", v, c.maxScale, ErrInvalidBounds)
	}
	c.minScale = v
	c.rebound()
	return nil
}

// SetMaxZoom sets the maximum scale. It returns ErrInvalidBounds if v is not
// positive or is below the minimum.
func (c *Controller) SetMaxZoom(v float32) error {
	if !positive(v) || v < c.minScale {
		return fmt.Errorf("max zoom %v with min %v: %w", v, c.minScale, ErrInvalidBounds)
	}
	c.maxScale = v
	c.rebound()
	return nil
}

// rebound pulls the current scale back inside the bounds after they change.
func (c *Controller) rebound() {
	if !c.fitted {
		return
	}
	if clamped, eff := ClampScale(c.scale, 1, c.minScale, c.maxScale); clamped != c.scale {
		c.applyScale(clamped, eff, f32.Point{})
	}
}

// HandleEvent applies ev and returns the resulting state.
func (c *Controller) HandleEvent(ev Event) Snapshot {
	before := c.g.mode
	switch e := ev.(type) {
	case PointerDown:
		c.g.down(e.ID, e.Pos)
	case PointerMove:
		if d, ok := c.g.move(e.ID, e.Pos); ok {
			c.pan(d)
		}
	case PointerUp:
		c.g.up(e.ID)
	case PointerCancel:
		c.g.cancel()
	case ScaleBegin:
		c.g.mode = Zooming
	case ScaleUpdate:
		c.zoom(e.Factor, e.Focus)
	case ScaleEnd:
		c.g.settle()
	}
	if after := c.g.mode; after != before {
		Logger().Debug("mode change", "from", before, "to", after, "pointers", len(c.g.pointers))
	}
	return c.Snapshot()
}

// OnPointerDown reports a pointer touching down at pos.
func (c *Controller) OnPointerDown(id pointer.ID, pos f32.Point) Snapshot {
	return c.HandleEvent(PointerDown{ID: id, Pos: pos})
}

// OnPointerMove reports a pointer moving to pos.
func (c *Controller) OnPointerMove(id pointer.ID, pos f32.Point) Snapshot {
	return c.HandleEvent(PointerMove{ID: id, Pos: pos})
}

// OnPointerUp reports a pointer lifting.
func (c *Controller) OnPointerUp(id pointer.ID) Snapshot {
	return c.HandleEvent(PointerUp{ID: id})
}

// OnScaleBegin reports the start of a scale gesture.
func (c *Controller) OnScaleBegin(focus f32.Point) Snapshot {
	return c.HandleEvent(ScaleBegin{Focus: focus})
}

// OnScaleUpdate reports an incremental scale factor.
func (c *Controller) OnScaleUpdate(factor float32, focus f32.Point) Snapshot {
	return c.HandleEvent(ScaleUpdate{Factor: factor, Focus: focus})
}

func (c *Controller) pan(delta f32.Point) {
	if !c.fitted {
		return
	}
	d := ClampPan(delta, c.t.Offset(), c.bitmap, c.scale, c.viewport)
	c.t.Translate(d.X, d.Y)
}

func (c *Controller) zoom(factor float32, focus f32.Point) {
	if !c.fitted || !finite(factor) || factor <= 0 {
		return
	}
	clamped, eff := ClampScale(c.scale, factor, c.minScale, c.maxScale)
	if eff != factor {
		Logger().Debug("zoom clamped", "requested", factor, "applied", eff, "scale", clamped)
	}
	c.applyScale(clamped, eff, focus)
}

// applyScale multiplies the transform by factor, which must take the current
// scale to clamped.
func (c *Controller) applyScale(clamped, factor float32, focus f32.Point) {
	if c.cfg.AnchorAtFocus {
		c.t.ScaleAround(focus, factor)
	} else {
		c.t.ScaleBy(factor)
	}
	// Keep the matrix scale and the tracked scale bit-identical.
	c.t.SetScale(clamped)
	c.scale = clamped
	// Zooming out can expose an edge; pull the offset back in.
	c.pan(f32.Point{})
}

// Snapshot returns the current state without modifying it.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Transform: c.t.Affine(),
		Scale:     c.scale,
		MinScale:  c.minScale,
		MaxScale:  c.maxScale,
		Mode:      c.g.mode,
		Ready:     c.fitted,
	}
}

// Transform returns a copy of the current transform.
func (c *Controller) Transform() Transform { return c.t }

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode { return c.g.mode }

// Scale returns the current scale.
func (c *Controller) Scale() float32 { return c.scale }

// Viewport returns the last viewport size passed to SetViewportSize.
func (c *Controller) Viewport() f32.Point { return c.viewport }

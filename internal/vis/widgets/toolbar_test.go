package widgets

import (
	"testing"

	"gioui.org/f32"

	"github.com/elektrokombinacija/zoomview/internal/zoom"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		snap zoom.Snapshot
		want string
	}{
		{zoom.Snapshot{}, "no image"},
		{zoom.Snapshot{Ready: true, Scale: 1.5, MinScale: 0.5, MaxScale: 3, Mode: zoom.Dragging}, "150%  [50% - 300%]  Dragging"},
	}

	for _, tt := range tests {
		if got := Status(tt.snap); got != tt.want {
			t.Errorf("Status(%+v) = %q, want %q", tt.snap, got, tt.want)
		}
	}
}

func TestImageViewZoomByCenter(t *testing.T) {
	cfg := zoom.DefaultConfig()
	cfg.AnchorAtFocus = true
	ctrl, err := zoom.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	v := NewImageView(ctrl, 0)
	ctrl.SetImage(f32.Pt(800, 800))
	if err := ctrl.SetViewportSize(f32.Pt(400, 400)); err != nil {
		t.Fatal(err)
	}
	v.viewport.X, v.viewport.Y = 400, 400

	v.ZoomBy(2)

	if got := ctrl.Scale(); got != 1 {
		t.Errorf("Scale() = %v, want 1", got)
	}
	if got, want := ctrl.Transform().Offset(), f32.Pt(-200, -200); got != want {
		t.Errorf("Offset() = %v, want %v", got, want)
	}
	if ctrl.Mode() != zoom.Idle {
		t.Errorf("Mode() = %v, want Idle", ctrl.Mode())
	}
}

package scribble

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestViewportDefaults(t *testing.T) {
	vp := NewViewport(800, 600)
	if vp.Scale != 1 {
		t.Errorf("Scale = %v, want 1", vp.Scale)
	}
	if vp.Pivot() != (Vec2{X: 400, Y: 300}) {
		t.Errorf("Pivot = %v, want (400,300)", vp.Pivot())
	}
	if vp.ShowGrid || vp.Pan != (Vec2{}) {
		t.Errorf("unexpected initial state: %+v", vp)
	}
}

func TestViewportZoomClamps(t *testing.T) {
	tests := []struct {
		name string
		op   func(*Viewport)
		want float64
	}{
		{"zoom in step", (*Viewport).ZoomIn, 1.1},
		{"zoom out step", (*Viewport).ZoomOut, 0.9},
		{"zoom by huge", func(v *Viewport) { v.ZoomBy(100) }, MaxScale},
		{"zoom by tiny", func(v *Viewport) { v.ZoomBy(-100) }, MinScale},
		{"set scale high", func(v *Viewport) { v.SetScale(10) }, MaxScale},
		{"set scale low", func(v *Viewport) { v.SetScale(0.01) }, MinScale},
		{"zoom by one", func(v *Viewport) { v.ZoomBy(1) }, math.Exp(0.2)},
		{"reset", func(v *Viewport) { v.SetScale(2.5); v.ResetZoom() }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := NewViewport(800, 600)
			tt.op(vp)
			if !approxEqual(vp.Scale, tt.want, 1e-9) {
				t.Errorf("Scale = %v, want %v", vp.Scale, tt.want)
			}
		})
	}
}

func TestViewportRepeatedStepsStayInRange(t *testing.T) {
	vp := NewViewport(800, 600)
	for i := 0; i < 50; i++ {
		vp.ZoomIn()
	}
	if vp.Scale != MaxScale {
		t.Errorf("after zooming in Scale = %v, want %v", vp.Scale, MaxScale)
	}
	for i := 0; i < 50; i++ {
		vp.ZoomOut()
	}
	if vp.Scale != MinScale {
		t.Errorf("after zooming out Scale = %v, want %v", vp.Scale, MinScale)
	}
}

func TestViewportPanAndGrid(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.PanBy(Vec2{X: 10, Y: -5})
	vp.PanBy(Vec2{X: 1e6, Y: 0})
	if vp.Pan != (Vec2{X: 1e6 + 10, Y: -5}) {
		t.Errorf("Pan = %v", vp.Pan)
	}
	vp.ToggleGrid()
	if !vp.ShowGrid {
		t.Error("ToggleGrid did not enable grid")
	}
	vp.ToggleGrid()
	if vp.ShowGrid {
		t.Error("second ToggleGrid did not disable grid")
	}
}

func TestPanScaledOffsetRounds(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.Pan = Vec2{X: 0.3, Y: -1.4}
	vp.Scale = 2
	if got := vp.PanScaledOffset(); got != (Vec2{X: 1, Y: -3}) {
		t.Errorf("PanScaledOffset = %v, want (1,-3)", got)
	}
}

func TestViewportScreenWorldRoundTrip(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.Scale = 1.7
	vp.Pan = Vec2{X: -33.3, Y: 12}
	for _, p := range []Vec2{{}, {X: 400, Y: 300}, {X: -120, Y: 999.5}} {
		if got := vp.ToWorld(vp.ToScreen(p)); !vecNear(got, p, 1e-9) {
			t.Errorf("ToWorld(ToScreen(%v)) = %v", p, got)
		}
		if got := vp.ToScreen(vp.ToWorld(p)); !vecNear(got, p, 1e-9) {
			t.Errorf("ToScreen(ToWorld(%v)) = %v", p, got)
		}
	}
}

func TestViewportScalesAboutCenter(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.Scale = 2
	if got := vp.ToScreen(Vec2{X: 400, Y: 300}); got != (Vec2{X: 400, Y: 300}) {
		t.Errorf("pivot maps to %v", got)
	}
	if got := vp.ToScreen(Vec2{X: 410, Y: 300}); got != (Vec2{X: 420, Y: 300}) {
		t.Errorf("offset point maps to %v, want (420,300)", got)
	}
	vp.Pan = Vec2{X: 5, Y: 0}
	if got := vp.ToScreen(Vec2{X: 400, Y: 300}); got != (Vec2{X: 410, Y: 300}) {
		t.Errorf("panned pivot maps to %v, want (410,300)", got)
	}
}

func TestScreenRectUsesLocalScale(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.Scale = 2
	b := Rect{Left: 100, Top: 100, Right: 200, Bottom: 150}
	// Captured at the live scale: only the pan applies.
	if got := vp.ScreenRect(b, 2); got != b {
		t.Errorf("ScreenRect at matching scale = %v, want %v", got, b)
	}
	got := vp.ScreenRect(b, 1)
	want := b.ScaleAbout(vp.Pivot(), 2)
	if !rectNear(got, want, 1e-9) {
		t.Errorf("ScreenRect at scale 1 = %v, want %v", got, want)
	}
}

func TestItemToScreen(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.Scale = 2
	vp.Pan = Vec2{X: 5, Y: 0}
	p := Vec2{X: 410, Y: 300}
	if got := vp.ItemToScreen(p, 1); !vecNear(got, Vec2{X: 430, Y: 300}, 1e-9) {
		t.Errorf("ItemToScreen at local scale 1 = %v, want (430,300)", got)
	}
	if got := vp.ItemToScreen(p, 2); !vecNear(got, Vec2{X: 420, Y: 300}, 1e-9) {
		t.Errorf("ItemToScreen at local scale 2 = %v, want (420,300)", got)
	}
}

func TestViewportZoomTo(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.ZoomTo(2, 1, ease.Linear)
	if !vp.Animating() {
		t.Fatal("Animating = false after ZoomTo")
	}
	vp.Update(0.5)
	if !approxEqual(vp.Scale, 1.5, 1e-4) {
		t.Errorf("mid-tween Scale = %v, want 1.5", vp.Scale)
	}
	vp.Update(0.6)
	if !approxEqual(vp.Scale, 2, 1e-4) {
		t.Errorf("final Scale = %v, want 2", vp.Scale)
	}
	if vp.Animating() {
		t.Error("Animating = true after tween finished")
	}
}

func TestViewportZoomToClampsTarget(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.ZoomTo(50, 0.5, ease.Linear)
	vp.Update(1)
	if !approxEqual(vp.Scale, MaxScale, 1e-4) {
		t.Errorf("Scale = %v, want %v", vp.Scale, MaxScale)
	}
}

func TestViewportManualZoomStopsTween(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.ZoomTo(2, 1, ease.Linear)
	vp.ResetZoom()
	vp.Update(1)
	if vp.Scale != 1 {
		t.Errorf("Scale = %v, want 1 after manual reset", vp.Scale)
	}
}

func TestViewportScrollTo(t *testing.T) {
	vp := NewViewport(800, 600)
	vp.ScrollTo(Vec2{X: 100, Y: -40}, 1, ease.Linear)
	vp.Update(0.5)
	if !approxEqual(vp.Pan.X, 50, 1e-3) || !approxEqual(vp.Pan.Y, -20, 1e-3) {
		t.Errorf("mid-scroll Pan = %v, want (50,-20)", vp.Pan)
	}
	vp.Update(0.6)
	if !approxEqual(vp.Pan.X, 100, 1e-3) || !approxEqual(vp.Pan.Y, -40, 1e-3) {
		t.Errorf("final Pan = %v, want (100,-40)", vp.Pan)
	}
	if vp.Animating() {
		t.Error("Animating = true after scroll finished")
	}
}

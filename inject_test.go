package scribble

import "testing"

func TestInjectClickSelects(t *testing.T) {
	e := newTestEngine()
	id := e.Board().AddItem(ShapeEllipse, Rect{Right: 100, Bottom: 100}, DefaultStyle())
	e.Board().Deselect()

	e.InjectClick(Vec2{X: 50, Y: 50}, ShapeSelect)
	if e.CurrentDocument().SelectedID != id {
		t.Error("click should select the ellipse")
	}
	if e.Interaction().Active() {
		t.Error("click should leave the engine idle")
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	e := newTestEngine()
	e.Board().AddItem(ShapeRectangle, Rect{Right: 100, Bottom: 100}, DefaultStyle())

	// The hand tool makes every intermediate move visible as pan.
	e.InjectDrag(Vec2{X: 0, Y: 0}, Vec2{X: 100, Y: 40}, 3, ShapeHand)
	if got := e.CurrentViewport().Pan; !vecNear(got, Vec2{X: 100, Y: 40}, 1e-9) {
		t.Errorf("Pan = %v, want (100,40)", got)
	}
}

func TestInjectDragNegativeSteps(t *testing.T) {
	e := newTestEngine()
	e.InjectDrag(Vec2{X: 10, Y: 10}, Vec2{X: 40, Y: 50}, -3, ShapeRectangle)
	if got := onlyItem(t, e).Bounds; got != (Rect{Left: 10, Top: 10, Right: 40, Bottom: 50}) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestInjectStrokeEmpty(t *testing.T) {
	e := newTestEngine()
	e.InjectStroke(nil, ShapeFreehand)
	if e.Interaction().Active() || len(e.CurrentDocument().Items) != 0 {
		t.Error("empty stroke should do nothing")
	}
}

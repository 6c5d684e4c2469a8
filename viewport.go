package scribble

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// MinScale and MaxScale bound every viewport zoom change.
	MinScale = 0.3
	MaxScale = 3.0

	// ZoomStep is the scale change applied by ZoomIn and ZoomOut.
	ZoomStep = 0.1

	// zoomSensitivity is applied to ZoomBy deltas before exponentiation.
	zoomSensitivity = 0.2
)

// ViewportState is the read-only view of the canvas presentation handed to
// the UI layer.
type ViewportState struct {
	Scale         float64
	Pan           Vec2
	UndoAvailable bool
	RedoAvailable bool
	ShowGrid      bool
}

// panAnim holds active scroll-to tweens for the pan X and Y components.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport maps world coordinates onto the screen. Canvas content is scaled
// about the viewport center and then translated by the pan offset.
type Viewport struct {
	// Scale is the zoom factor, always within [MinScale, MaxScale].
	Scale float64
	// Pan is the accumulated pan offset in unscaled units.
	Pan Vec2
	// ShowGrid toggles the background grid.
	ShowGrid bool
	// Width and Height are the on-screen size of the canvas. The scale pivot
	// is their center.
	Width, Height float64

	zoomTween *gween.Tween
	panTween  *panAnim
}

// NewViewport creates a Viewport with scale 1 and no pan.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Scale: 1, Width: width, Height: height}
}

// Pivot returns the viewport center used as the scale pivot.
func (v *Viewport) Pivot() Vec2 {
	return Vec2{X: v.Width / 2, Y: v.Height / 2}
}

// SetSize updates the canvas size, moving the pivot with it.
func (v *Viewport) SetSize(width, height float64) {
	v.Width = width
	v.Height = height
}

// PanScaledOffset returns pan*scale rounded to whole pixels, the effective
// screen-space translation of canvas content.
func (v *Viewport) PanScaledOffset() Vec2 {
	return v.Pan.Scale(v.Scale).Round()
}

// itemScaleTransform returns the matrix mapping world coordinates captured at
// localScale onto the screen, before item rotation.
func (v *Viewport) itemScaleTransform(localScale float64) [6]float64 {
	if localScale <= 0 {
		localScale = 1
	}
	return scaleAboutTransform(v.Pivot(), v.Scale/localScale, v.PanScaledOffset())
}

// ToScreen converts a world point to screen space.
func (v *Viewport) ToScreen(world Vec2) Vec2 {
	return transformPoint(v.itemScaleTransform(1), world)
}

// ToWorld converts a screen point to world space. It undoes the pan first
// and the scale second, so ToWorld(ToScreen(p)) round-trips to p.
func (v *Viewport) ToWorld(screen Vec2) Vec2 {
	return transformPoint(invertAffine(v.itemScaleTransform(1)), screen)
}

// ItemToScreen converts a point from the frame of an item captured at
// localScale into screen space, ignoring item rotation.
func (v *Viewport) ItemToScreen(p Vec2, localScale float64) Vec2 {
	return transformPoint(v.itemScaleTransform(localScale), p)
}

// ScreenRect returns an item's bounds in screen space: scaled by
// scale/localScale about the pivot and panned, but not rotated.
func (v *Viewport) ScreenRect(bounds Rect, localScale float64) Rect {
	return RectFromPoints(v.ItemToScreen(bounds.TopLeft(), localScale), v.ItemToScreen(bounds.BottomRight(), localScale))
}

// ZoomBy multiplies the scale by exp(delta*0.2). Positive deltas zoom in.
func (v *Viewport) ZoomBy(delta float64) {
	v.zoomTween = nil
	v.Scale = clampScale(v.Scale * math.Exp(delta*zoomSensitivity))
}

// ZoomIn increases the scale by one step.
func (v *Viewport) ZoomIn() {
	v.zoomTween = nil
	v.Scale = clampScale(v.Scale + ZoomStep)
}

// ZoomOut decreases the scale by one step.
func (v *Viewport) ZoomOut() {
	v.zoomTween = nil
	v.Scale = clampScale(v.Scale - ZoomStep)
}

// ResetZoom restores scale 1.
func (v *Viewport) ResetZoom() {
	v.zoomTween = nil
	v.Scale = 1
}

// SetScale sets the scale directly, clamped to the allowed range.
func (v *Viewport) SetScale(scale float64) {
	v.zoomTween = nil
	v.Scale = clampScale(scale)
}

// PanBy adds delta to the pan offset. Panning is unbounded.
func (v *Viewport) PanBy(delta Vec2) {
	v.panTween = nil
	v.Pan = v.Pan.Add(delta)
}

// ToggleGrid flips grid visibility.
func (v *Viewport) ToggleGrid() {
	v.ShowGrid = !v.ShowGrid
}

// ZoomTo animates the scale to target over duration seconds. The target is
// clamped before the tween starts.
func (v *Viewport) ZoomTo(target float64, duration float32, easeFn ease.TweenFunc) {
	v.zoomTween = gween.New(float32(v.Scale), float32(clampScale(target)), duration, easeFn)
}

// ScrollTo animates the pan offset to pan over duration seconds.
func (v *Viewport) ScrollTo(pan Vec2, duration float32, easeFn ease.TweenFunc) {
	v.panTween = &panAnim{
		tweenX: gween.New(float32(v.Pan.X), float32(pan.X), duration, easeFn),
		tweenY: gween.New(float32(v.Pan.Y), float32(pan.Y), duration, easeFn),
	}
}

// Animating reports whether a zoom or scroll animation is in progress.
func (v *Viewport) Animating() bool {
	return v.zoomTween != nil || v.panTween != nil
}

// Update advances running animations by dt seconds.
func (v *Viewport) Update(dt float32) {
	if v.zoomTween != nil {
		val, done := v.zoomTween.Update(dt)
		v.Scale = clampScale(float64(val))
		if done {
			v.zoomTween = nil
		}
	}
	if v.panTween != nil {
		if !v.panTween.doneX {
			val, done := v.panTween.tweenX.Update(dt)
			v.Pan.X = float64(val)
			v.panTween.doneX = done
		}
		if !v.panTween.doneY {
			val, done := v.panTween.tweenY.Update(dt)
			v.Pan.Y = float64(val)
			v.panTween.doneY = done
		}
		if v.panTween.doneX && v.panTween.doneY {
			v.panTween = nil
		}
	}
}

func clampScale(s float64) float64 {
	return math.Max(MinScale, math.Min(s, MaxScale))
}

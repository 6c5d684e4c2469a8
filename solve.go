package scribble

import "math"

// PointerInItemSpace maps a screen-space pointer into the frame of an item
// captured at localScale: it removes the difference between localScale and
// the live viewport scale about the pivot, then removes the pan offset.
// The result is not rotated.
func PointerInItemSpace(pointer Vec2, localScale float64, vp *Viewport) Vec2 {
	if localScale <= 0 {
		localScale = 1
	}
	pivot := vp.Pivot()
	factor := localScale / vp.Scale
	unscaled := pointer.Sub(pivot).Scale(factor).Add(pivot)
	return unscaled.Sub(vp.PanScaledOffset())
}

// ResizeBounds returns the item's bounds after dragging resize handle h to
// a screen-space pointer. The pointer is un-scaled, un-panned, and rotated
// by -Rotation about the current bounds center before being written to the
// edge or edges h controls. Opposite edges are untouched, so the result may
// be inverted. Non-resize handles return the bounds unchanged.
//
// The un-rotation pivot is the center before the edit, so heavily rotated
// corner drags drift slightly as the center moves.
func ResizeBounds(h Handle, pointer Vec2, item CanvasItem, vp *Viewport) Rect {
	b := item.Bounds
	if !h.IsResize() {
		return b
	}
	p := PointerInItemSpace(pointer, item.LocalScale, vp)
	p = p.RotateAround(b.Center(), -item.Rotation)

	switch h {
	case HandleTopLeft:
		b.Left, b.Top = p.X, p.Y
	case HandleTopRight:
		b.Top, b.Right = p.Y, p.X
	case HandleBottomRight:
		b.Right, b.Bottom = p.X, p.Y
	case HandleBottomLeft:
		b.Left, b.Bottom = p.X, p.Y
	case HandleLeft:
		b.Left = p.X
	case HandleTop:
		b.Top = p.Y
	case HandleRight:
		b.Right = p.X
	case HandleBottom:
		b.Bottom = p.Y
	}
	return b
}

// RotateAngle returns the rotation that points the item's top center at
// pointer, which must already be in item space (see PointerInItemSpace).
// The angle is measured clockwise from the item's up direction and
// normalized to [0, 2π). A zero-length direction yields 0.
func RotateAngle(item CanvasItem, pointer Vec2) float64 {
	center := item.Bounds.Center()
	a := item.Bounds.TopCenter().Sub(center)
	b := pointer.Sub(center)
	d := a.Len() * b.Len()
	if d == 0 {
		return 0
	}
	cos := math.Max(-1, math.Min(1, a.Dot(b)/d))
	theta := math.Acos(cos)
	if center.X-pointer.X < 0 {
		return normalizeAngle(theta)
	}
	return normalizeAngle(2*math.Pi - theta)
}

// MoveBounds translates start by the screen-space drag from press to
// pointer, converted into the item's frame.
func MoveBounds(start Rect, press, pointer Vec2, localScale float64, vp *Viewport) Rect {
	if localScale <= 0 {
		localScale = 1
	}
	delta := pointer.Sub(press).Scale(localScale / vp.Scale)
	return start.Translate(delta)
}

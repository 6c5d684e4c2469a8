package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scribble"
)

// CursorShape maps a scribble cursor onto the closest system cursor.
// Diagonal resize cursors pair up: NE and SW share one shape, as do NW
// and SE.
func CursorShape(c scribble.Cursor) ebiten.CursorShapeType {
	switch c {
	case scribble.CursorMove, scribble.CursorGrab:
		return ebiten.CursorShapeMove
	case scribble.CursorRotate:
		return ebiten.CursorShapePointer
	case scribble.CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	case scribble.CursorResizeN, scribble.CursorResizeS:
		return ebiten.CursorShapeNSResize
	case scribble.CursorResizeE, scribble.CursorResizeW:
		return ebiten.CursorShapeEWResize
	case scribble.CursorResizeNE, scribble.CursorResizeSW:
		return ebiten.CursorShapeNESWResize
	case scribble.CursorResizeNW, scribble.CursorResizeSE:
		return ebiten.CursorShapeNWSEResize
	}
	return ebiten.CursorShapeDefault
}

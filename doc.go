// Package scribble is the geometry and pointer-interaction core of an
// infinite-canvas drawing board.
//
// It reconciles three coordinate frames: screen space (pointer events),
// world space (where [CanvasItem] bounds live) and each item's local,
// unrotated frame. On top of that it provides hit testing with
// zoom-independent handle zones, resize and rotate solvers, and a
// [Board] that owns the document with linear undo/redo.
//
// # Quick start
//
// An [Engine] wires everything together. Forward raw pointer events to it
// and read back the document and draw parameters:
//
//	eng := scribble.NewEngine(scribble.DefaultEngineConfig())
//	eng.HandlePointerDown(scribble.Vec2{X: 10, Y: 10}, scribble.ShapeRectangle)
//	eng.HandlePointerMove(scribble.Vec2{X: 120, Y: 80})
//	eng.HandlePointerUp(scribble.Vec2{X: 120, Y: 80})
//	doc := eng.CurrentDocument() // one rectangle, selected
//	frame := eng.Frame()         // screen-space outlines for a renderer
//
// A drag is press, any number of moves, and release. Moves update the live
// item for immediate feedback; release records exactly one history entry.
// [Engine.Cancel] abandons a drag and restores the document.
//
// # Coordinates
//
// [Viewport] scales content about its center and then translates by
// [Viewport.PanScaledOffset]. Items remember the scale they were drawn at
// in [CanvasItem.LocalScale]; they are displayed scaled by
// Scale/LocalScale and then rotated about their on-screen center.
//
// # Rendering
//
// The core never draws. [BuildFrame] and [Engine.Frame] resolve items into
// screen-space paths, hatch lines and selection chrome; the render
// subpackage draws a [Frame] with Ebitengine.
package scribble

package scribble

import "math"

// scrollPanSpeed scales non-zoom scroll deltas into pan units.
const scrollPanSpeed = 10

// EngineConfig configures a new Engine.
type EngineConfig struct {
	// ViewportWidth and ViewportHeight are the canvas size in pixels.
	ViewportWidth  float64
	ViewportHeight float64
	// Hit sets the handle hit-zone sizes in screen pixels.
	Hit HitConfig
	// HistoryLimit caps undo depth; 0 means unlimited.
	HistoryLimit int
	// Debug enables diagnostic logging to stderr.
	Debug bool
}

// DefaultEngineConfig returns an 800x600 canvas with standard hit zones.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		ViewportWidth:  800,
		ViewportHeight: 600,
		Hit:            DefaultHitConfig(),
	}
}

// Engine turns pointer events into document edits. It owns the Board, the
// Viewport and the current Interaction, and is driven from a single thread.
type Engine struct {
	board       *Board
	viewport    *Viewport
	hit         HitConfig
	interaction Interaction

	tool   ShapeKind
	locked bool
	style  Style
	hover  HitResult
	cursor Cursor
	debug  bool

	pressPos    Vec2
	pressBounds Rect
	pressPan    Vec2
	lastPos     Vec2

	// stroke holds screen-space freehand samples with their running bounds.
	// strokeNorm is reused for previews.
	stroke       []Vec2
	strokeBounds Rect
	strokeNorm   []Vec2
}

// NewEngine creates an Engine with an empty board and the select tool.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Hit == (HitConfig{}) {
		cfg.Hit = DefaultHitConfig()
	}
	b := NewBoard()
	b.History().Limit = cfg.HistoryLimit
	return &Engine{
		board:    b,
		viewport: NewViewport(cfg.ViewportWidth, cfg.ViewportHeight),
		hit:      cfg.Hit,
		tool:     ShapeSelect,
		style:    DefaultStyle(),
		debug:    cfg.Debug,
	}
}

// Board returns the board the engine edits.
func (e *Engine) Board() *Board { return e.board }

// Viewport returns the engine's viewport for zoom and pan controls.
func (e *Engine) Viewport() *Viewport { return e.viewport }

// Interaction returns the current interaction.
func (e *Engine) Interaction() Interaction { return e.interaction }

// CurrentDocument returns a snapshot of the document for rendering.
func (e *Engine) CurrentDocument() Document { return e.board.Document() }

// CurrentViewport returns the viewport state with undo/redo availability
// derived from the history stacks.
func (e *Engine) CurrentViewport() ViewportState {
	return ViewportState{
		Scale:         e.viewport.Scale,
		Pan:           e.viewport.Pan,
		UndoAvailable: e.board.CanUndo(),
		RedoAvailable: e.board.CanRedo(),
		ShowGrid:      e.viewport.ShowGrid,
	}
}

// Cursor returns the cursor for the last pointer event.
func (e *Engine) Cursor() Cursor { return e.cursor }

// Hover returns the classification of the last idle pointer move.
func (e *Engine) Hover() HitResult { return e.hover }

// HandlePointerDown starts a gesture at a screen position. Drawable tools
// start Drawing, the hand tool pans the canvas, and the select tool grabs a
// handle or item under the pointer (deselecting on empty canvas). A press
// while a gesture is already running is ignored.
func (e *Engine) HandlePointerDown(pos Vec2, tool ShapeKind) Interaction {
	if e.interaction.Active() {
		e.debugf("press at %v ignored: %s in progress", pos, e.interaction)
		return e.interaction
	}
	e.pressPos = pos
	e.lastPos = pos

	switch {
	case tool.IsDrawable():
		e.interaction = Interaction{Kind: Drawing, Tool: tool, Start: pos, Current: pos}
		e.stroke = append(e.stroke[:0], pos)
		e.strokeBounds = Rect{Left: pos.X, Top: pos.Y, Right: pos.X, Bottom: pos.Y}
		e.cursor = CursorCrosshair
	case tool == ShapeHand:
		e.pressPan = e.viewport.Pan
		e.interaction = Interaction{Kind: PanningCanvas, Start: pos, Current: pos}
		e.cursor = CursorGrab
	case tool == ShapeSelect:
		e.pressSelect(pos)
	default:
		e.interaction = Interaction{}
	}
	e.debugf("press at %v with %s: %s", pos, tool, e.interaction)
	return e.interaction
}

func (e *Engine) pressSelect(pos Vec2) {
	doc := &e.board.doc
	hit := Classify(pos, doc.Items, doc.SelectedID, e.viewport, e.hit)
	switch {
	case hit.Handle.IsResize():
		e.board.beginGesture()
		e.interaction = Interaction{Kind: Resizing, Handle: hit.Handle, ItemID: hit.ItemID}
	case hit.Handle == HandleRotate:
		e.board.beginGesture()
		e.interaction = Interaction{Kind: Rotating, Handle: hit.Handle, ItemID: hit.ItemID}
	case hit.Handle == HandleInterior:
		e.board.beginGesture()
		e.board.SelectItem(hit.ItemID)
		it, _ := doc.Item(hit.ItemID)
		e.pressBounds = it.Bounds
		e.interaction = Interaction{Kind: PanningSelection, Handle: hit.Handle, ItemID: hit.ItemID}
	default:
		e.board.Deselect()
		e.interaction = Interaction{}
	}
	e.cursor = hit.Cursor
}

// HandlePointerMove updates the running gesture, or the hover state when
// idle. It returns a copy of the item being edited or drawn for live
// redraw, or nil. A freehand preview's points are only valid until the next
// event. Nothing is recorded in history until release.
func (e *Engine) HandlePointerMove(pos Vec2) (Interaction, *CanvasItem) {
	defer func() { e.lastPos = pos }()

	switch e.interaction.Kind {
	case Drawing:
		e.interaction.Current = pos
		if e.interaction.Tool == ShapeFreehand && pos != e.stroke[len(e.stroke)-1] {
			e.stroke = append(e.stroke, pos)
			e.strokeBounds = extendRect(e.strokeBounds, pos)
		}
		if preview, ok := e.drawnItem(); ok {
			return e.interaction, &preview
		}
		return e.interaction, nil
	case Resizing:
		it, ok := e.board.setLive(e.interaction.ItemID, func(it *CanvasItem) {
			it.Bounds = ResizeBounds(e.interaction.Handle, pos, *it, e.viewport)
		})
		return e.liveResult(it, ok)
	case Rotating:
		it, ok := e.board.setLive(e.interaction.ItemID, func(it *CanvasItem) {
			it.Rotation = RotateAngle(*it, PointerInItemSpace(pos, it.LocalScale, e.viewport))
		})
		return e.liveResult(it, ok)
	case PanningSelection:
		it, ok := e.board.setLive(e.interaction.ItemID, func(it *CanvasItem) {
			it.Bounds = MoveBounds(e.pressBounds, e.pressPos, pos, it.LocalScale, e.viewport)
		})
		return e.liveResult(it, ok)
	case PanningCanvas:
		e.interaction.Current = pos
		e.viewport.PanBy(pos.Sub(e.lastPos).Scale(1 / e.viewport.Scale))
		return e.interaction, nil
	}

	e.updateHover(pos)
	return e.interaction, nil
}

func (e *Engine) liveResult(it CanvasItem, ok bool) (Interaction, *CanvasItem) {
	if !ok {
		e.debugf("item %s vanished during %s", e.interaction.ItemID, e.interaction.Kind)
		return e.interaction, nil
	}
	if e.interaction.Handle.IsResize() {
		e.cursor = CursorFor(e.interaction.Handle, it.Rotation)
	}
	return e.interaction, &it
}

func (e *Engine) updateHover(pos Vec2) {
	switch {
	case e.tool == ShapeSelect:
		doc := &e.board.doc
		e.hover = Classify(pos, doc.Items, doc.SelectedID, e.viewport, e.hit)
		e.cursor = e.hover.Cursor
	case e.tool.IsDrawable():
		e.hover = HitResult{}
		e.cursor = CursorCrosshair
	case e.tool == ShapeHand:
		e.hover = HitResult{}
		e.cursor = CursorGrab
	default:
		e.hover = HitResult{}
		e.cursor = CursorDefault
	}
}

// HandlePointerUp applies the final pointer position and commits the
// gesture as a single history entry. A release with no gesture running is
// ignored.
func (e *Engine) HandlePointerUp(pos Vec2) {
	if !e.interaction.Active() {
		e.debugf("release at %v ignored: no gesture", pos)
		return
	}
	e.HandlePointerMove(pos)

	switch e.interaction.Kind {
	case Drawing:
		e.finishDrawing()
	case Resizing, Rotating, PanningSelection:
		if e.board.commitGesture() {
			u, _ := e.board.history.Depth()
			e.debugf("committed %s, undo depth %d", e.interaction, u)
			e.debugCheckHistory()
		}
	}
	e.interaction = Interaction{}
	e.stroke = e.stroke[:0]
	e.updateHover(pos)
}

// Cancel aborts the running gesture, restoring the document and pan to
// their state before the press.
func (e *Engine) Cancel() {
	switch e.interaction.Kind {
	case Idle:
		return
	case PanningCanvas:
		e.viewport.Pan = e.pressPan
	case Resizing, Rotating, PanningSelection:
		e.board.cancelGesture()
	}
	e.debugf("cancelled %s", e.interaction)
	e.interaction = Interaction{}
	e.stroke = e.stroke[:0]
	e.cursor = CursorDefault
}

// drawnItem builds the item the current Drawing gesture would create. It
// reports false while the drawing has no extent. Freehand points share a
// buffer that the next call overwrites; InsertItem copies them.
func (e *Engine) drawnItem() (CanvasItem, bool) {
	in := e.interaction
	off := e.viewport.PanScaledOffset()
	item := CanvasItem{
		Kind:       in.Tool,
		LocalScale: e.viewport.Scale,
		Style:      e.style,
	}
	switch {
	case in.Tool == ShapeFreehand:
		if len(e.stroke) < 2 {
			return item, false
		}
		if e.strokeBounds.Width() == 0 && e.strokeBounds.Height() == 0 {
			return item, false
		}
		item.Bounds = e.strokeBounds.Translate(off.Scale(-1))
		e.strokeNorm = normalizeStrokeInto(e.strokeNorm[:0], e.stroke, e.strokeBounds)
		item.FreehandPoints = e.strokeNorm
	case in.Tool.HasFill():
		item.Bounds = RectFromPoints(in.Start.Sub(off), in.Current.Sub(off))
		if item.Bounds.IsEmpty() {
			return item, false
		}
	default:
		if in.Start == in.Current {
			return item, false
		}
		item.Bounds = RectFromPoints(in.Start.Sub(off), in.Current.Sub(off))
	}
	return item, true
}

func (e *Engine) finishDrawing() {
	item, ok := e.drawnItem()
	if !ok {
		e.debugf("discarded empty %s", e.interaction.Tool)
		return
	}
	id := e.board.InsertItem(item)
	e.debugf("added %s %s at %+v", item.Kind, id, item.Bounds)
	e.debugCheckHistory()
	if !e.locked {
		e.tool = ShapeSelect
	}
}

// Tool returns the active tool.
func (e *Engine) Tool() ShapeKind { return e.tool }

// Locked reports whether the active tool stays selected after drawing.
func (e *Engine) Locked() bool { return e.locked }

// SelectTool changes the active tool. The lock kind toggles tool locking
// instead, and choosing the active tool again returns to select.
func (e *Engine) SelectTool(kind ShapeKind) {
	switch {
	case kind == ShapeLock:
		e.locked = !e.locked
	case kind == e.tool:
		e.tool = ShapeSelect
	default:
		e.tool = kind
	}
}

// Style returns the style applied to new items.
func (e *Engine) Style() Style { return e.style }

// SetStyle sets the style for new items and applies it to the selected
// item, if any, as one undoable step.
func (e *Engine) SetStyle(s Style) {
	e.style = s
	if sel, ok := e.board.doc.Selected(); ok && sel.Style != s {
		e.Cancel()
		e.board.UpdateSelectedStyle(s)
	}
}

// SetFillColor changes the fill color following Style.WithFillColor.
func (e *Engine) SetFillColor(c PaletteColor) {
	e.SetStyle(e.style.WithFillColor(c))
}

// Undo cancels any running gesture and steps back one history entry.
func (e *Engine) Undo() {
	e.Cancel()
	e.board.Undo()
}

// Redo cancels any running gesture and reapplies one undone entry.
func (e *Engine) Redo() {
	e.Cancel()
	e.board.Redo()
}

// HandleScroll applies a wheel delta. Every delta pans the canvas by
// delta*10; a vertical unit step also zooms, positive Y zooming in.
func (e *Engine) HandleScroll(delta Vec2) {
	if math.Abs(delta.Y) == 1 {
		e.viewport.ZoomBy(delta.Y)
	}
	e.viewport.PanBy(delta.Scale(scrollPanSpeed))
}

var toolKeys = map[rune]ShapeKind{
	'v': ShapeSelect, '1': ShapeSelect,
	'r': ShapeRectangle, '2': ShapeRectangle,
	'd': ShapeDiamond, '3': ShapeDiamond,
	'c': ShapeEllipse, '4': ShapeEllipse,
	'a': ShapeArrow, '5': ShapeArrow,
	'l': ShapeLine, '6': ShapeLine,
	'7': ShapeFreehand,
	't': ShapeText, '8': ShapeText,
	'e': ShapeEraser, '0': ShapeEraser,
	'h': ShapeHand,
	'q': ShapeLock,
}

// ToolForKey maps a lowercase keyboard shortcut to a tool.
func ToolForKey(r rune) (ShapeKind, bool) {
	k, ok := toolKeys[r]
	return k, ok
}

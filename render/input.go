package render

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/scribble"
)

// ZoomSeconds is the default duration of keyboard zoom animations.
const ZoomSeconds = 0.2

// KeyModifiers is a bitmask of held modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// pointerEvent is the edge produced by one frame of mouse state.
type pointerEvent uint8

const (
	pointerNone pointerEvent = iota
	pointerDown
	pointerMove
	pointerUp
)

// pointerTransition compares this frame's button state against the last
// one. A move is reported while hovering as well as while dragging.
func pointerTransition(wasDown, down, moved bool) pointerEvent {
	switch {
	case down && !wasDown:
		return pointerDown
	case !down && wasDown:
		return pointerUp
	case moved:
		return pointerMove
	}
	return pointerNone
}

// zoomKeyTarget maps a zoom shortcut to the scale it animates towards.
func zoomKeyTarget(r rune, current float64) (float64, bool) {
	switch r {
	case '+', '=':
		return current + scribble.ZoomStep, true
	case '-', '_':
		return current - scribble.ZoomStep, true
	}
	return 0, false
}

// Input polls Ebitengine's mouse and keyboard once per tick and feeds the
// results to an Engine.
type Input struct {
	// ZoomSeconds is the duration of keyboard zoom animations.
	ZoomSeconds float32

	down    bool
	last    scribble.Vec2
	focused bool
	chars   []rune
}

// NewInput creates an Input with the default zoom duration.
func NewInput() *Input {
	return &Input{ZoomSeconds: ZoomSeconds, focused: true}
}

func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// Update processes this tick's input. Call it from ebiten.Game.Update.
func (in *Input) Update(e *scribble.Engine) {
	focused := ebiten.IsFocused()
	if !focused && in.focused {
		e.Cancel()
		in.down = false
	}
	in.focused = focused
	if !focused {
		return
	}

	mods := readModifiers()
	in.processKeys(e, mods)
	in.processMouse(e)

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		e.HandleScroll(scribble.Vec2{X: dx, Y: dy})
	}
}

func (in *Input) processMouse(e *scribble.Engine) {
	mx, my := ebiten.CursorPosition()
	pos := scribble.Vec2{X: float64(mx), Y: float64(my)}
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch pointerTransition(in.down, down, pos != in.last) {
	case pointerDown:
		e.HandlePointerDown(pos, e.Tool())
	case pointerMove:
		e.HandlePointerMove(pos)
	case pointerUp:
		e.HandlePointerUp(pos)
	}
	in.down = down
	in.last = pos
}

func (in *Input) processKeys(e *scribble.Engine, mods KeyModifiers) {
	shortcut := mods&(ModCtrl|ModMeta) != 0
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		e.Cancel()
	case shortcut && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		if mods&ModShift != 0 {
			e.Redo()
		} else {
			e.Undo()
		}
	case shortcut && inpututil.IsKeyJustPressed(ebiten.KeyY):
		e.Redo()
	case shortcut && inpututil.IsKeyJustPressed(ebiten.Key0):
		e.Viewport().ZoomTo(1, in.ZoomSeconds, ease.OutCubic)
	}
	if shortcut {
		return
	}

	in.chars = ebiten.AppendInputChars(in.chars[:0])
	vp := e.Viewport()
	for _, r := range in.chars {
		if target, ok := zoomKeyTarget(r, vp.Scale); ok {
			vp.ZoomTo(target, in.ZoomSeconds, ease.OutCubic)
			continue
		}
		if r == 'g' {
			vp.ToggleGrid()
			continue
		}
		if kind, ok := scribble.ToolForKey(unicode.ToLower(r)); ok {
			e.SelectTool(kind)
		}
	}
}

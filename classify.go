package scribble

import "math"

// Handle is the interaction zone under the pointer.
type Handle uint8

const (
	HandleNone Handle = iota
	HandleInterior
	HandleTopLeft
	HandleTopRight
	HandleBottomRight
	HandleBottomLeft
	HandleLeft
	HandleTop
	HandleRight
	HandleBottom
	HandleRotate
)

var handleNames = [...]string{
	HandleNone:        "none",
	HandleInterior:    "interior",
	HandleTopLeft:     "top-left",
	HandleTopRight:    "top-right",
	HandleBottomRight: "bottom-right",
	HandleBottomLeft:  "bottom-left",
	HandleLeft:        "left",
	HandleTop:         "top",
	HandleRight:       "right",
	HandleBottom:      "bottom",
	HandleRotate:      "rotate",
}

func (h Handle) String() string {
	if int(h) < len(handleNames) {
		return handleNames[h]
	}
	return "unknown"
}

// IsResize reports whether h is a corner or edge handle.
func (h Handle) IsResize() bool {
	return h >= HandleTopLeft && h <= HandleBottom
}

// IsCorner reports whether h is a corner handle.
func (h Handle) IsCorner() bool {
	return h >= HandleTopLeft && h <= HandleBottomLeft
}

var cornerHandles = [4]Handle{HandleTopLeft, HandleTopRight, HandleBottomRight, HandleBottomLeft}
var edgeHandles = [4]Handle{HandleLeft, HandleTop, HandleRight, HandleBottom}

// Cursor is the pointer icon the UI should show.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorMove
	// CursorRotate is shown over the rotate handle.
	CursorRotate
	CursorResizeN
	CursorResizeNE
	CursorResizeE
	CursorResizeSE
	CursorResizeS
	CursorResizeSW
	CursorResizeW
	CursorResizeNW
	CursorCrosshair
	CursorGrab
)

var compassCursors = [8]Cursor{
	CursorResizeN, CursorResizeNE, CursorResizeE, CursorResizeSE,
	CursorResizeS, CursorResizeSW, CursorResizeW, CursorResizeNW,
}

// handleDirection is the screen direction of each resize handle on an
// unrotated item, measured clockwise from north.
var handleDirection = map[Handle]float64{
	HandleTop:         0,
	HandleTopRight:    math.Pi / 4,
	HandleRight:       math.Pi / 2,
	HandleBottomRight: 3 * math.Pi / 4,
	HandleBottom:      math.Pi,
	HandleBottomLeft:  5 * math.Pi / 4,
	HandleLeft:        3 * math.Pi / 2,
	HandleTopLeft:     -math.Pi / 4,
}

// CursorFor returns the cursor for a handle on an item rotated by rotation
// radians. Resize cursors turn with the item in 45° steps.
func CursorFor(h Handle, rotation float64) Cursor {
	switch {
	case h == HandleRotate:
		return CursorRotate
	case h == HandleInterior:
		return CursorMove
	case h.IsResize():
		deg := math.Round(normalizeAngle(rotation+handleDirection[h]) * 180 / math.Pi)
		return compassCursors[int(math.Round(deg/45))%8]
	}
	return CursorDefault
}

// HitConfig holds the screen-pixel sizes of the hit zones.
type HitConfig struct {
	Tolerance   float64
	AxleOffset  float64
	BandInflate float64
}

// DefaultHitConfig returns the standard hit-zone sizes.
func DefaultHitConfig() HitConfig {
	return HitConfig{
		Tolerance:   DefaultTolerance,
		AxleOffset:  DefaultAxleOffset,
		BandInflate: DefaultBandInflate,
	}
}

// HitResult is the outcome of classifying a pointer position.
type HitResult struct {
	Handle Handle
	// ItemID is the item the handle belongs to, or "" for HandleNone.
	ItemID string
	Cursor Cursor
}

// ScreenFrame returns an item's rotated rect in screen space.
func ScreenFrame(vp *Viewport, item CanvasItem) RotatedRect {
	f := item.Frame()
	f.Bounds = vp.ScreenRect(f.Bounds, item.LocalScale)
	return f
}

// Classify finds the zone under a screen-space pointer. Resize and rotate
// handles are only tested on the selected item, and only for kinds that
// draw a selection boundary, with precedence
// rotate > corner > edge; otherwise the topmost item containing the pointer
// yields HandleInterior. All distances are in screen pixels, so hit zones
// do not change size with zoom.
func Classify(pointer Vec2, items []CanvasItem, selectedID string, vp *Viewport, cfg HitConfig) HitResult {
	if selectedID != "" {
		for i := range items {
			if items[i].ID != selectedID {
				continue
			}
			if !items[i].Kind.HasBoundary() {
				break
			}
			if h := classifyHandles(pointer, ScreenFrame(vp, items[i]), cfg); h != HandleNone {
				return HitResult{Handle: h, ItemID: selectedID, Cursor: CursorFor(h, items[i].Rotation)}
			}
			break
		}
	}
	if i := topmostAt(pointer, items, vp); i >= 0 {
		return HitResult{Handle: HandleInterior, ItemID: items[i].ID, Cursor: CursorMove}
	}
	return HitResult{}
}

// classifyHandles tests the rotate, corner and edge handles of one frame.
func classifyHandles(p Vec2, frame RotatedRect, cfg HitConfig) Handle {
	if frame.NearRotateHandle(p, cfg.AxleOffset, cfg.Tolerance) {
		return HandleRotate
	}
	if !frame.InsideInteractionBand(p, cfg.BandInflate, cfg.BandInflate) {
		return HandleNone
	}
	for c, h := range cornerHandles {
		if frame.NearCorner(p, Corner(c), cfg.Tolerance) {
			return h
		}
	}
	for e, h := range edgeHandles {
		if frame.NearEdge(p, Edge(e), cfg.Tolerance) {
			return h
		}
	}
	return HandleNone
}

// topmostAt returns the index of the last item whose screen frame contains
// p, or -1.
func topmostAt(p Vec2, items []CanvasItem, vp *Viewport) int {
	for i := len(items) - 1; i >= 0; i-- {
		if ScreenFrame(vp, items[i]).Contains(p) {
			return i
		}
	}
	return -1
}

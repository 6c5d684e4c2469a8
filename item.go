package scribble

import (
	"fmt"
	"image/color"

	"go.jetify.com/typeid/v2"
)

// ItemIDPrefix is the type prefix carried by every CanvasItem ID.
const ItemIDPrefix = "item"

// NewItemID returns a fresh, sortable item identifier such as
// "item_01h455vb4pex5vsknk084sn02q".
func NewItemID() string {
	return typeid.MustGenerate(ItemIDPrefix).String()
}

// ValidateItemID reports an error when id is not a well-formed item ID.
func ValidateItemID(id string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid item id %q: %w", id, err)
	}
	if parsed.Prefix() != ItemIDPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", ItemIDPrefix, parsed.Prefix(), id)
	}
	return nil
}

// ShapeKind identifies a tool or the kind of shape an item draws.
type ShapeKind uint8

const (
	ShapeRectangle ShapeKind = iota
	ShapeDiamond
	ShapeEllipse
	ShapeLine
	ShapeArrow
	ShapeFreehand
	ShapeSelect
	ShapeHand
	ShapeLock
	ShapeEraser
	// ShapeText is reserved; choosing it does nothing yet.
	ShapeText
)

var shapeKindNames = [...]string{
	ShapeRectangle: "rectangle",
	ShapeDiamond:   "diamond",
	ShapeEllipse:   "ellipse",
	ShapeLine:      "line",
	ShapeArrow:     "arrow",
	ShapeFreehand:  "freehand",
	ShapeSelect:    "select",
	ShapeHand:      "hand",
	ShapeLock:      "lock",
	ShapeEraser:    "eraser",
	ShapeText:      "text",
}

func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", k)
}

// ParseShapeKind returns the kind with the given name.
func ParseShapeKind(name string) (ShapeKind, bool) {
	for i, n := range shapeKindNames {
		if n == name {
			return ShapeKind(i), true
		}
	}
	return 0, false
}

// IsDrawable reports whether the kind produces an item with geometry.
func (k ShapeKind) IsDrawable() bool {
	switch k {
	case ShapeRectangle, ShapeDiamond, ShapeEllipse, ShapeLine, ShapeArrow, ShapeFreehand:
		return true
	}
	return false
}

// HasBoundary reports whether a selected item of this kind shows a
// selection boundary with handles. Lines and arrows do not.
func (k ShapeKind) HasBoundary() bool {
	switch k {
	case ShapeRectangle, ShapeDiamond, ShapeEllipse, ShapeFreehand:
		return true
	}
	return false
}

// HasFill reports whether the kind can carry a background fill.
func (k ShapeKind) HasFill() bool {
	switch k {
	case ShapeRectangle, ShapeDiamond, ShapeEllipse:
		return true
	}
	return false
}

// PaletteColor is one of the named colors offered for strokes and fills.
type PaletteColor uint8

const (
	ColorBase PaletteColor = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
)

// Foreground returns the stroke color for c.
func (c PaletteColor) Foreground() color.NRGBA {
	switch c {
	case ColorRed:
		return argb(0xfffcafa5)
	case ColorGreen:
		return argb(0xff86efac)
	case ColorBlue:
		return argb(0xff93c5fd)
	case ColorYellow:
		return argb(0xfffde047)
	default:
		return argb(0xffffffff)
	}
}

// Background returns the fill color for c. The base color is transparent.
func (c PaletteColor) Background() color.NRGBA {
	switch c {
	case ColorRed:
		return argb(0xffdc2626)
	case ColorGreen:
		return argb(0xff16a34a)
	case ColorBlue:
		return argb(0xff2563eb)
	case ColorYellow:
		return argb(0xffca8a04)
	default:
		return argb(0x00000000)
	}
}

// FillPattern selects how a closed shape's interior is painted.
type FillPattern uint8

const (
	FillNone FillPattern = iota
	FillSolid
	FillCrossHatch
	FillHatch
)

// StrokeWidth is a stroke thickness class.
type StrokeWidth uint8

const (
	StrokeThin StrokeWidth = iota
	StrokeBold
	StrokeExtraBold
)

// Pixels returns the on-screen stroke width.
func (w StrokeWidth) Pixels() float64 {
	switch w {
	case StrokeBold:
		return 4
	case StrokeExtraBold:
		return 6
	default:
		return 2
	}
}

// DashPattern selects the stroke dash style.
type DashPattern uint8

const (
	DashSolid DashPattern = iota
	DashDashed
	DashDotted
)

// Intervals returns the on/off lengths in pixels, or nil for solid strokes.
func (d DashPattern) Intervals() []float64 {
	switch d {
	case DashDashed:
		return []float64{12, 12}
	case DashDotted:
		return []float64{6, 6}
	default:
		return nil
	}
}

// Edges selects corner rounding for rectangles and diamonds.
type Edges uint8

const (
	EdgesSharp Edges = iota
	EdgesRounded
)

// Style holds the visual attributes of an item.
type Style struct {
	Stroke  PaletteColor
	Fill    PaletteColor
	Pattern FillPattern
	Width   StrokeWidth
	Dash    DashPattern
	Edges   Edges
	// Opacity is in [0, 1].
	Opacity float64
}

// DefaultStyle returns the style new items start with.
func DefaultStyle() Style {
	return Style{
		Stroke:  ColorBase,
		Fill:    ColorBase,
		Pattern: FillNone,
		Width:   StrokeThin,
		Dash:    DashSolid,
		Edges:   EdgesSharp,
		Opacity: 1,
	}
}

// WithFillColor returns s with the fill color changed. Choosing the base
// color clears the fill; choosing a color while there is no fill switches
// to a solid fill. Any other pattern is kept.
func (s Style) WithFillColor(c PaletteColor) Style {
	s.Fill = c
	switch {
	case c == ColorBase:
		s.Pattern = FillNone
	case s.Pattern == FillNone:
		s.Pattern = FillSolid
	}
	return s
}

// CanvasItem is one shape on the canvas.
//
// Bounds are world coordinates as captured at LocalScale, the viewport
// scale when the item was created. Rotation is in radians and may be stored
// unnormalized; use DisplayRotation for the [0, 2π) value.
type CanvasItem struct {
	ID         string
	Kind       ShapeKind
	Bounds     Rect
	Rotation   float64
	LocalScale float64
	Style      Style
	// FreehandPoints are stroke samples relative to Bounds, where (0,0) is
	// the top-left and (1,1) the bottom-right. Only freehand items use them.
	FreehandPoints []Vec2
}

// DisplayRotation returns Rotation normalized to [0, 2π).
func (it CanvasItem) DisplayRotation() float64 {
	return normalizeAngle(it.Rotation)
}

// Frame returns the item's bounds and rotation as a RotatedRect.
func (it CanvasItem) Frame() RotatedRect {
	return RotatedRect{Bounds: it.Bounds, Rotation: it.Rotation}
}

// FreehandWorldPoints maps the normalized freehand samples onto Bounds.
func (it CanvasItem) FreehandWorldPoints() []Vec2 {
	out := make([]Vec2, len(it.FreehandPoints))
	w, h := it.Bounds.Width(), it.Bounds.Height()
	for i, p := range it.FreehandPoints {
		out[i] = Vec2{X: it.Bounds.Left + p.X*w, Y: it.Bounds.Top + p.Y*h}
	}
	return out
}

// clone returns a deep copy of the item.
func (it CanvasItem) clone() CanvasItem {
	if it.FreehandPoints != nil {
		it.FreehandPoints = append([]Vec2(nil), it.FreehandPoints...)
	}
	return it
}

// equal reports whether two items have the same content.
func (it CanvasItem) equal(o CanvasItem) bool {
	if it.ID != o.ID || it.Kind != o.Kind || it.Bounds != o.Bounds ||
		it.Rotation != o.Rotation || it.LocalScale != o.LocalScale || it.Style != o.Style {
		return false
	}
	if len(it.FreehandPoints) != len(o.FreehandPoints) {
		return false
	}
	for i := range it.FreehandPoints {
		if it.FreehandPoints[i] != o.FreehandPoints[i] {
			return false
		}
	}
	return true
}

// normalizeStrokeInto appends the samples of pts, relative to b, to dst.
// A degenerate axis maps to 0.
func normalizeStrokeInto(dst, pts []Vec2, b Rect) []Vec2 {
	w, h := b.Width(), b.Height()
	for _, p := range pts {
		var n Vec2
		if w != 0 {
			n.X = (p.X - b.Left) / w
		}
		if h != 0 {
			n.Y = (p.Y - b.Top) / h
		}
		dst = append(dst, n)
	}
	return dst
}

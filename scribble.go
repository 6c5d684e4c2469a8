package scribble

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a 2D point or vector. Whether it is in world or screen space
// depends on where it came from.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) vec() r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

func fromVec(v r2.Vec) Vec2 { return Vec2{X: v.X, Y: v.Y} }

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return fromVec(r2.Add(v.vec(), o.vec())) }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return fromVec(r2.Sub(v.vec(), o.vec())) }

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return fromVec(r2.Scale(f, v.vec())) }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return r2.Dot(v.vec(), o.vec()) }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return r2.Norm(v.vec()) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return r2.Norm(r2.Sub(v.vec(), o.vec())) }

// RotateAround rotates v about pivot by radians. Positive angles turn
// clockwise on screen because Y grows downward.
func (v Vec2) RotateAround(pivot Vec2, radians float64) Vec2 {
	return fromVec(r2.Rotate(v.vec(), radians, pivot.vec()))
}

// Round rounds both components to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{X: math.Round(v.X), Y: math.Round(v.Y)}
}

// Rect is a rectangle stored edge by edge. It is not normalized: Right may
// be less than Left and Bottom less than Top when a shape was dragged
// backwards. Use Canon for the well-formed version.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromPoints returns the rect spanning from a to b without normalizing.
func RectFromPoints(a, b Vec2) Rect {
	return Rect{Left: a.X, Top: a.Y, Right: b.X, Bottom: b.Y}
}

// Width may be negative.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height may be negative.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

func (r Rect) TopLeft() Vec2     { return Vec2{X: r.Left, Y: r.Top} }
func (r Rect) TopRight() Vec2    { return Vec2{X: r.Right, Y: r.Top} }
func (r Rect) BottomLeft() Vec2  { return Vec2{X: r.Left, Y: r.Bottom} }
func (r Rect) BottomRight() Vec2 { return Vec2{X: r.Right, Y: r.Bottom} }

func (r Rect) TopCenter() Vec2    { return Vec2{X: (r.Left + r.Right) / 2, Y: r.Top} }
func (r Rect) BottomCenter() Vec2 { return Vec2{X: (r.Left + r.Right) / 2, Y: r.Bottom} }
func (r Rect) CenterLeft() Vec2   { return Vec2{X: r.Left, Y: (r.Top + r.Bottom) / 2} }
func (r Rect) CenterRight() Vec2  { return Vec2{X: r.Right, Y: (r.Top + r.Bottom) / 2} }

// Corners returns the corners clockwise starting at the top-left.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Canon returns r with its edges swapped where needed so that
// Left <= Right and Top <= Bottom.
func (r Rect) Canon() Rect {
	b := r2.Box{Min: r2.Vec{X: r.Left, Y: r.Top}, Max: r2.Vec{X: r.Right, Y: r.Bottom}}.Canon()
	return Rect{Left: b.Min.X, Top: b.Min.Y, Right: b.Max.X, Bottom: b.Max.Y}
}

// Contains reports whether p lies inside the normalized rect. Points on the
// edge are inside.
func (r Rect) Contains(p Vec2) bool {
	n := r.Canon()
	return p.X >= n.Left && p.X <= n.Right && p.Y >= n.Top && p.Y <= n.Bottom
}

// Inflate grows the normalized rect by d on every side. A negative d shrinks
// it; the result may be inverted if the rect is smaller than 2*-d.
func (r Rect) Inflate(d float64) Rect {
	n := r.Canon()
	return Rect{Left: n.Left - d, Top: n.Top - d, Right: n.Right + d, Bottom: n.Bottom + d}
}

// Translate moves every edge by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Left: r.Left + d.X, Top: r.Top + d.Y, Right: r.Right + d.X, Bottom: r.Bottom + d.Y}
}

// ScaleAbout scales every edge about pivot by f, preserving orientation.
func (r Rect) ScaleAbout(pivot Vec2, f float64) Rect {
	return Rect{
		Left:   (r.Left-pivot.X)*f + pivot.X,
		Top:    (r.Top-pivot.Y)*f + pivot.Y,
		Right:  (r.Right-pivot.X)*f + pivot.X,
		Bottom: (r.Bottom-pivot.Y)*f + pivot.Y,
	}
}

// IsEmpty reports whether the rect has zero width or height.
func (r Rect) IsEmpty() bool {
	return r.Left == r.Right || r.Top == r.Bottom
}

// BoundsOf returns the normalized rect enclosing pts, or the zero Rect when
// pts is empty.
func BoundsOf(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		r = extendRect(r, p)
	}
	return r
}

// extendRect grows a normalized rect to include p.
func extendRect(r Rect, p Vec2) Rect {
	r.Left = math.Min(r.Left, p.X)
	r.Top = math.Min(r.Top, p.Y)
	r.Right = math.Max(r.Right, p.X)
	r.Bottom = math.Max(r.Bottom, p.Y)
	return r
}

// normalizeAngle maps radians into [0, 2π).
func normalizeAngle(radians float64) float64 {
	a := math.Mod(radians, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// argb builds a color from a packed 0xAARRGGBB value.
func argb(v uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

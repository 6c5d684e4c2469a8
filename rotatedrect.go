package scribble

import "math"

const (
	// DefaultTolerance is the handle hit radius in screen pixels.
	DefaultTolerance = 5.0
	// DefaultAxleOffset is the distance in screen pixels from the top edge
	// to the rotate handle.
	DefaultAxleOffset = 20.0
	// DefaultBandInflate is how far outside and inside the boundary, in
	// screen pixels, resize handles are detected.
	DefaultBandInflate = 20.0
)

// Edge names one side of a rect.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

// Corner names one corner of a rect.
type Corner uint8

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

// WorldTolerance converts a pixel tolerance into world units at the given
// viewport scale, so hit zones stay a constant size on screen.
func WorldTolerance(px, scale float64) float64 {
	if scale <= 0 {
		return px
	}
	return px / scale
}

// RotatedRect is a bounding rect turned by Rotation radians about its center.
// All queries rotate the point into the rect's unrotated local frame first.
type RotatedRect struct {
	Bounds   Rect
	Rotation float64
}

// WorldToLocal rotates p about the bounds center by -Rotation.
func (r RotatedRect) WorldToLocal(p Vec2) Vec2 {
	return p.RotateAround(r.Bounds.Center(), -r.Rotation)
}

// LocalToWorld rotates p about the bounds center by Rotation.
func (r RotatedRect) LocalToWorld(p Vec2) Vec2 {
	return p.RotateAround(r.Bounds.Center(), r.Rotation)
}

// Contains reports whether p lies inside the rotated rect. Inverted bounds
// are normalized first.
func (r RotatedRect) Contains(p Vec2) bool {
	return r.Bounds.Contains(r.WorldToLocal(p))
}

// EdgeSegment returns the endpoints of an edge in the local frame.
func (r RotatedRect) EdgeSegment(e Edge) (Vec2, Vec2) {
	b := r.Bounds
	switch e {
	case EdgeLeft:
		return b.TopLeft(), b.BottomLeft()
	case EdgeTop:
		return b.TopLeft(), b.TopRight()
	case EdgeRight:
		return b.TopRight(), b.BottomRight()
	default:
		return b.BottomLeft(), b.BottomRight()
	}
}

// CornerPoint returns a corner in the local frame.
func (r RotatedRect) CornerPoint(c Corner) Vec2 {
	b := r.Bounds
	switch c {
	case CornerTopLeft:
		return b.TopLeft()
	case CornerTopRight:
		return b.TopRight()
	case CornerBottomRight:
		return b.BottomRight()
	default:
		return b.BottomLeft()
	}
}

// NearEdge reports whether p is within tolerance of the edge segment. The
// distance is measured to the closest point on the segment, not the
// infinite line. A zero-length edge never matches.
func (r RotatedRect) NearEdge(p Vec2, e Edge, tolerance float64) bool {
	a, b := r.EdgeSegment(e)
	return segmentDistance(r.WorldToLocal(p), a, b) <= tolerance
}

// NearCorner reports whether p is within tolerance of the corner.
func (r RotatedRect) NearCorner(p Vec2, c Corner, tolerance float64) bool {
	return r.WorldToLocal(p).Dist(r.CornerPoint(c)) <= tolerance
}

// RotateHandle returns the rotate handle position in world space: axleOffset
// above the top center in the local frame, rotated back.
func (r RotatedRect) RotateHandle(axleOffset float64) Vec2 {
	local := r.Bounds.TopCenter().Sub(Vec2{Y: axleOffset})
	return r.LocalToWorld(local)
}

// NearRotateHandle reports whether p is within 2*tolerance of the rotate
// handle.
func (r RotatedRect) NearRotateHandle(p Vec2, axleOffset, tolerance float64) bool {
	return p.Dist(r.RotateHandle(axleOffset)) <= 2*tolerance
}

// InsideInteractionBand reports whether p is inside the bounds grown by
// inflate but outside the bounds shrunk by deflate. A rect too small to
// shrink has no inner region.
func (r RotatedRect) InsideInteractionBand(p Vec2, inflate, deflate float64) bool {
	local := r.WorldToLocal(p)
	if !r.Bounds.Inflate(inflate).Contains(local) {
		return false
	}
	inner := r.Bounds.Inflate(-deflate)
	if inner.Width() <= 0 || inner.Height() <= 0 {
		return true
	}
	return !inner.Contains(local)
}

// segmentDistance returns the distance from p to segment ab, or +Inf when
// the segment has zero length.
func segmentDistance(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return math.Inf(1)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Dist(a.Add(ab.Scale(t)))
}

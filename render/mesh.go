package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scribble"
)

// --- White pixel singleton (the renderer is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image. Every
// triangle samples it, so vertex colors alone decide the output color.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// mesh accumulates triangles for one DrawTriangles32 call. Triangles are
// drawn in the order they were added.
type mesh struct {
	verts []ebiten.Vertex
	inds  []uint32
}

func (m *mesh) reset() {
	m.verts = m.verts[:0]
	m.inds = m.inds[:0]
}

func (m *mesh) vertex(p scribble.Vec2, clr color.NRGBA, opacity float64) {
	m.verts = append(m.verts, ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255 * float32(opacity),
	})
}

// fan adds a fan-triangulated convex polygon. N points produce N-2
// triangles; fewer than 3 points add nothing.
func (m *mesh) fan(points []scribble.Vec2, clr color.NRGBA, opacity float64) {
	n := len(points)
	if n < 3 || clr.A == 0 {
		return
	}
	base := uint32(len(m.verts))
	for _, p := range points {
		m.vertex(p, clr, opacity)
	}
	// Vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		m.inds = append(m.inds, base, base+uint32(i+1), base+uint32(i+2))
	}
}

// line adds a quad of the given width centered on the segment. Capped lines
// extend half the width past both ends so joined segments leave no notch.
func (m *mesh) line(a, b scribble.Vec2, width float64, capped bool, clr color.NRGBA, opacity float64) {
	if clr.A == 0 || width <= 0 {
		return
	}
	halfW := width / 2
	nx, ny := perpendicular(a, b)
	if capped {
		// The left-perpendicular (nx, ny) turned back gives the direction a->b.
		dx, dy := ny*halfW, -nx*halfW
		a = scribble.Vec2{X: a.X - dx, Y: a.Y - dy}
		b = scribble.Vec2{X: b.X + dx, Y: b.Y + dy}
	}
	off := scribble.Vec2{X: nx * halfW, Y: ny * halfW}

	v := uint32(len(m.verts))
	m.vertex(a.Add(off), clr, opacity)
	m.vertex(a.Sub(off), clr, opacity)
	m.vertex(b.Add(off), clr, opacity)
	m.vertex(b.Sub(off), clr, opacity)
	// Two triangles per segment.
	m.inds = append(m.inds, v, v+1, v+2, v+1, v+3, v+2)
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b scribble.Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// dashSegments splits a polyline into the segments that are drawn under the
// given on/off intervals. The pattern phase carries across vertices. Nil or
// non-positive intervals yield every segment of the polyline.
func dashSegments(points []scribble.Vec2, closed bool, intervals []float64) []scribble.Segment {
	if len(points) < 2 {
		return nil
	}
	if closed {
		points = append(points[:len(points):len(points)], points[0])
	}
	if !validIntervals(intervals) {
		out := make([]scribble.Segment, 0, len(points)-1)
		for i := 1; i < len(points); i++ {
			out = append(out, scribble.Segment{From: points[i-1], To: points[i]})
		}
		return out
	}

	var out []scribble.Segment
	idx := 0
	remaining := intervals[0]
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		d := b.Sub(a)
		segLen := d.Len()
		pos := 0.0
		for pos < segLen {
			step := math.Min(remaining, segLen-pos)
			if idx%2 == 0 {
				out = append(out, scribble.Segment{
					From: a.Add(d.Scale(pos / segLen)),
					To:   a.Add(d.Scale((pos + step) / segLen)),
				})
			}
			pos += step
			remaining -= step
			if remaining <= 0 {
				idx = (idx + 1) % len(intervals)
				remaining = intervals[idx]
			}
		}
	}
	return out
}

func validIntervals(intervals []float64) bool {
	if len(intervals) == 0 {
		return false
	}
	for _, v := range intervals {
		if v <= 0 {
			return false
		}
	}
	return true
}

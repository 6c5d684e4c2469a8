package scribble

import (
	"image/color"
	"math"
)

// Screen-pixel sizes used when building draw parameters.
const (
	roundedRectRadius    = 10.0
	roundedDiamondRadius = 5.0
	arrowHeadLength      = 16.0
	arrowHeadAngle       = math.Pi / 6
	hatchSpacing         = 4.0
	gridSpacing          = 40.0
	selectionInflate     = 2.0
	handleHalfSize       = 3.0
	selectionStroke      = 1.0
	ellipseSegments      = 48
	cornerSegments       = 6
)

// SelectionColor is the color of the selection boundary and its handles.
var SelectionColor = argb(0xff818cf8)

// GridColor is the color of background grid lines.
var GridColor = argb(0x33ffffff)

// Path is a polyline in screen space.
type Path struct {
	Points []Vec2
	Closed bool
}

// Segment is a single line in screen space.
type Segment struct {
	From, To Vec2
}

// ShapeParams are the resolved screen-space parameters for drawing one item.
type ShapeParams struct {
	ItemID string
	Kind   ShapeKind
	// Outline is the stroked path. For closed kinds it is also the fill
	// polygon.
	Outline Path
	// Extra holds additional stroked segments, such as arrow barbs.
	Extra []Segment
	// Hatch holds fill lines for hatched patterns, already clipped to the
	// shape.
	Hatch       []Segment
	Pattern     FillPattern
	FillColor   color.NRGBA
	StrokeColor color.NRGBA
	StrokeWidth float64
	// Dash is the on/off interval list in pixels, or nil for solid.
	Dash    []float64
	Opacity float64
}

// SelectionParams are the screen-space selection chrome of the selected
// item.
type SelectionParams struct {
	Boundary     Path
	Handles      []Path
	Axle         Segment
	RotateHandle Path
	StrokeWidth  float64
}

// Frame is everything a renderer needs for one frame, in screen space.
type Frame struct {
	Grid      []Segment
	Shapes    []ShapeParams
	Preview   *ShapeParams
	Selection *SelectionParams
}

// BuildFrame resolves a document into draw parameters. preview, if non-nil,
// is an item being drawn that is not yet in the document.
func BuildFrame(doc Document, vp *Viewport, preview *CanvasItem, axleOffset float64) Frame {
	var f Frame
	if vp.ShowGrid {
		f.Grid = GridLines(vp)
	}
	f.Shapes = make([]ShapeParams, 0, len(doc.Items))
	for _, it := range doc.Items {
		f.Shapes = append(f.Shapes, ShapeFor(it, vp))
	}
	if preview != nil {
		p := ShapeFor(*preview, vp)
		f.Preview = &p
	}
	if sel, ok := doc.Selected(); ok && sel.Kind.HasBoundary() {
		s := SelectionFor(sel, vp, axleOffset)
		f.Selection = &s
	}
	return f
}

// Frame builds draw parameters for the current document, including the
// shape being drawn.
func (e *Engine) Frame() Frame {
	var preview *CanvasItem
	if e.interaction.Kind == Drawing {
		if it, ok := e.drawnItem(); ok {
			preview = &it
		}
	}
	return BuildFrame(e.board.doc, e.viewport, preview, e.hit.AxleOffset)
}

// ShapeFor resolves one item into screen-space draw parameters.
func ShapeFor(it CanvasItem, vp *Viewport) ShapeParams {
	m := ItemTransform(vp, it)
	// px converts screen pixels into the item's own units.
	px := itemPixel(vp, it)
	n := it.Bounds.Canon()

	sp := ShapeParams{
		ItemID:      it.ID,
		Kind:        it.Kind,
		StrokeColor: it.Style.Stroke.Foreground(),
		FillColor:   it.Style.Fill.Background(),
		StrokeWidth: it.Style.Width.Pixels(),
		Dash:        it.Style.Dash.Intervals(),
		Opacity:     it.Style.Opacity,
	}
	if it.Kind.HasFill() {
		sp.Pattern = it.Style.Pattern
	}

	switch it.Kind {
	case ShapeRectangle:
		pts := n.Corners()
		sp.Outline = Path{Points: pts[:], Closed: true}
		if it.Style.Edges == EdgesRounded {
			sp.Outline.Points = roundPolygon(pts[:], roundedRectRadius*px)
		}
	case ShapeDiamond:
		pts := []Vec2{n.TopCenter(), n.CenterRight(), n.BottomCenter(), n.CenterLeft()}
		sp.Outline = Path{Points: pts, Closed: true}
		if it.Style.Edges == EdgesRounded {
			sp.Outline.Points = roundPolygon(pts, roundedDiamondRadius*px)
		}
	case ShapeEllipse:
		sp.Outline = Path{Points: ellipsePoints(n), Closed: true}
	case ShapeLine:
		sp.Outline = Path{Points: []Vec2{it.Bounds.TopLeft(), it.Bounds.BottomRight()}}
	case ShapeArrow:
		start, end := it.Bounds.TopLeft(), it.Bounds.BottomRight()
		sp.Outline = Path{Points: []Vec2{start, end}}
		sp.Extra = arrowBarbs(start, end, arrowHeadLength*px)
	case ShapeFreehand:
		sp.Outline = Path{Points: it.FreehandWorldPoints()}
	}

	switch sp.Pattern {
	case FillHatch:
		sp.Hatch = hatchLines(it.Kind, n, hatchSpacing*px, false)
	case FillCrossHatch:
		sp.Hatch = append(hatchLines(it.Kind, n, hatchSpacing*px, false),
			hatchLines(it.Kind, n, hatchSpacing*px, true)...)
	}

	transformPoints(m, sp.Outline.Points)
	for i := range sp.Extra {
		sp.Extra[i] = Segment{From: transformPoint(m, sp.Extra[i].From), To: transformPoint(m, sp.Extra[i].To)}
	}
	for i := range sp.Hatch {
		sp.Hatch[i] = Segment{From: transformPoint(m, sp.Hatch[i].From), To: transformPoint(m, sp.Hatch[i].To)}
	}
	return sp
}

// SelectionFor builds the boundary, the eight resize handles and the rotate
// handle for a selected item.
func SelectionFor(it CanvasItem, vp *Viewport, axleOffset float64) SelectionParams {
	frame := ScreenFrame(vp, it)
	outer := frame.Bounds.Inflate(selectionInflate)
	corners := outer.Corners()
	boundary := make([]Vec2, 4)
	for i, c := range corners {
		boundary[i] = frame.LocalToWorld(c)
	}

	anchors := []Vec2{
		outer.TopLeft(), outer.TopCenter(), outer.TopRight(), outer.CenterRight(),
		outer.BottomRight(), outer.BottomCenter(), outer.BottomLeft(), outer.CenterLeft(),
	}
	handles := make([]Path, len(anchors))
	for i, a := range anchors {
		handles[i] = handleBox(frame, a)
	}

	top := frame.LocalToWorld(frame.Bounds.TopCenter())
	knob := frame.RotateHandle(axleOffset)
	return SelectionParams{
		Boundary:     Path{Points: boundary, Closed: true},
		Handles:      handles,
		Axle:         Segment{From: top, To: knob},
		RotateHandle: handleBox(frame, frame.WorldToLocal(knob)),
		StrokeWidth:  selectionStroke,
	}
}

// handleBox returns a square centered on a local-frame point, rotated with
// the frame.
func handleBox(frame RotatedRect, local Vec2) Path {
	box := Rect{
		Left: local.X - handleHalfSize, Top: local.Y - handleHalfSize,
		Right: local.X + handleHalfSize, Bottom: local.Y + handleHalfSize,
	}
	pts := box.Corners()
	out := make([]Vec2, 4)
	for i, p := range pts {
		out[i] = frame.LocalToWorld(p)
	}
	return Path{Points: out, Closed: true}
}

// GridLines returns screen-space grid lines covering the viewport. Lines
// sit on world multiples of the grid spacing so they follow pan and zoom.
func GridLines(vp *Viewport) []Segment {
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil
	}
	tl := vp.ToWorld(Vec2{})
	br := vp.ToWorld(Vec2{X: vp.Width, Y: vp.Height})
	var out []Segment
	for k := math.Ceil(tl.X / gridSpacing); k*gridSpacing <= br.X; k++ {
		x := vp.ToScreen(Vec2{X: k * gridSpacing}).X
		out = append(out, Segment{From: Vec2{X: x}, To: Vec2{X: x, Y: vp.Height}})
	}
	for k := math.Ceil(tl.Y / gridSpacing); k*gridSpacing <= br.Y; k++ {
		y := vp.ToScreen(Vec2{Y: k * gridSpacing}).Y
		out = append(out, Segment{From: Vec2{Y: y}, To: Vec2{X: vp.Width, Y: y}})
	}
	return out
}

// itemPixel returns the size of one screen pixel in the item's units.
func itemPixel(vp *Viewport, it CanvasItem) float64 {
	ls := it.LocalScale
	if ls <= 0 {
		ls = 1
	}
	return ls / vp.Scale
}

func ellipsePoints(n Rect) []Vec2 {
	c := n.Center()
	rx, ry := n.Width()/2, n.Height()/2
	pts := make([]Vec2, ellipseSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / ellipseSegments)
		pts[i] = Vec2{X: c.X + rx*cos, Y: c.Y + ry*sin}
	}
	return pts
}

// roundPolygon replaces each vertex of a closed polygon with a quadratic
// curve starting and ending r along the adjacent edges. r is clamped to
// half the shorter adjacent edge.
func roundPolygon(pts []Vec2, r float64) []Vec2 {
	n := len(pts)
	out := make([]Vec2, 0, n*(cornerSegments+1))
	for i := range pts {
		prev, cur, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
		in, outv := prev.Sub(cur), next.Sub(cur)
		rr := math.Min(r, math.Min(in.Len(), outv.Len())/2)
		if rr <= 0 {
			out = append(out, cur)
			continue
		}
		a := cur.Add(in.Scale(rr / in.Len()))
		b := cur.Add(outv.Scale(rr / outv.Len()))
		for s := 0; s <= cornerSegments; s++ {
			t := float64(s) / cornerSegments
			u := 1 - t
			out = append(out, a.Scale(u*u).Add(cur.Scale(2*u*t)).Add(b.Scale(t*t)))
		}
	}
	return out
}

// arrowBarbs returns the two head lines at end, each headLen long (capped
// at the shaft length) and turned 30° off the shaft.
func arrowBarbs(start, end Vec2, headLen float64) []Segment {
	shaft := start.Sub(end)
	l := shaft.Len()
	if l == 0 {
		return nil
	}
	tip := end.Add(shaft.Scale(math.Min(headLen, l) / l))
	return []Segment{
		{From: end, To: tip.RotateAround(end, arrowHeadAngle)},
		{From: end, To: tip.RotateAround(end, -arrowHeadAngle)},
	}
}

// hatchLines returns fill lines spaced evenly across n, clipped to the
// shape's outline. Vertical lines are built by transposing the rect.
func hatchLines(kind ShapeKind, n Rect, spacing float64, vertical bool) []Segment {
	if spacing <= 0 {
		return nil
	}
	if vertical {
		n = Rect{Left: n.Top, Top: n.Left, Right: n.Bottom, Bottom: n.Right}
	}
	var out []Segment
	for y := n.Top + spacing; y < n.Bottom; y += spacing {
		lo, hi, ok := spanAt(kind, n, y)
		if !ok {
			continue
		}
		s := Segment{From: Vec2{X: lo, Y: y}, To: Vec2{X: hi, Y: y}}
		if vertical {
			s = Segment{From: Vec2{X: y, Y: lo}, To: Vec2{X: y, Y: hi}}
		}
		out = append(out, s)
	}
	return out
}

// spanAt returns the horizontal extent of a shape at height y.
func spanAt(kind ShapeKind, n Rect, y float64) (lo, hi float64, ok bool) {
	c := n.Center()
	hw, hh := n.Width()/2, n.Height()/2
	if hh <= 0 {
		return 0, 0, false
	}
	dy := math.Abs(y-c.Y) / hh
	if dy > 1 {
		return 0, 0, false
	}
	switch kind {
	case ShapeEllipse:
		w := hw * math.Sqrt(1-dy*dy)
		return c.X - w, c.X + w, w > 0
	case ShapeDiamond:
		w := hw * (1 - dy)
		return c.X - w, c.X + w, w > 0
	default:
		return n.Left, n.Right, hw > 0
	}
}

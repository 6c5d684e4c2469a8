// Package render draws scribble frames with Ebitengine.
//
// Everything in a frame is resolved to screen space by scribble.BuildFrame,
// so the renderer only turns paths and segments into triangles. All
// geometry for a frame is submitted in painter order through a single
// DrawTriangles32 call sampling a shared white pixel.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scribble"
)

const (
	gridWidth  = 1.0
	hatchWidth = 1.0
)

// Background is the default canvas clear color.
var Background = color.NRGBA{R: 0x12, G: 0x12, B: 0x14, A: 0xff}

// Renderer draws scribble frames. Its buffers are reused between frames, so
// a single Renderer should be kept for the life of the window.
type Renderer struct {
	// Background fills the target before drawing. A nil Background leaves
	// the target as is.
	Background color.Color
	// AntiAlias smooths triangle edges.
	AntiAlias bool

	mesh mesh
}

// New creates a Renderer with the default background and anti-aliasing on.
func New() *Renderer {
	return &Renderer{Background: Background, AntiAlias: true}
}

// Draw renders f onto dst.
func (r *Renderer) Draw(dst *ebiten.Image, f scribble.Frame) {
	if r.Background != nil {
		dst.Fill(r.Background)
	}
	r.build(f)
	if len(r.mesh.inds) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.AntiAlias = r.AntiAlias
	dst.DrawTriangles32(r.mesh.verts, r.mesh.inds, ensureWhitePixel(), &triOp)
}

// build fills the mesh with the whole frame: grid, shapes in document
// order, the preview, and the selection chrome on top.
func (r *Renderer) build(f scribble.Frame) {
	r.mesh.reset()
	for _, s := range f.Grid {
		r.mesh.line(s.From, s.To, gridWidth, false, scribble.GridColor, 1)
	}
	for i := range f.Shapes {
		r.shape(&f.Shapes[i])
	}
	if f.Preview != nil {
		r.shape(f.Preview)
	}
	if f.Selection != nil {
		r.selection(f.Selection)
	}
}

func (r *Renderer) shape(sp *scribble.ShapeParams) {
	if sp.Outline.Closed && sp.Pattern == scribble.FillSolid {
		r.mesh.fan(sp.Outline.Points, sp.FillColor, sp.Opacity)
	}
	for _, h := range sp.Hatch {
		r.mesh.line(h.From, h.To, hatchWidth, false, sp.FillColor, sp.Opacity)
	}
	solid := sp.Dash == nil
	for _, s := range dashSegments(sp.Outline.Points, sp.Outline.Closed, sp.Dash) {
		r.mesh.line(s.From, s.To, sp.StrokeWidth, solid, sp.StrokeColor, sp.Opacity)
	}
	for _, s := range sp.Extra {
		r.mesh.line(s.From, s.To, sp.StrokeWidth, true, sp.StrokeColor, sp.Opacity)
	}
}

func (r *Renderer) selection(sel *scribble.SelectionParams) {
	c := scribble.SelectionColor
	w := sel.StrokeWidth
	r.outline(sel.Boundary, w, c)
	r.mesh.line(sel.Axle.From, sel.Axle.To, w, false, c, 1)
	for _, h := range sel.Handles {
		r.handle(h, w, c)
	}
	r.handle(sel.RotateHandle, w, c)
}

// handle draws a handle box filled with the background so the boundary
// does not show through.
func (r *Renderer) handle(p scribble.Path, w float64, c color.NRGBA) {
	if r.Background != nil {
		r.mesh.fan(p.Points, color.NRGBAModel.Convert(r.Background).(color.NRGBA), 1)
	}
	r.outline(p, w, c)
}

func (r *Renderer) outline(p scribble.Path, w float64, c color.NRGBA) {
	for _, s := range dashSegments(p.Points, p.Closed, nil) {
		r.mesh.line(s.From, s.To, w, true, c, 1)
	}
}

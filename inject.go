package scribble

// InjectClick presses and releases at the same screen position with the
// given tool.
func (e *Engine) InjectClick(pos Vec2, tool ShapeKind) {
	e.HandlePointerDown(pos, tool)
	e.HandlePointerUp(pos)
}

// InjectDrag runs a full drag: a press at from, moves linearly interpolated
// over steps intermediate positions, and a release at to. Screen
// coordinates are used, identical to real pointer input.
func (e *Engine) InjectDrag(from, to Vec2, steps int, tool ShapeKind) {
	if steps < 0 {
		steps = 0
	}
	e.HandlePointerDown(from, tool)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.HandlePointerMove(from.Add(to.Sub(from).Scale(t)))
	}
	e.HandlePointerMove(to)
	e.HandlePointerUp(to)
}

// InjectStroke runs a press, a move through every point, and a release at
// the last point. It is meant for freehand capture.
func (e *Engine) InjectStroke(points []Vec2, tool ShapeKind) {
	if len(points) == 0 {
		return
	}
	e.HandlePointerDown(points[0], tool)
	for _, p := range points[1:] {
		e.HandlePointerMove(p)
	}
	e.HandlePointerUp(points[len(points)-1])
}

package scribble

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	Tool   string  `json:"tool,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	Points []Vec2  `json:"points,omitempty"`
	Amount float64 `json:"amount,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true, "drag": true,
	"stroke": true, "cancel": true, "undo": true, "redo": true, "tool": true,
	"zoomIn": true, "zoomOut": true, "resetZoom": true, "zoomBy": true,
	"pan": true, "scroll": true, "grid": true, "wait": true,
}

// ScriptRunner replays a gesture script against an Engine, one step per
// call to Step. Use it to drive an Engine deterministically from tests or
// from a frame loop.
type ScriptRunner struct {
	steps     []scriptStep
	tools     []ShapeKind
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script such as
//
//	{"steps": [
//	  {"action": "drag", "tool": "rectangle", "fromX": 10, "fromY": 10, "toX": 90, "toY": 60},
//	  {"action": "undo"}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	tools := make([]ShapeKind, len(script.Steps))
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		tools[i] = ShapeSelect
		if st.Tool != "" {
			k, ok := ParseShapeKind(st.Tool)
			if !ok {
				return nil, fmt.Errorf("parse gesture script: step %d: unknown tool %q", i, st.Tool)
			}
			tools[i] = k
		}
	}
	return &ScriptRunner{steps: script.Steps, tools: tools}, nil
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step runs the next step. A "wait" step idles for its frame count.
func (r *ScriptRunner) Step(e *Engine) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	tool := r.tools[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		e.HandlePointerDown(Vec2{X: st.X, Y: st.Y}, tool)
	case "move":
		e.HandlePointerMove(Vec2{X: st.X, Y: st.Y})
	case "release":
		e.HandlePointerUp(Vec2{X: st.X, Y: st.Y})
	case "click":
		e.InjectClick(Vec2{X: st.X, Y: st.Y}, tool)
	case "drag":
		e.InjectDrag(Vec2{X: st.FromX, Y: st.FromY}, Vec2{X: st.ToX, Y: st.ToY}, st.Steps, tool)
	case "stroke":
		e.InjectStroke(st.Points, tool)
	case "cancel":
		e.Cancel()
	case "undo":
		e.Undo()
	case "redo":
		e.Redo()
	case "tool":
		e.SelectTool(tool)
	case "zoomIn":
		e.viewport.ZoomIn()
	case "zoomOut":
		e.viewport.ZoomOut()
	case "resetZoom":
		e.viewport.ResetZoom()
	case "zoomBy":
		e.viewport.ZoomBy(st.Amount)
	case "pan":
		e.viewport.PanBy(Vec2{X: st.X, Y: st.Y})
	case "scroll":
		e.HandleScroll(Vec2{X: st.X, Y: st.Y})
	case "grid":
		e.viewport.ToggleGrid()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// Run executes every remaining step at once.
func (r *ScriptRunner) Run(e *Engine) {
	for !r.done {
		r.Step(e)
	}
}

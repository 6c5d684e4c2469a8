package scribble

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	os.Stderr = oldStderr
	return <-done
}

func TestDebugModeToggle(t *testing.T) {
	e := newTestEngine()
	if e.DebugMode() {
		t.Fatal("debug mode should default to off")
	}
	e.SetDebugMode(true)
	if !e.DebugMode() {
		t.Error("SetDebugMode(true) had no effect")
	}

	cfg := DefaultEngineConfig()
	cfg.Debug = true
	if !NewEngine(cfg).DebugMode() {
		t.Error("EngineConfig.Debug should enable debug mode")
	}
}

func TestDebugModeLogsGestures(t *testing.T) {
	e := newTestEngine()
	e.SetDebugMode(true)

	output := captureStderr(t, func() {
		e.InjectDrag(Vec2{X: 10, Y: 10}, Vec2{X: 60, Y: 60}, 1, ShapeRectangle)
		e.HandlePointerUp(Vec2{X: 60, Y: 60})
		e.InjectClick(Vec2{X: 5, Y: 5}, ShapeRectangle)
	})

	for _, want := range []string{"[scribble] press at", "added rectangle item_", "release at", "discarded empty rectangle"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in stderr, got: %q", want, output)
		}
	}
}

func TestReleaseModeIsSilent(t *testing.T) {
	e := newTestEngine()
	output := captureStderr(t, func() {
		e.InjectDrag(Vec2{X: 10, Y: 10}, Vec2{X: 60, Y: 60}, 1, ShapeRectangle)
		e.Cancel()
	})
	if output != "" {
		t.Errorf("expected no output with debug off, got: %q", output)
	}
}

func TestDebugModeHistoryDepthWarning(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < debugMaxHistoryDepth; i++ {
		e.Board().AddItem(ShapeRectangle, Rect{Right: 1, Bottom: 1}, DefaultStyle())
	}
	e.SetDebugMode(true)

	output := captureStderr(t, func() {
		e.InjectDrag(Vec2{X: 10, Y: 10}, Vec2{X: 60, Y: 60}, 0, ShapeRectangle)
	})
	if !strings.Contains(output, "warning: undo depth") {
		t.Errorf("expected undo depth warning in stderr, got: %q", output)
	}
}

func TestDebugModeNoWarningWithLimit(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.HistoryLimit = debugMaxHistoryDepth * 2
	e := NewEngine(cfg)
	for i := 0; i < debugMaxHistoryDepth; i++ {
		e.Board().AddItem(ShapeRectangle, Rect{Right: 1, Bottom: 1}, DefaultStyle())
	}
	e.SetDebugMode(true)

	output := captureStderr(t, func() {
		e.InjectDrag(Vec2{X: 10, Y: 10}, Vec2{X: 60, Y: 60}, 0, ShapeRectangle)
	})
	if strings.Contains(output, "warning") {
		t.Errorf("unexpected warning with a history limit: %q", output)
	}
}

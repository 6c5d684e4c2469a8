package scribble

import "testing"

func ids(d Document) []string {
	out := make([]string, len(d.Items))
	for i, it := range d.Items {
		out[i] = it.ID
	}
	return out
}

func sameIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestBoardAddSelectsAndRecords(t *testing.T) {
	b := NewBoard()
	id := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	if err := ValidateItemID(id); err != nil {
		t.Fatalf("AddItem returned bad id: %v", err)
	}
	d := b.Document()
	if d.SelectedID != id || len(d.Items) != 1 {
		t.Fatalf("document = %+v", d)
	}
	if d.Items[0].LocalScale != 1 {
		t.Errorf("LocalScale = %v, want 1", d.Items[0].LocalScale)
	}
	if !b.CanUndo() || b.CanRedo() {
		t.Error("adding should enable undo only")
	}
}

func TestBoardUndoRedoOrder(t *testing.T) {
	b := NewBoard()
	a := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	c := b.AddItem(ShapeEllipse, Rect{Left: 20, Right: 30, Bottom: 10}, DefaultStyle())

	b.Undo()
	if got := ids(b.Document()); !sameIDs(got, []string{a}) {
		t.Fatalf("after one undo ids = %v, want [%s]", got, a)
	}
	b.Undo()
	if got := ids(b.Document()); len(got) != 0 {
		t.Fatalf("after two undos ids = %v, want none", got)
	}
	if b.CanUndo() {
		t.Error("CanUndo after undoing everything")
	}
	b.Undo()

	b.Redo()
	b.Redo()
	if got := ids(b.Document()); !sameIDs(got, []string{a, c}) {
		t.Errorf("after two redos ids = %v, want [%s %s]", got, a, c)
	}
	if b.CanRedo() {
		t.Error("CanRedo after redoing everything")
	}
}

func TestBoardNewMutationClearsRedo(t *testing.T) {
	b := NewBoard()
	b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	b.Undo()
	if !b.CanRedo() {
		t.Fatal("CanRedo = false after undo")
	}
	b.AddItem(ShapeDiamond, Rect{Right: 5, Bottom: 5}, DefaultStyle())
	if b.CanRedo() {
		t.Error("new mutation should clear redo")
	}
}

func TestBoardUndoDoesNotAlias(t *testing.T) {
	b := NewBoard()
	id := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	b.UpdateItemBounds(id, Rect{Right: 50, Bottom: 50})
	b.UpdateItemBounds(id, Rect{Right: 80, Bottom: 80})

	b.Undo()
	if it, _ := b.Document().Item(id); it.Bounds != (Rect{Right: 50, Bottom: 50}) {
		t.Errorf("after undo bounds = %v", it.Bounds)
	}
	b.Undo()
	if it, _ := b.Document().Item(id); it.Bounds != (Rect{Right: 10, Bottom: 10}) {
		t.Errorf("after second undo bounds = %v", it.Bounds)
	}
	b.Redo()
	b.Redo()
	if it, _ := b.Document().Item(id); it.Bounds != (Rect{Right: 80, Bottom: 80}) {
		t.Errorf("after redo bounds = %v", it.Bounds)
	}
}

func TestBoardDocumentIsACopy(t *testing.T) {
	b := NewBoard()
	id := b.InsertItem(CanvasItem{Kind: ShapeFreehand, Bounds: Rect{Right: 10, Bottom: 10}, FreehandPoints: []Vec2{{X: 1, Y: 1}}})
	d := b.Document()
	d.Items[0].Bounds = Rect{}
	d.Items[0].FreehandPoints[0] = Vec2{}
	it, _ := b.Document().Item(id)
	if it.Bounds != (Rect{Right: 10, Bottom: 10}) || it.FreehandPoints[0] != (Vec2{X: 1, Y: 1}) {
		t.Errorf("board changed through a returned document: %+v", it)
	}
}

func TestBoardInsertRejectsBadIDs(t *testing.T) {
	b := NewBoard()
	id := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	b.Deselect()

	tests := []struct {
		name string
		id   string
	}{
		{"duplicate", id},
		{"malformed", "item_123"},
	}
	for _, tt := range tests {
		got := b.InsertItem(CanvasItem{ID: tt.id, Kind: ShapeEllipse, Bounds: Rect{Right: 5, Bottom: 5}})
		if got != "" {
			t.Errorf("%s: InsertItem = %q, want \"\"", tt.name, got)
		}
	}
	d := b.Document()
	if !sameIDs(ids(d), []string{id}) {
		t.Errorf("ids = %v, want [%s]", ids(d), id)
	}
	if d.SelectedID != "" {
		t.Errorf("SelectedID = %q, rejected insert changed the selection", d.SelectedID)
	}
	if undo, _ := b.History().Depth(); undo != 1 {
		t.Errorf("undo depth = %d, want 1", undo)
	}

	fresh := NewItemID()
	if got := b.InsertItem(CanvasItem{ID: fresh, Kind: ShapeEllipse, Bounds: Rect{Right: 5, Bottom: 5}}); got != fresh {
		t.Errorf("InsertItem with a new valid ID = %q, want %q", got, fresh)
	}
}

func TestBoardSelectionIsNotRecorded(t *testing.T) {
	b := NewBoard()
	id := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	b.Deselect()
	b.SelectItem(id)
	b.SelectItem("missing")
	if undo, _ := b.History().Depth(); undo != 1 {
		t.Errorf("undo depth = %d, want 1", undo)
	}
	if b.Document().SelectedID != id {
		t.Error("unknown id changed the selection")
	}
}

func TestBoardUnknownIDsIgnored(t *testing.T) {
	b := NewBoard()
	b.UpdateItemBounds("missing", Rect{Right: 1, Bottom: 1})
	b.UpdateItemRotation("missing", 1)
	b.UpdateSelectedStyle(DefaultStyle())
	if b.CanUndo() {
		t.Error("no-op updates should not create history")
	}
}

func TestBoardUpdateSelectedStyle(t *testing.T) {
	b := NewBoard()
	id := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	style := DefaultStyle().WithFillColor(ColorRed)
	b.UpdateSelectedStyle(style)
	if it, _ := b.Document().Item(id); it.Style != style {
		t.Errorf("Style = %+v, want %+v", it.Style, style)
	}
	b.Deselect()
	b.UpdateSelectedStyle(DefaultStyle())
	if undo, _ := b.History().Depth(); undo != 2 {
		t.Errorf("undo depth = %d, want 2", undo)
	}
}

func TestBoardUndoKeepsSurvivingSelection(t *testing.T) {
	b := NewBoard()
	a := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	c := b.AddItem(ShapeRectangle, Rect{Left: 20, Right: 30, Bottom: 10}, DefaultStyle())
	b.UpdateItemRotation(c, 1)

	b.SelectItem(a)
	b.Undo()
	if got := b.Document().SelectedID; got != a {
		t.Errorf("SelectedID = %q, want %q", got, a)
	}
	b.SelectItem(c)
	b.Undo()
	if got := b.Document().SelectedID; got != "" {
		t.Errorf("SelectedID = %q, want cleared after its item was undone", got)
	}
}

func TestHistoryLimit(t *testing.T) {
	b := NewBoard()
	b.History().Limit = 3
	for i := 0; i < 5; i++ {
		b.AddItem(ShapeRectangle, Rect{Right: float64(i + 1), Bottom: 1}, DefaultStyle())
	}
	if undo, _ := b.History().Depth(); undo != 3 {
		t.Fatalf("undo depth = %d, want 3", undo)
	}
	for b.CanUndo() {
		b.Undo()
	}
	if got := len(b.Document().Items); got != 2 {
		t.Errorf("oldest reachable document has %d items, want 2", got)
	}
}

func TestBoardGestureCommit(t *testing.T) {
	b := NewBoard()
	id := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())

	b.beginGesture()
	for i := 1; i <= 3; i++ {
		b.setLive(id, func(it *CanvasItem) { it.Bounds.Right = 10 + float64(i) })
	}
	if !b.commitGesture() {
		t.Fatal("commitGesture = false after changes")
	}
	if undo, _ := b.History().Depth(); undo != 2 {
		t.Errorf("undo depth = %d, want 2", undo)
	}
	b.Undo()
	if it, _ := b.Document().Item(id); it.Bounds.Right != 10 {
		t.Errorf("undo restored Right = %v, want 10", it.Bounds.Right)
	}
}

func TestBoardGestureWithoutChange(t *testing.T) {
	b := NewBoard()
	id := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	b.Deselect()

	b.beginGesture()
	b.SelectItem(id)
	if b.commitGesture() {
		t.Error("selection alone should not commit history")
	}
	if undo, _ := b.History().Depth(); undo != 1 {
		t.Errorf("undo depth = %d, want 1", undo)
	}
}

func TestBoardGestureCancel(t *testing.T) {
	b := NewBoard()
	id := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	b.beginGesture()
	b.setLive(id, func(it *CanvasItem) { it.Rotation = 2 })
	b.cancelGesture()
	if it, _ := b.Document().Item(id); it.Rotation != 0 {
		t.Errorf("Rotation = %v after cancel", it.Rotation)
	}
	if b.inGesture() {
		t.Error("gesture still open after cancel")
	}
}

func TestBoardUndoDuringGesture(t *testing.T) {
	b := NewBoard()
	id := b.AddItem(ShapeRectangle, Rect{Right: 10, Bottom: 10}, DefaultStyle())
	b.beginGesture()
	b.setLive(id, func(it *CanvasItem) { it.Bounds.Right = 99 })
	b.Undo()
	if b.inGesture() {
		t.Error("undo should end the gesture")
	}
	if got := len(b.Document().Items); got != 0 {
		t.Errorf("items = %d, want 0", got)
	}
}

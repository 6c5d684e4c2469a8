package scribble

// Document is the ordered item collection plus the current selection.
// Later items draw on top of earlier ones.
type Document struct {
	Items      []CanvasItem
	SelectedID string
}

// Clone returns a deep copy of d.
func (d Document) Clone() Document {
	out := Document{SelectedID: d.SelectedID}
	if d.Items != nil {
		out.Items = make([]CanvasItem, len(d.Items))
		for i, it := range d.Items {
			out.Items[i] = it.clone()
		}
	}
	return out
}

// Index returns the position of the item with id, or -1.
func (d Document) Index(id string) int {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Item returns the item with id.
func (d Document) Item(id string) (CanvasItem, bool) {
	if i := d.Index(id); i >= 0 {
		return d.Items[i], true
	}
	return CanvasItem{}, false
}

// Selected returns the selected item, if any.
func (d Document) Selected() (CanvasItem, bool) {
	if d.SelectedID == "" {
		return CanvasItem{}, false
	}
	return d.Item(d.SelectedID)
}

// sameContent compares items only; selection is not document content.
func (d Document) sameContent(o Document) bool {
	if len(d.Items) != len(o.Items) {
		return false
	}
	for i := range d.Items {
		if !d.Items[i].equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// History holds the undo and redo stacks of document snapshots.
type History struct {
	undo []Document
	redo []Document
	// Limit caps the undo depth; 0 means unlimited.
	Limit int
}

// push records a pre-mutation snapshot and clears the redo stack.
func (h *History) push(d Document) {
	h.undo = append(h.undo, d)
	if h.Limit > 0 && len(h.undo) > h.Limit {
		drop := len(h.undo) - h.Limit
		copy(h.undo, h.undo[drop:])
		for i := len(h.undo) - drop; i < len(h.undo); i++ {
			h.undo[i] = Document{}
		}
		h.undo = h.undo[:len(h.undo)-drop]
	}
	h.clearRedo()
}

func (h *History) clearRedo() {
	for i := range h.redo {
		h.redo[i] = Document{}
	}
	h.redo = h.redo[:0]
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (h *History) Depth() (undo, redo int) { return len(h.undo), len(h.redo) }

func popDocument(stack *[]Document) Document {
	s := *stack
	d := s[len(s)-1]
	s[len(s)-1] = Document{}
	*stack = s[:len(s)-1]
	return d
}

// Board owns a Document and its History. Every mutation goes through its
// methods. Each mutating call other than Undo and Redo pushes the
// pre-mutation document and clears the redo stack; selection changes are
// not recorded.
type Board struct {
	doc     Document
	history History

	// gesture holds the pre-press snapshot while a drag is in progress.
	gesture *Document
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Document returns a deep copy of the current document.
func (b *Board) Document() Document {
	return b.doc.Clone()
}

// History exposes the undo/redo stacks, e.g. to set Limit.
func (b *Board) History() *History {
	return &b.history
}

// CanUndo reports whether Undo would change the document.
func (b *Board) CanUndo() bool { return b.history.CanUndo() }

// CanRedo reports whether Redo would change the document.
func (b *Board) CanRedo() bool { return b.history.CanRedo() }

// AddItem appends a new item captured at scale 1, selects it and returns
// its ID.
func (b *Board) AddItem(kind ShapeKind, bounds Rect, style Style) string {
	return b.InsertItem(CanvasItem{Kind: kind, Bounds: bounds, Style: style, LocalScale: 1})
}

// InsertItem appends item, assigning an ID when it has none, selects it and
// returns its ID. An item whose ID is malformed or already on the board is
// ignored and "" is returned.
func (b *Board) InsertItem(item CanvasItem) string {
	if item.ID == "" {
		item.ID = NewItemID()
	} else if ValidateItemID(item.ID) != nil || b.doc.Index(item.ID) >= 0 {
		return ""
	}
	if item.LocalScale <= 0 {
		item.LocalScale = 1
	}
	b.record()
	b.doc.Items = append(b.doc.Items, item.clone())
	b.doc.SelectedID = item.ID
	return item.ID
}

// SelectItem selects the item with id. Unknown IDs are ignored.
func (b *Board) SelectItem(id string) {
	if b.doc.Index(id) >= 0 {
		b.doc.SelectedID = id
	}
}

// Deselect clears the selection.
func (b *Board) Deselect() {
	b.doc.SelectedID = ""
}

// UpdateItemBounds replaces an item's bounds. Unknown IDs are ignored.
func (b *Board) UpdateItemBounds(id string, bounds Rect) {
	i := b.doc.Index(id)
	if i < 0 {
		return
	}
	b.record()
	b.doc.Items[i].Bounds = bounds
}

// UpdateItemRotation replaces an item's rotation. Unknown IDs are ignored.
func (b *Board) UpdateItemRotation(id string, radians float64) {
	i := b.doc.Index(id)
	if i < 0 {
		return
	}
	b.record()
	b.doc.Items[i].Rotation = radians
}

// UpdateSelectedStyle sets the style of the selected item. It does nothing
// when no item is selected.
func (b *Board) UpdateSelectedStyle(style Style) {
	i := b.doc.Index(b.doc.SelectedID)
	if b.doc.SelectedID == "" || i < 0 {
		return
	}
	b.record()
	b.doc.Items[i].Style = style
}

// Undo restores the previous snapshot. The selection survives if the
// selected item still exists.
func (b *Board) Undo() {
	if !b.history.CanUndo() {
		return
	}
	b.cancelGesture()
	prev := popDocument(&b.history.undo)
	b.history.redo = append(b.history.redo, b.doc)
	b.restore(prev)
}

// Redo reapplies the most recently undone snapshot.
func (b *Board) Redo() {
	if !b.history.CanRedo() {
		return
	}
	b.cancelGesture()
	next := popDocument(&b.history.redo)
	b.history.undo = append(b.history.undo, b.doc)
	b.restore(next)
}

func (b *Board) restore(d Document) {
	selected := b.doc.SelectedID
	b.doc = d
	if d.Index(selected) >= 0 {
		b.doc.SelectedID = selected
	} else {
		b.doc.SelectedID = ""
	}
}

// record pushes the current document before a mutation. During a gesture
// the pre-press snapshot is pushed once at commit instead.
func (b *Board) record() {
	if b.gesture != nil {
		return
	}
	b.history.push(b.doc.Clone())
}

// beginGesture captures the document before a drag starts.
func (b *Board) beginGesture() {
	snap := b.doc.Clone()
	b.gesture = &snap
}

// setLive changes an item during a drag without touching history.
func (b *Board) setLive(id string, fn func(*CanvasItem)) (CanvasItem, bool) {
	i := b.doc.Index(id)
	if i < 0 {
		return CanvasItem{}, false
	}
	fn(&b.doc.Items[i])
	return b.doc.Items[i].clone(), true
}

// commitGesture ends a drag, pushing the pre-press snapshot if the drag
// changed any item. It reports whether a history entry was added.
func (b *Board) commitGesture() bool {
	if b.gesture == nil {
		return false
	}
	before := *b.gesture
	b.gesture = nil
	if before.sameContent(b.doc) {
		return false
	}
	b.history.push(before)
	return true
}

// cancelGesture ends a drag, restoring the document to its pre-press state.
func (b *Board) cancelGesture() {
	if b.gesture == nil {
		return
	}
	b.doc = *b.gesture
	b.gesture = nil
}

// inGesture reports whether a drag is open.
func (b *Board) inGesture() bool {
	return b.gesture != nil
}

package scribble

import "fmt"

// InteractionKind tags the variant held by an Interaction.
type InteractionKind uint8

const (
	Idle InteractionKind = iota
	Drawing
	Resizing
	Rotating
	PanningSelection
	// PanningCanvas is a hand-tool drag that moves the viewport.
	PanningCanvas
)

var interactionNames = [...]string{
	Idle:             "idle",
	Drawing:          "drawing",
	Resizing:         "resizing",
	Rotating:         "rotating",
	PanningSelection: "panning-selection",
	PanningCanvas:    "panning-canvas",
}

func (k InteractionKind) String() string {
	if int(k) < len(interactionNames) {
		return interactionNames[k]
	}
	return fmt.Sprintf("InteractionKind(%d)", k)
}

// Interaction describes what the pointer is doing right now. Only the
// fields of the active Kind are meaningful:
//
//	Drawing:          Tool, Start, Current (screen space)
//	Resizing:         Handle, ItemID
//	Rotating:         ItemID
//	PanningSelection: ItemID
//	PanningCanvas:    Start, Current
type Interaction struct {
	Kind    InteractionKind
	Tool    ShapeKind
	Start   Vec2
	Current Vec2
	Handle  Handle
	ItemID  string
}

func (in Interaction) String() string {
	switch in.Kind {
	case Drawing:
		return fmt.Sprintf("drawing %s from %v to %v", in.Tool, in.Start, in.Current)
	case Resizing:
		return fmt.Sprintf("resizing %s by %s", in.ItemID, in.Handle)
	case Rotating, PanningSelection:
		return fmt.Sprintf("%s %s", in.Kind, in.ItemID)
	}
	return in.Kind.String()
}

// Active reports whether a drag is in progress.
func (in Interaction) Active() bool {
	return in.Kind != Idle
}

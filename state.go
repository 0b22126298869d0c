package dnd

import "time"

// ItemID is a stable identity for a list entry, independent of its current
// index. It is the animation key, so it must not change while an item is
// being dragged or reordered.
type ItemID string

// ItemLayout pairs an identity with the rectangle the host measured for it
// on the previous frame.
type ItemLayout struct {
	ID   ItemID
	Rect Rect
}

// DragStart is the host's signal that a press on an item's handle has moved
// past the drag threshold. Hit testing and threshold tracking belong to the
// host; the engine only consumes the resulting signal.
type DragStart struct {
	ID ItemID
	// HandleOrigin is the dragged item's on-screen origin at the moment the
	// threshold was crossed. The engine keeps the vector from the pointer to
	// this origin constant for the whole drag so the item does not jump to
	// the pointer.
	HandleOrigin Vec2
}

// FrameInput carries one frame's worth of pointer state into Engine.Tick.
type FrameInput struct {
	// Pointer is the pointer position, or nil if the pointer has left the
	// tracking surface. While dragging, the last known position is reused.
	Pointer *Vec2

	// Pressed reports whether the drag button is still held.
	Pressed bool

	// Start begins a drag this frame. Ignored while a session is active or
	// when Pointer is nil.
	Start *DragStart

	// Cancel aborts an active drag, restoring the order captured at drag
	// start. Applied before anything else in the tick.
	Cancel bool

	// Origin is the top-left corner of the list's content area. Resting
	// rectangles are laid out sequentially from here along the list axis.
	Origin Vec2

	// DT is the time elapsed since the previous tick.
	DT time.Duration
}

// CancelReason states why a drag ended without the pointer committing it.
type CancelReason int

const (
	// CancelledByCaller means FrameInput.Cancel was set during a drag.
	CancelledByCaller CancelReason = iota
	// SourceRemoved means the dragged identity disappeared from the item
	// snapshot mid-drag.
	SourceRemoved
)

func (r CancelReason) String() string {
	switch r {
	case CancelledByCaller:
		return "cancelled by caller"
	case SourceRemoved:
		return "source removed"
	}
	return "unknown"
}

// EventType discriminates drag completion events.
type EventType int

const (
	// Completed means the item settled into its final slot after a release.
	Completed EventType = iota
	// Cancelled means the drag ended without committing a reorder.
	Cancelled
)

// Event reports the end of a drag session. Emitted at most once per session,
// on the tick the session fully ends (after the settle animation, if any).
type Event struct {
	Type   EventType
	Reason CancelReason // meaningful only when Type is Cancelled
	Order  []ItemID     // display order at the moment the session ended
}

// phase is the engine's single process-wide interaction state. At most one
// item is dragged at a time.
type phase int

const (
	phaseIdle phase = iota
	phaseDragging
	phaseSettling
)

// detectionState tracks the active drag session.
type detectionState struct {
	phase phase
	id    ItemID

	// pointerOffset is handle origin minus pointer position, captured at
	// drag start and held constant for the whole drag.
	pointerOffset Vec2

	// draggedSize is captured on the first dragging frame and reused while
	// the item floats, since a floating element has no measured slot.
	draggedSize Vec2
	sizeKnown   bool

	// lastPointer is the most recent non-nil pointer position, used when the
	// pointer leaves the surface mid-drag.
	lastPointer Vec2

	// cancelReason is set when a caller cancel settles back, so the final
	// event carries the right reason instead of Completed.
	cancelReason *CancelReason
}

func (s *detectionState) reset() {
	*s = detectionState{}
}

package dnd

import "time"

const defaultDuration = 200 * time.Millisecond

// Config tunes an Engine. Zero values fall back to defaults.
type Config struct {
	// Axis is the list's primary layout direction. Defaults to Vertical.
	Axis Axis

	// Duration is how long slide and settle animations take. Zero defaults
	// to 200ms; a negative duration disables animation entirely, so
	// positions snap to their targets.
	Duration time.Duration

	// Easing shapes every animation. Defaults to CubicInOut.
	Easing EasingFn
}

// Engine owns one list's drag-to-reorder session: the drag detection state,
// the per-identity animation table, and the order captured at drag start for
// cancellation. One Engine per list; an Engine must only be ticked from one
// call site, never concurrently.
type Engine struct {
	axis Axis
	anim *Animator

	det        detectionState
	startOrder []ItemID
}

// New creates an idle Engine.
func New(cfg Config) *Engine {
	duration := cfg.Duration
	if duration == 0 {
		duration = defaultDuration
	}
	return &Engine{
		axis: cfg.Axis,
		anim: NewAnimator(duration, cfg.Easing),
	}
}

// RenderItem is one item's per-frame view: where to draw it and whether it
// is the floating dragged one. Recomputed every tick, never stored.
type RenderItem struct {
	ID      ItemID
	Index   int
	Pos     Vec2
	Dragged bool
}

// TickResult is everything the host needs to draw one frame and react to a
// finished drag.
type TickResult struct {
	// Items holds every item's animated render position, in display order.
	Items []RenderItem

	// Order is the current display order. While dragging it changes live as
	// the pointer crosses other items; the host should apply it to its
	// backing slice each frame so the next snapshot arrives in this order.
	Order []ItemID

	// Event is non-nil on the single tick a drag session fully ends.
	Event *Event
}

// Dragging reports the identity currently being dragged, if any.
func (e *Engine) Dragging() (ItemID, bool) {
	if e.det.phase == phaseDragging {
		return e.det.id, true
	}
	return "", false
}

// Tick advances the whole interaction by one frame: cancellation first, then
// the drag detection state machine, then the live reorder, then every item's
// animated position. Call it exactly once per rendered frame.
//
// items is the host's layout snapshot from the previous frame, in display
// order. Malformed input never panics: an unknown drag start is ignored and
// a vanished drag source cancels the session.
func (e *Engine) Tick(input FrameInput, items []ItemLayout) TickResult {
	order := make([]ItemID, len(items))
	live := make(map[ItemID]struct{}, len(items))
	index := make(map[ItemID]ItemLayout, len(items))
	for i, it := range items {
		order[i] = it.ID
		live[it.ID] = struct{}{}
		index[it.ID] = it
	}

	var event *Event
	var floating Vec2
	var targets map[ItemID]Rect

	if e.det.phase == phaseDragging {
		if _, ok := live[e.det.id]; !ok {
			// The backing list lost the dragged item between frames. There
			// is no rect to settle into, so the session ends right here.
			event = e.finish(Cancelled, SourceRemoved, order)
		} else if input.Cancel {
			order = e.restoreOrder(live, order)
			reason := CancelledByCaller
			e.det.cancelReason = &reason
			e.det.phase = phaseSettling
		} else if !input.Pressed {
			e.det.phase = phaseSettling
		}
	}

	if e.det.phase == phaseDragging {
		if input.Pointer != nil {
			e.det.lastPointer = *input.Pointer
		}
		if !e.det.sizeKnown {
			e.det.draggedSize = index[e.det.id].Rect.Size
			e.det.sizeKnown = true
		}
		floating = e.det.lastPointer.Add(e.det.pointerOffset)
		center := Vec2{
			X: floating.X + e.det.draggedSize.X/2,
			Y: floating.Y + e.det.draggedSize.Y/2,
		}
		if newOrder, newTargets, ok := computeOrder(items, e.det.id, center, e.axis, input.Origin); ok {
			order = newOrder
			targets = newTargets
		}
	} else if e.det.phase == phaseIdle && input.Start != nil && !input.Cancel && input.Pointer != nil {
		if _, ok := live[input.Start.ID]; ok {
			e.det.phase = phaseDragging
			e.det.id = input.Start.ID
			e.det.pointerOffset = input.Start.HandleOrigin.Sub(*input.Pointer)
			e.det.draggedSize = index[input.Start.ID].Rect.Size
			e.det.sizeKnown = true
			e.det.lastPointer = *input.Pointer
			e.startOrder = append([]ItemID(nil), order...)
			floating = input.Start.HandleOrigin
		}
	}

	if targets == nil {
		targets = layoutRects(items, order, e.axis, input.Origin)
	}

	result := TickResult{
		Items: make([]RenderItem, 0, len(order)),
		Order: order,
	}
	for i, id := range order {
		item := RenderItem{ID: id, Index: i}
		switch {
		case e.det.phase == phaseDragging && id == e.det.id:
			item.Dragged = true
			item.Pos = e.anim.Animate(id, floating, input.DT, false)
		case e.det.phase == phaseSettling && id == e.det.id:
			rest := targets[id].Min
			item.Pos = e.anim.Animate(id, rest, input.DT, true)
			if item.Pos == rest {
				if e.det.cancelReason != nil {
					event = e.finish(Cancelled, *e.det.cancelReason, order)
				} else {
					event = e.finish(Completed, 0, order)
				}
			}
		default:
			item.Pos = e.anim.Animate(id, targets[id].Min, input.DT, true)
		}
		result.Items = append(result.Items, item)
	}

	// A settling item that vanished from the snapshot has nothing left to
	// animate; end the session on this tick.
	if e.det.phase == phaseSettling {
		if _, ok := live[e.det.id]; !ok {
			event = e.finish(Cancelled, SourceRemoved, order)
		}
	}

	e.anim.Evict(live)

	result.Event = event
	return result
}

// finish ends the session and builds its event.
func (e *Engine) finish(typ EventType, reason CancelReason, order []ItemID) *Event {
	e.det.reset()
	e.startOrder = nil
	return &Event{
		Type:   typ,
		Reason: reason,
		Order:  append([]ItemID(nil), order...),
	}
}

// restoreOrder rebuilds the order captured at drag start, keeping only
// identities still present and appending any that appeared since.
func (e *Engine) restoreOrder(live map[ItemID]struct{}, current []ItemID) []ItemID {
	restored := make([]ItemID, 0, len(current))
	inStart := make(map[ItemID]struct{}, len(e.startOrder))
	for _, id := range e.startOrder {
		inStart[id] = struct{}{}
		if _, ok := live[id]; ok {
			restored = append(restored, id)
		}
	}
	for _, id := range current {
		if _, ok := inStart[id]; !ok {
			restored = append(restored, id)
		}
	}
	return restored
}

// Move applies a single-item move to a caller-owned slice: the element at
// from is removed and reinserted at to, with everything between shifting by
// one. Out-of-range indices are a no-op.
func Move[S ~[]E, E any](s S, from, to int) {
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return
	}
	v := s[from]
	if from < to {
		copy(s[from:to], s[from+1:to+1])
	} else {
		copy(s[to+1:from+1], s[to:from])
	}
	s[to] = v
}

package dnd

// computeOrder derives the live display order while an item is dragged.
//
// Every item is assigned its resting rectangle by sequential layout: each
// rectangle starts where the previous one ends along the list axis, sized
// per item, beginning at origin. The dragged item's insertion slot is found
// by comparing draggedCenter against the midpoint of every other item's
// rectangle along the axis: the dragged item belongs immediately before the
// first item whose midpoint lies strictly beyond the center, or at the end
// when none does. Comparing midpoints instead of rectangle overlap keeps the
// order stable when the dragged item's size differs from its neighbours'.
//
// The returned order moves the dragged item to the slot in one step, with
// every intervening item shifting by one, so dragging past several
// neighbours in a single frame produces a single move rather than a chain of
// swaps. Target rectangles are laid out for the returned order.
//
// found is false when draggedID is not present in items; the caller treats
// that as a removed drag source. Lists of fewer than two items come back
// unchanged.
func computeOrder(items []ItemLayout, draggedID ItemID, draggedCenter Vec2, axis Axis, origin Vec2) (order []ItemID, targets map[ItemID]Rect, found bool) {
	draggedIdx := -1
	for i, it := range items {
		if it.ID == draggedID {
			draggedIdx = i
			break
		}
	}
	if draggedIdx < 0 {
		return nil, nil, false
	}

	order = make([]ItemID, 0, len(items))
	if len(items) < 2 {
		for _, it := range items {
			order = append(order, it.ID)
		}
		return order, layoutRects(items, order, axis, origin), true
	}

	// Resting rectangles in the current order, dragged item's slot included.
	center := axis.component(draggedCenter)
	cursor := origin
	slot := len(items) - 1 // insertion slot among the non-dragged items
	counted := 0
	for i, it := range items {
		if i != draggedIdx {
			mid := axis.component(cursor) + axis.component(it.Rect.Size)/2
			if mid > center {
				slot = counted
				break
			}
			counted++
			slot = counted
		}
		cursor = axis.advance(cursor, axis.component(it.Rect.Size))
	}

	for i, it := range items {
		if i == draggedIdx {
			continue
		}
		order = append(order, it.ID)
	}
	order = append(order[:slot], append([]ItemID{draggedID}, order[slot:]...)...)

	return order, layoutRects(items, order, axis, origin), true
}

// layoutRects lays the given order out sequentially from origin, using each
// item's measured size.
func layoutRects(items []ItemLayout, order []ItemID, axis Axis, origin Vec2) map[ItemID]Rect {
	sizes := make(map[ItemID]Vec2, len(items))
	for _, it := range items {
		sizes[it.ID] = it.Rect.Size
	}

	targets := make(map[ItemID]Rect, len(order))
	cursor := origin
	for _, id := range order {
		size := sizes[id]
		targets[id] = Rect{Min: cursor, Size: size}
		cursor = axis.advance(cursor, axis.component(size))
	}
	return targets
}

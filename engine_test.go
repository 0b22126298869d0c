package dnd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hostTick plays the host's role for one frame: it ticks the engine, writes
// the returned render positions back as the next snapshot's measured rects,
// and applies the returned order to the backing slice.
func hostTick(e *Engine, items *[]ItemLayout, input FrameInput) TickResult {
	res := e.Tick(input, *items)

	byID := make(map[ItemID]ItemLayout, len(*items))
	for _, it := range *items {
		byID[it.ID] = it
	}
	next := make([]ItemLayout, 0, len(res.Order))
	for _, ri := range res.Items {
		it := byID[ri.ID]
		it.Rect.Min = ri.Pos
		next = append(next, it)
	}
	*items = next
	return res
}

func pressInput(pointer Vec2, dt time.Duration) FrameInput {
	p := pointer
	return FrameInput{Pointer: &p, Pressed: true, DT: dt}
}

func TestEngineOffsetStability(t *testing.T) {
	e := New(Config{Duration: 100 * time.Millisecond})
	items := column(100, "a", "b", "c")

	pointer := Vec2{X: 5, Y: 10}
	input := pressInput(pointer, frame)
	input.Start = &DragStart{ID: "a", HandleOrigin: Vec2{}}
	res := hostTick(e, &items, input)

	id, dragging := e.Dragging()
	require.True(t, dragging)
	assert.Equal(t, ItemID("a"), id)

	// Without pointer movement the floating item must sit exactly at the
	// handle origin on every frame: the captured offset cancels the grab
	// point's distance from the origin.
	for i := 0; i < 10; i++ {
		require.True(t, res.Items[0].Dragged)
		assert.Equal(t, Vec2{}, res.Items[0].Pos, "frame %d", i)
		res = hostTick(e, &items, pressInput(pointer, frame))
	}
}

func TestEngineEndToEndReorder(t *testing.T) {
	e := New(Config{Duration: 200 * time.Millisecond})
	items := column(100, "a", "b", "c")

	// Grab a's handle with the pointer at y=10.
	input := pressInput(Vec2{X: 5, Y: 10}, frame)
	input.Start = &DragStart{ID: "a", HandleOrigin: Vec2{}}
	hostTick(e, &items, input)

	// Drag down. The floating origin is pointer + offset = y=240, so the
	// dragged center (y=290) is past c's midpoint (y=250): live order
	// becomes [b c a] within this frame, as one move.
	res := hostTick(e, &items, pressInput(Vec2{X: 5, Y: 250}, frame))
	assert.Equal(t, []ItemID{"b", "c", "a"}, res.Order)
	assert.Nil(t, res.Event)

	// Release and let the settle animation run out.
	var event *Event
	for i := 0; i < 60 && event == nil; i++ {
		res = hostTick(e, &items, FrameInput{Pressed: false, DT: frame})
		event = res.Event
	}
	require.NotNil(t, event, "settle never completed")
	assert.Equal(t, Completed, event.Type)
	assert.Equal(t, []ItemID{"b", "c", "a"}, event.Order)

	_, dragging := e.Dragging()
	assert.False(t, dragging)

	// The session is over: later ticks are idle and emit nothing.
	res = hostTick(e, &items, FrameInput{DT: frame})
	assert.Nil(t, res.Event)
	assert.Equal(t, []ItemID{"b", "c", "a"}, res.Order)
}

func TestEngineSettlePositionsConverge(t *testing.T) {
	e := New(Config{Duration: 100 * time.Millisecond})
	items := column(100, "a", "b")

	input := pressInput(Vec2{X: 5, Y: 10}, frame)
	input.Start = &DragStart{ID: "a", HandleOrigin: Vec2{}}
	hostTick(e, &items, input)
	hostTick(e, &items, pressInput(Vec2{X: 5, Y: 160}, frame))

	var res TickResult
	for i := 0; i < 60; i++ {
		res = hostTick(e, &items, FrameInput{Pressed: false, DT: frame})
		if res.Event != nil {
			break
		}
	}
	require.NotNil(t, res.Event)

	// Everything rests exactly on its slot after completion.
	assert.Equal(t, Vec2{}, res.Items[0].Pos)
	assert.Equal(t, Vec2{Y: 100}, res.Items[1].Pos)
	for _, ri := range res.Items {
		assert.False(t, ri.Dragged)
	}
}

func TestEngineSourceRemovedMidDrag(t *testing.T) {
	e := New(Config{})
	items := column(100, "x", "y", "z")

	input := pressInput(Vec2{X: 5, Y: 10}, frame)
	input.Start = &DragStart{ID: "x", HandleOrigin: Vec2{}}
	hostTick(e, &items, input)

	// The caller mutates the backing list and drops the dragged item.
	items = items[1:]
	res := hostTick(e, &items, pressInput(Vec2{X: 5, Y: 50}, frame))

	require.NotNil(t, res.Event)
	assert.Equal(t, Cancelled, res.Event.Type)
	assert.Equal(t, SourceRemoved, res.Event.Reason)

	_, dragging := e.Dragging()
	assert.False(t, dragging, "a dangling drag must force idle")
}

func TestEngineCallerCancelRestoresOrder(t *testing.T) {
	e := New(Config{Duration: 100 * time.Millisecond})
	items := column(100, "a", "b", "c")

	input := pressInput(Vec2{X: 5, Y: 10}, frame)
	input.Start = &DragStart{ID: "a", HandleOrigin: Vec2{}}
	hostTick(e, &items, input)

	res := hostTick(e, &items, pressInput(Vec2{X: 5, Y: 250}, frame))
	require.Equal(t, []ItemID{"b", "c", "a"}, res.Order)

	// Cancel: the order snaps back to the one captured at drag start and
	// the item settles into its original slot.
	cancel := pressInput(Vec2{X: 5, Y: 250}, frame)
	cancel.Cancel = true
	res = hostTick(e, &items, cancel)
	assert.Equal(t, []ItemID{"a", "b", "c"}, res.Order)

	var event *Event
	for i := 0; i < 60 && event == nil; i++ {
		res = hostTick(e, &items, FrameInput{DT: frame})
		event = res.Event
	}
	require.NotNil(t, event)
	assert.Equal(t, Cancelled, event.Type)
	assert.Equal(t, CancelledByCaller, event.Reason)
	assert.Equal(t, []ItemID{"a", "b", "c"}, event.Order)
}

func TestEnginePointerLeavingSurfaceKeepsLastPosition(t *testing.T) {
	e := New(Config{Duration: 100 * time.Millisecond})
	items := column(100, "a", "b")

	input := pressInput(Vec2{X: 5, Y: 10}, frame)
	input.Start = &DragStart{ID: "a", HandleOrigin: Vec2{}}
	hostTick(e, &items, input)
	res := hostTick(e, &items, pressInput(Vec2{X: 5, Y: 60}, frame))
	want := res.Items[0].Pos

	// Pointer gone but still pressed: the item holds its last floating
	// position instead of snapping anywhere.
	res = hostTick(e, &items, FrameInput{Pressed: true, DT: frame})
	for _, ri := range res.Items {
		if ri.Dragged {
			assert.Equal(t, want, ri.Pos)
		}
	}
}

func TestEngineIgnoresUnknownDragStart(t *testing.T) {
	e := New(Config{})
	items := column(100, "a", "b")

	input := pressInput(Vec2{}, frame)
	input.Start = &DragStart{ID: "ghost", HandleOrigin: Vec2{}}
	res := hostTick(e, &items, input)

	_, dragging := e.Dragging()
	assert.False(t, dragging)
	assert.Nil(t, res.Event)
	assert.Equal(t, []ItemID{"a", "b"}, res.Order)
}

func TestEngineZeroDTNeverCompletesSettle(t *testing.T) {
	e := New(Config{Duration: 100 * time.Millisecond})
	items := column(100, "a", "b")

	input := pressInput(Vec2{X: 5, Y: 10}, frame)
	input.Start = &DragStart{ID: "a", HandleOrigin: Vec2{}}
	hostTick(e, &items, input)
	hostTick(e, &items, pressInput(Vec2{X: 5, Y: 160}, frame))

	// dt=0 is a caller configuration error: the animation simply never
	// advances, and no event is fabricated.
	for i := 0; i < 5; i++ {
		res := hostTick(e, &items, FrameInput{Pressed: false, DT: 0})
		assert.Nil(t, res.Event)
	}
}

func TestEngineEvictsDepartedIdentities(t *testing.T) {
	e := New(Config{Duration: 100 * time.Millisecond})
	items := column(100, "a", "b", "c")

	hostTick(e, &items, FrameInput{DT: frame})
	require.Len(t, e.anim.entries, 3)

	items = items[:2]
	hostTick(e, &items, FrameInput{DT: frame})
	assert.Len(t, e.anim.entries, 2)
}

func TestEngineDragStartRequiresPointer(t *testing.T) {
	e := New(Config{})
	items := column(100, "a", "b")

	res := e.Tick(FrameInput{
		Pressed: true,
		Start:   &DragStart{ID: "a", HandleOrigin: Vec2{}},
		DT:      frame,
	}, items)

	_, dragging := e.Dragging()
	assert.False(t, dragging)
	assert.Nil(t, res.Event)
}

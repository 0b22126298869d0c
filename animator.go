package dnd

import "time"

// animEntry is the per-identity animation triple plus the last returned
// position, which becomes the start point when the target changes.
type animEntry struct {
	start   Vec2
	target  Vec2
	last    Vec2
	elapsed time.Duration
}

// Animator interpolates each identity's rendered position toward its target.
// Entries live in a table keyed by ItemID; the engine evicts entries whose
// identity left the item snapshot so the table cannot grow past the list.
type Animator struct {
	duration time.Duration
	easing   EasingFn
	entries  map[ItemID]*animEntry
}

// NewAnimator creates an animator. A non-positive duration disables
// interpolation entirely: every call returns its target immediately.
func NewAnimator(duration time.Duration, easing EasingFn) *Animator {
	if easing == nil {
		easing = CubicInOut
	}
	return &Animator{
		duration: duration,
		easing:   easing,
		entries:  make(map[ItemID]*animEntry),
	}
}

// Animate advances the animation for id by dt and returns the position to
// render this frame.
//
// When the target changes the animation restarts from the last returned
// position, so a moving target never causes a discontinuity. Once the target
// holds still for the full duration the returned value is the target itself,
// byte-for-byte, which is what the engine's settle phase compares against.
//
// With enabled false the entry only tracks the target without interpolating.
// The dragged item is animated this way: it must follow the pointer exactly,
// but the tracked position seeds the settle-back animation on release.
func (a *Animator) Animate(id ItemID, target Vec2, dt time.Duration, enabled bool) Vec2 {
	e, ok := a.entries[id]
	if !ok {
		// First sighting: appear at the target, nothing to animate from.
		a.entries[id] = &animEntry{start: target, target: target, last: target, elapsed: a.duration}
		return target
	}

	if !enabled {
		e.start = target
		e.target = target
		e.last = target
		e.elapsed = a.duration
		return target
	}

	if target != e.target {
		e.start = e.last
		e.target = target
		e.elapsed = 0
	}

	e.elapsed += dt
	if a.duration <= 0 || e.elapsed >= a.duration {
		e.last = target
		return target
	}

	t := a.easing(float64(e.elapsed) / float64(a.duration))
	pos := Vec2{
		X: e.start.X + (target.X-e.start.X)*t,
		Y: e.start.Y + (target.Y-e.start.Y)*t,
	}
	e.last = pos
	return pos
}

// Evict drops entries whose identity is not in the live set.
func (a *Animator) Evict(live map[ItemID]struct{}) {
	for id := range a.entries {
		if _, ok := live[id]; !ok {
			delete(a.entries, id)
		}
	}
}

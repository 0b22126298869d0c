package dnd

import "math"

// EasingFn maps normalized elapsed time in [0, 1] to animation progress.
// The shipped functions are monotonic and hit 0 at 0 and 1 at 1, so an
// animation driven by them never overshoots its target.
type EasingFn func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// Smoothstep is the classic 3t²-2t³ hermite curve.
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// CubicOut decelerates toward the target. Used for the settle-back phase.
func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// CubicInOut accelerates then decelerates. Used for items sliding aside.
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EasingByName resolves a config-friendly easing name. Unknown names report
// ok=false so the caller can fall back to its default.
func EasingByName(name string) (fn EasingFn, ok bool) {
	switch name {
	case "linear":
		return Linear, true
	case "smoothstep":
		return Smoothstep, true
	case "ease-out":
		return CubicOut, true
	case "ease-in-out":
		return CubicInOut, true
	}
	return nil, false
}

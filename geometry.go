package dnd

// Vec2 is a 2D position or offset in the host's coordinate space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle described by its origin and size.
type Rect struct {
	Min  Vec2
	Size Vec2
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.Min.X + r.Size.X/2, r.Min.Y + r.Size.Y/2}
}

// Axis selects the primary layout direction of a list.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// component returns the coordinate of v along the axis.
func (a Axis) component(v Vec2) float64 {
	if a == Horizontal {
		return v.X
	}
	return v.Y
}

// advance returns v moved by d along the axis.
func (a Axis) advance(v Vec2, d float64) Vec2 {
	if a == Horizontal {
		return Vec2{v.X + d, v.Y}
	}
	return Vec2{v.X, v.Y + d}
}

// Package physics provides collision detection and distance utilities.
package physics

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Size
}

// Bounds returns the rectangle itself. Entities embedding Rect satisfy Bounded.
func (r Rect) Bounds() Rect {
	return r
}

// Center returns the rectangle's center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Bounded is implemented by anything with an axis-aligned bounding box.
type Bounded interface {
	Bounds() Rect
}

// Overlaps reports whether two rectangles intersect. Edges that merely touch
// do not count as overlapping.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Collides reports whether the bounding boxes of two entities intersect.
func Collides(a, b Bounded) bool {
	return Overlaps(a.Bounds(), b.Bounds())
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Velocity returns the (dx, dy) components of a vector with the given
// angle (radians, 0 = right, y grows downward) and magnitude.
func Velocity(angle, speed float64) (dx, dy float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Aim returns the velocity that travels from (fromX, fromY) toward (toX, toY)
// at the given speed.
func Aim(fromX, fromY, toX, toY, speed float64) (dx, dy float64) {
	return Velocity(math.Atan2(toY-fromY, toX-fromX), speed)
}

// Clamp restricts v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

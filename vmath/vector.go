// Package vmath provides float 2D vector helpers for arena-space math
// Arena space is centered on the base at the origin, +Y points down
package vmath

import "math"

// Vec2 is a plain 2D coordinate or displacement
type Vec2 struct {
	X, Y float64
}

// Zero is the origin, where the base sits
var Zero = Vec2{}

// V constructs a Vec2
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a+b
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a-b
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale multiplies both axes by k
func (a Vec2) Scale(k float64) Vec2 {
	return Vec2{a.X * k, a.Y * k}
}

// Len returns the Euclidean length
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// LenSq returns squared length without sqrt
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Normalize returns the unit vector, zero-safe
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{a.X / l, a.Y / l}
}

// Dist returns the distance between two points
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// DistSq returns the squared distance between two points
func DistSq(a, b Vec2) float64 {
	return b.Sub(a).LenSq()
}

// FromAngle returns a vector of length mag pointing at angle (radians)
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// MoveToward advances from toward target by at most step
// Returns the new position and true if target was reached this step
func MoveToward(from, target Vec2, step float64) (Vec2, bool) {
	delta := target.Sub(from)
	dist := delta.Len()
	if dist <= step {
		return target, true
	}
	return from.Add(delta.Scale(step / dist)), false
}

// Lerp interpolates a scalar between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

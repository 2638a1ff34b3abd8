// pkg/utils/math.go
package utils

import "math"

// Vec2 is a point or offset on the ground plane. X grows to the east, Y to the north.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// LerpUnclamped interpolates between a and b without clamping t to [0, 1].
func LerpUnclamped(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec is LerpUnclamped applied to both components.
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{X: LerpUnclamped(a.X, b.X, t), Y: LerpUnclamped(a.Y, b.Y, t)}
}

// HeadingVectors returns the forward and right unit vectors for a heading given in
// degrees, measured clockwise from north.
func HeadingVectors(angle float64) (forward, right Vec2) {
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{X: sin, Y: cos}, Vec2{X: cos, Y: -sin}
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

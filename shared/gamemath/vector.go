// Package gamemath holds the pure 2D math shared by the simulation systems.
// Vector arithmetic uses the methods of donburi's math.Vec2. It has no
// dependencies on ebitengine or resolv.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the vector type used across the simulation.
type Vec2 = dmath.Vec2

// V returns the vector (x, y).
func V(x, y float64) Vec2 {
	return dmath.NewVec2(x, y)
}

// Normalize returns v scaled to unit length. The second result is false for
// the zero vector, which has no direction.
func Normalize(v Vec2) (Vec2, bool) {
	l := v.Magnitude()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return v.DivScalar(l), true
}

// ApproxEqual compares two vectors component-wise within eps.
func ApproxEqual(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

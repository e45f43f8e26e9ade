package gamemath

import "math"

// Reflect mirrors the incoming direction d about a surface with outward unit
// normal n: r = d̂ - 2(d̂·n)n, scaled back to |d|. n must be unit length.
// A zero d reflects to zero.
func Reflect(d, n Vec2) Vec2 {
	dir, ok := Normalize(d)
	if !ok {
		return Vec2{}
	}
	r := dir.Sub(n.MulScalar(2 * dir.Dot(&n)))
	return r.MulScalar(d.Magnitude())
}

// Heading returns atan2(v.y, v.x) minus offset, so an asset whose default
// facing is rotated by offset ends up pointing along v.
func Heading(v Vec2, offset float64) float64 {
	return math.Atan2(v.Y, v.X) - offset
}

// WrapAngle maps a to (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// TurnTowards rotates from toward target by at most maxStep radians along the
// shorter arc.
func TurnTowards(from, target, maxStep float64) float64 {
	diff := WrapAngle(target - from)
	if math.Abs(diff) <= maxStep {
		return WrapAngle(target)
	}
	if diff > 0 {
		return WrapAngle(from + maxStep)
	}
	return WrapAngle(from - maxStep)
}

package collision

import (
	"math"

	"github.com/automoto/tracer/shared/gamemath"
)

type slabHit struct {
	t      float64       // entry fraction along the segment, in [0, 1]
	normal gamemath.Vec2 // face the segment entered through
	inside bool          // segment starts inside the rect
}

// segmentRectHit intersects the segment origin→origin+delta with r using the
// slab method.
func segmentRectHit(origin, delta gamemath.Vec2, r Rect) (slabHit, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	var normal gamemath.Vec2

	axes := [2]struct {
		o, d, lo, hi float64
		n            gamemath.Vec2
	}{
		{origin.X, delta.X, r.X, r.MaxX(), gamemath.V(1, 0)},
		{origin.Y, delta.Y, r.Y, r.MaxY(), gamemath.V(0, 1)},
	}

	for _, a := range axes {
		if a.d == 0 {
			if a.o < a.lo || a.o > a.hi {
				return slabHit{}, false
			}
			continue
		}
		inv := 1 / a.d
		t1 := (a.lo - a.o) * inv
		t2 := (a.hi - a.o) * inv
		n := a.n.MulScalar(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			n = a.n
		}
		if t1 > tmin {
			tmin = t1
			normal = n
		}
		tmax = math.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 || tmin > 1 {
		return slabHit{}, false
	}
	if tmin < 0 {
		return slabHit{inside: true}, true
	}
	return slabHit{t: tmin, normal: normal}, true
}

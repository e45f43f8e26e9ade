// Package collision answers swept segment queries against the static
// obstacles of an arena. Two backends implement World: ResolvWorld uses a
// resolv cell space as the broadphase, ChipmunkWorld uses a chipmunk static
// body and its segment query.
package collision

import (
	"errors"
	"fmt"

	"github.com/automoto/tracer/shared/gamemath"
	"github.com/yohamta/donburi"
)

//go:generate go tool mockgen -destination=./mocks/query_mock.go -package=mocks . Query

var (
	ErrUnknownBackend = errors.New("collision: unknown backend")
	ErrInvalidRect    = errors.New("collision: invalid obstacle rect")
)

// Query casts a segment through the obstacle set.
type Query interface {
	// Sweep casts from origin along dir for at most maxDistance and returns
	// the nearest obstacle that passes filter. dir need not be normalized.
	// A zero dir or non-positive maxDistance never hits. With solid set, an
	// origin inside an obstacle hits at distance 0; otherwise obstacles that
	// contain the origin are ignored.
	Sweep(origin, dir gamemath.Vec2, maxDistance float64, solid bool, filter Filter) (Hit, bool, error)
}

// World is a Query that obstacles can be registered with during setup.
type World interface {
	Query
	AddObstacle(e donburi.Entity, r Rect, tags ...string) error
}

// Hit describes the first contact of a sweep.
type Hit struct {
	Entity   donburi.Entity
	Point    gamemath.Vec2
	Normal   gamemath.Vec2 // outward unit normal of the face that was hit
	Distance float64
}

// Filter limits which obstacles a sweep can hit.
type Filter struct {
	Tags    []string       // obstacle must carry one of these; empty matches all
	Exclude donburi.Entity // zero excludes nothing
}

func (f Filter) accepts(e donburi.Entity, tags []string) bool {
	if f.Exclude != 0 && e == f.Exclude {
		return false
	}
	if len(f.Tags) == 0 {
		return true
	}
	for _, want := range f.Tags {
		for _, have := range tags {
			if want == have {
				return true
			}
		}
	}
	return false
}

// Rect is an axis-aligned box in world space; X, Y is the minimum corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the rect of size w×h centred on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

func (r Rect) Center() gamemath.Vec2 {
	return gamemath.V(r.X+r.W/2, r.Y+r.H/2)
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p gamemath.Vec2) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

func (r Rect) validate() error {
	if !(r.W > 0) || !(r.H > 0) {
		return fmt.Errorf("%w: %+v", ErrInvalidRect, r)
	}
	return nil
}

// obstacle is stored as the user data of backend objects.
type obstacle struct {
	entity donburi.Entity
	rect   Rect
	tags   []string
}

// New creates the backend named by backend ("resolv" or "chipmunk") covering
// a width×height world centred on the origin.
func New(backend string, width, height float64, cellWidth, cellHeight int) (World, error) {
	switch backend {
	case "resolv", "":
		return NewResolvWorld(width, height, cellWidth, cellHeight), nil
	case "chipmunk":
		return NewChipmunkWorld(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// sweep is a validated query segment.
type sweep struct {
	origin   gamemath.Vec2
	unit     gamemath.Vec2
	delta    gamemath.Vec2 // unit * maxDistance
	maxDist  float64
	solid    bool
	filter   Filter
	best     Hit
	hasBest  bool
	bestFrac float64
}

func newSweep(origin, dir gamemath.Vec2, maxDistance float64, solid bool, filter Filter) (*sweep, bool) {
	if !(maxDistance > 0) {
		return nil, false
	}
	unit, ok := gamemath.Normalize(dir)
	if !ok {
		return nil, false
	}
	return &sweep{
		origin:  origin,
		unit:    unit,
		delta:   unit.MulScalar(maxDistance),
		maxDist: maxDistance,
		solid:   solid,
		filter:  filter,
	}, true
}

func (s *sweep) end() gamemath.Vec2 {
	return s.origin.Add(s.delta)
}

// consider records a candidate contact at fraction t of the segment if it is
// nearer than the current best.
func (s *sweep) consider(e donburi.Entity, t float64, normal gamemath.Vec2) {
	if s.hasBest && t >= s.bestFrac {
		return
	}
	s.hasBest = true
	s.bestFrac = t
	s.best = Hit{
		Entity:   e,
		Point:    s.origin.Add(s.delta.MulScalar(t)),
		Normal:   normal,
		Distance: t * s.maxDist,
	}
}

// test runs the narrowphase against one obstacle.
func (s *sweep) test(o *obstacle) {
	if o == nil || !s.filter.accepts(o.entity, o.tags) {
		return
	}
	h, ok := segmentRectHit(s.origin, s.delta, o.rect)
	if !ok {
		return
	}
	if h.inside {
		if s.solid {
			s.consider(o.entity, 0, s.unit.MulScalar(-1))
		}
		return
	}
	s.consider(o.entity, h.t, h.normal)
}

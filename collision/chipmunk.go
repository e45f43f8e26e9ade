package collision

import (
	"sync"

	"github.com/automoto/tracer/shared/gamemath"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// ChipmunkWorld registers obstacles as boxes on a chipmunk space's static
// body and answers sweeps with the space's segment query.
type ChipmunkWorld struct {
	mu        sync.Mutex
	space     *cp.Space
	obstacles []*obstacle
}

func NewChipmunkWorld() *ChipmunkWorld {
	return &ChipmunkWorld{space: cp.NewSpace()}
}

func (w *ChipmunkWorld) AddObstacle(e donburi.Entity, r Rect, tags ...string) error {
	if err := r.validate(); err != nil {
		return err
	}
	o := &obstacle{entity: e, rect: r, tags: tags}
	bb := cp.BB{L: r.X, B: r.Y, R: r.MaxX(), T: r.MaxY()}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.UserData = o

	w.mu.Lock()
	w.space.AddShape(shape)
	w.obstacles = append(w.obstacles, o)
	w.mu.Unlock()
	return nil
}

func (w *ChipmunkWorld) Sweep(origin, dir gamemath.Vec2, maxDistance float64, solid bool, filter Filter) (Hit, bool, error) {
	s, ok := newSweep(origin, dir, maxDistance, solid, filter)
	if !ok {
		return Hit{}, false, nil
	}
	end := s.end()

	w.mu.Lock()
	defer w.mu.Unlock()

	// chipmunk does not report segments that start inside a box, so
	// containment is resolved here first.
	if solid {
		for _, o := range w.obstacles {
			if o.rect.Contains(origin) && filter.accepts(o.entity, o.tags) {
				return Hit{Entity: o.entity, Point: origin, Normal: s.unit.MulScalar(-1)}, true, nil
			}
		}
	}

	start := cp.Vector{X: origin.X, Y: origin.Y}
	stop := cp.Vector{X: end.X, Y: end.Y}
	w.space.SegmentQuery(start, stop, 0, cp.SHAPE_FILTER_ALL,
		func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
			o, _ := shape.UserData.(*obstacle)
			if o == nil || !filter.accepts(o.entity, o.tags) || o.rect.Contains(origin) {
				return
			}
			s.consider(o.entity, alpha, gamemath.V(normal.X, normal.Y))
		}, nil)

	return s.best, s.hasBest, nil
}

package collision

import (
	"math"
	"sync"

	"github.com/automoto/tracer/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ResolvWorld keeps obstacles in a resolv cell space. A sweep resizes a probe
// object to the segment's bounding box, asks the space for the obstacles in
// the cells it touches, then runs the slab test on each candidate.
type ResolvWorld struct {
	mu      sync.Mutex
	space   *resolv.Space
	probe   *resolv.Object
	offsetX float64
	offsetY float64
}

const probePadding = 1

// NewResolvWorld creates a space covering a width×height world centred on the
// origin. Obstacles outside it are never found.
func NewResolvWorld(width, height float64, cellWidth, cellHeight int) *ResolvWorld {
	space := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellWidth, cellHeight)
	probe := resolv.NewObject(0, 0, 1, 1)
	space.Add(probe)
	return &ResolvWorld{
		space:   space,
		probe:   probe,
		offsetX: width / 2,
		offsetY: height / 2,
	}
}

func (w *ResolvWorld) AddObstacle(e donburi.Entity, r Rect, tags ...string) error {
	if err := r.validate(); err != nil {
		return err
	}
	obj := resolv.NewObject(r.X+w.offsetX, r.Y+w.offsetY, r.W, r.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = &obstacle{entity: e, rect: r, tags: tags}

	w.mu.Lock()
	w.space.Add(obj)
	w.mu.Unlock()
	return nil
}

func (w *ResolvWorld) Sweep(origin, dir gamemath.Vec2, maxDistance float64, solid bool, filter Filter) (Hit, bool, error) {
	s, ok := newSweep(origin, dir, maxDistance, solid, filter)
	if !ok {
		return Hit{}, false, nil
	}
	end := s.end()

	w.mu.Lock()
	defer w.mu.Unlock()

	// resolv looks up cells up to X+W-1, so the box is padded by one unit on
	// each side; the slab test rejects the extra candidates.
	w.probe.X = math.Min(origin.X, end.X) + w.offsetX - probePadding
	w.probe.Y = math.Min(origin.Y, end.Y) + w.offsetY - probePadding
	w.probe.W = math.Abs(end.X-origin.X) + 2*probePadding
	w.probe.H = math.Abs(end.Y-origin.Y) + 2*probePadding
	w.probe.Update()

	check := w.probe.Check(0, 0, filter.Tags...)
	if check == nil {
		return Hit{}, false, nil
	}
	for _, obj := range check.Objects {
		o, _ := obj.Data.(*obstacle)
		s.test(o)
	}
	return s.best, s.hasBest, nil
}

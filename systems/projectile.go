package systems

import (
	"github.com/automoto/tracer/collision"
	"github.com/automoto/tracer/components"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/automoto/tracer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var sweepWarnings warnOnce

var solidFilter = collision.Filter{Tags: []string{tags.ResolvSolid}}

// UpdateProjectiles moves every projectile along its direction. The whole
// distance covered this tick is swept first, so a fast bullet cannot pass
// through a thin wall between two ticks. On a hit the impact response runs and
// the bullet is destroyed at the end of the tick without being charged
// lifetime; otherwise it advances and its lifetime is charged dt.
func UpdateProjectiles(ecs *ecs.ECS) {
	dt := deltaOf(ecs)
	cmds := commandsOf(ecs)
	if dt <= 0 || cmds == nil {
		return
	}
	query := collisionQuery(ecs)

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		pr := components.Projectile.Get(e)
		lt := components.Lifetime.Get(e)

		maxDist := pr.Direction.Magnitude() * dt
		if hit, ok := sweep(query, tr.Position, pr.Direction, maxDist); ok {
			RespondToImpact(ecs, hit.Point, hit.Normal, pr.Direction)
			cmds.Destroy(e.Entity())
			return
		}

		tr.Position = tr.Position.Add(pr.Direction.MulScalar(dt))
		if lt.Decay == components.DecayOnTravel {
			lt.Remaining -= dt
		}
	})
}

// sweep treats a missing or failing collision backend as "no hit".
func sweep(query collision.Query, origin, dir gamemath.Vec2, maxDist float64) (collision.Hit, bool) {
	if query == nil {
		return collision.Hit{}, false
	}
	hit, ok, err := query.Sweep(origin, dir, maxDist, true, solidFilter)
	if err != nil {
		sweepWarnings.Warn("Warning: Collision query failed, treating as no hit: %v", err)
		return collision.Hit{}, false
	}
	return hit, ok
}

func collisionQuery(ecs *ecs.ECS) collision.Query {
	entry, ok := components.Collision.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Collision.Get(entry).Query
}

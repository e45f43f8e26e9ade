package systems

import (
	"testing"

	"github.com/automoto/tracer/archetypes"
	"github.com/automoto/tracer/collision"
	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/automoto/tracer/systems/factory"
	"github.com/automoto/tracer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const eps = 1e-6

// newTestScene builds a scene with the simulation pipeline installed, a fixed
// tick of dt and the given collision query (nil for none).
func newTestScene(t *testing.T, dt float64, query collision.Query) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateResources(e)
	setDelta(e, dt)

	entry := archetypes.Collision.Spawn(e)
	components.Collision.SetValue(entry, components.CollisionData{Query: query})

	if _, err := factory.CreateEffects(e, 1); err != nil {
		t.Fatalf("create effects: %v", err)
	}
	if err := NewSimulationPipeline().Install(e); err != nil {
		t.Fatalf("install pipeline: %v", err)
	}
	return e
}

func setDelta(e *ecs.ECS, dt float64) {
	entry := components.Frame.MustFirst(e.World)
	components.Frame.Get(entry).Delta = dt
}

// withProjectileSpeed overrides the projectile speed for one test.
func withProjectileSpeed(t *testing.T, speed float64) {
	t.Helper()
	prev := cfg.Projectile
	cfg.Projectile.Speed = speed
	t.Cleanup(func() { cfg.Projectile = prev })
}

func resolvWorld(t *testing.T, e *ecs.ECS) collision.World {
	t.Helper()
	w := collision.NewResolvWorld(1200, 800, 16, 16)
	entry := components.Collision.MustFirst(e.World)
	components.Collision.Get(entry).Query = w
	return w
}

func fire(e *ecs.ECS, origin, aim gamemath.Vec2) *donburi.Entry {
	fx := components.Effects.Get(components.Effects.MustFirst(e.World))
	return factory.CreateProjectile(e, origin, aim, fx.Trail)
}

func projectiles(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Projectile.Each(e.World, func(en *donburi.Entry) { out = append(out, en) })
	return out
}

func impacts(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.ImpactEffect.Each(e.World, func(en *donburi.Entry) { out = append(out, en) })
	return out
}

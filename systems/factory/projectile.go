package factory

import (
	"github.com/automoto/tracer/archetypes"
	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/effects"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile fires a bullet from origin toward aim. The direction is
// scaled to cfg.Projectile.Speed and the trail effect is attached to the same
// entity so it follows the bullet. A zero aim vector creates nothing.
func CreateProjectile(ecs *ecs.ECS, origin, aim gamemath.Vec2, trail effects.Handle) *donburi.Entry {
	dir, ok := gamemath.Normalize(aim)
	if !ok {
		return nil
	}

	projectile := archetypes.Projectile.Spawn(ecs)
	components.Transform.SetValue(projectile, components.TransformData{
		Position: origin,
		Rotation: gamemath.Heading(dir, 0),
	})
	components.Projectile.SetValue(projectile, components.ProjectileData{
		Direction: dir.MulScalar(cfg.Projectile.Speed),
	})
	components.Lifetime.SetValue(projectile, components.LifetimeData{
		Remaining: cfg.Projectile.Lifetime,
		Decay:     components.DecayOnTravel,
		Cause:     components.ExpiryTimeout,
	})
	components.Emitter.SetValue(projectile, components.EmitterData{
		Handle: trail,
		Z:      cfg.Projectile.TrailZ,
		Follow: true,
	})
	startEmitter(ecs, projectile)

	return projectile
}

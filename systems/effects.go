package systems

import (
	"github.com/automoto/tracer/components"
	"github.com/automoto/tracer/effects"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var effectWarnings warnOnce

// UpdateEffects keeps effect instances in step with their entities: following
// instances are moved to their entity's transform, instances whose entity is
// gone stop emitting, and every particle advances by dt. Impact effects fade
// out over their display lifetime.
func UpdateEffects(ecs *ecs.ECS) {
	dt := deltaOf(ecs)
	fxEntry, ok := components.Effects.First(ecs.World)
	if !ok {
		return
	}
	fx := components.Effects.Get(fxEntry)

	live := make(map[uuid.UUID]struct{})
	components.Emitter.Each(ecs.World, func(e *donburi.Entry) {
		em := components.Emitter.Get(e)
		var place effects.Placement
		if e.HasComponent(components.Transform) {
			tr := components.Transform.Get(e)
			place = effects.Placement{Position: tr.Position, Rotation: tr.Rotation}
		}

		if em.Instance == uuid.Nil {
			id, err := fx.Emitter.Spawn(em.Handle, place, em.Z)
			if err != nil {
				effectWarnings.Warn("Warning: Could not start effect: %v", err)
				return
			}
			em.Instance = id
		} else if em.Follow {
			fx.Emitter.Move(em.Instance, place)
		}
		live[em.Instance] = struct{}{}
	})

	fx.Emitter.Retain(live)
	fx.Emitter.Advance(dt)

	components.ImpactEffect.Each(ecs.World, func(e *donburi.Entry) {
		ie := components.ImpactEffect.Get(e)
		if ie.Fade == nil {
			return
		}
		alpha, _ := ie.Fade.Update(float32(dt))
		ie.Alpha = float64(alpha)
	})
}

package factory

import (
	"fmt"
	"log"

	"github.com/automoto/tracer/archetypes"
	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/effects"
	"github.com/automoto/tracer/shared/emission"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DescriptorFromConfig converts an effect configuration into an emission
// descriptor.
func DescriptorFromConfig(c cfg.EmitterConfig) (emission.Descriptor, error) {
	kind, err := emission.ParseShapeKind(c.Shape)
	if err != nil {
		return emission.Descriptor{}, fmt.Errorf("effect %q: %w", c.Name, err)
	}

	var shape emission.Shape
	switch kind {
	case emission.ShapeCircle:
		shape = emission.CircleShape(emission.Circle{Radius: c.Radius, Surface: c.Surface})
	case emission.ShapeCone:
		shape = emission.ConeShape(emission.Cone{
			Height:     c.Height,
			BaseRadius: c.BaseRadius,
			TopRadius:  c.TopRadius,
		})
	}

	return emission.Descriptor{
		Name:             c.Name,
		Capacity:         c.Capacity,
		Spawner:          emission.Spawner{Rate: c.Rate, Burst: c.Burst},
		ParticleLifetime: c.ParticleLifetime,
		Shape:            shape,
		SpeedMin:         c.SpeedMin,
		SpeedMax:         c.SpeedMax,
		Color:            emission.Gradient{Start: c.StartColor, End: c.EndColor, Ease: ease.Linear},
		Size:             emission.SizeCurve{Start: c.StartSize, End: c.EndSize, Ease: ease.OutQuad},
	}, nil
}

// RegisterBulletEffects registers the trail and debris effects.
func RegisterBulletEffects(reg *effects.Registry, trailCfg, debrisCfg cfg.EmitterConfig) (trail, debris effects.Handle, err error) {
	for _, e := range []struct {
		c   cfg.EmitterConfig
		out *effects.Handle
	}{
		{trailCfg, &trail},
		{debrisCfg, &debris},
	} {
		d, err := DescriptorFromConfig(e.c)
		if err != nil {
			return 0, 0, err
		}
		h, err := reg.Register(d)
		if err != nil {
			return 0, 0, fmt.Errorf("register %q: %w", e.c.Name, err)
		}
		*e.out = h
	}
	return trail, debris, nil
}

// CreateEffects creates the scene's particle runtime with the bullet effects
// registered.
func CreateEffects(ecs *ecs.ECS, seed uint64) (*donburi.Entry, error) {
	reg := effects.NewRegistry()
	trail, debris, err := RegisterBulletEffects(reg, cfg.Trail, cfg.Debris)
	if err != nil {
		return nil, err
	}
	entry := archetypes.Effects.Spawn(ecs)
	components.Effects.SetValue(entry, components.EffectsData{
		Registry: reg,
		Emitter:  effects.NewEmitter(reg, seed),
		Trail:    trail,
		Debris:   debris,
	})
	return entry, nil
}

// CreateImpactEffect spawns the debris left where a projectile hit a wall.
// rotation orients the debris cone along the reflected direction.
func CreateImpactEffect(ecs *ecs.ECS, point gamemath.Vec2, rotation float64, reflected, normal gamemath.Vec2) *donburi.Entry {
	impact := archetypes.ImpactEffect.Spawn(ecs)

	components.Transform.SetValue(impact, components.TransformData{
		Position: point,
		Rotation: rotation,
	})
	components.ImpactEffect.SetValue(impact, components.ImpactEffectData{
		Reflected: reflected,
		Normal:    normal,
		Fade:      gween.New(1, 0, float32(cfg.Impact.Lifetime), ease.InQuad),
		Alpha:     1,
	})
	components.Lifetime.SetValue(impact, components.LifetimeData{
		Remaining: cfg.Impact.Lifetime,
		Decay:     components.DecayPerTick,
		Cause:     components.ExpiryDisplay,
	})

	var debris effects.Handle
	if fx, ok := components.Effects.First(ecs.World); ok {
		debris = components.Effects.Get(fx).Debris
	}
	components.Emitter.SetValue(impact, components.EmitterData{
		Handle: debris,
		Z:      cfg.Impact.Z,
	})
	startEmitter(ecs, impact)

	return impact
}

// startEmitter spawns the effect instance for entry's Emitter at its
// Transform. Without an effects runtime the instance stays unset.
func startEmitter(ecs *ecs.ECS, entry *donburi.Entry) {
	fxEntry, ok := components.Effects.First(ecs.World)
	if !ok {
		return
	}
	fx := components.Effects.Get(fxEntry)
	em := components.Emitter.Get(entry)
	tr := components.Transform.Get(entry)

	id, err := fx.Emitter.Spawn(em.Handle, effects.Placement{Position: tr.Position, Rotation: tr.Rotation}, em.Z)
	if err != nil {
		log.Printf("Warning: Could not start effect: %v", err)
		return
	}
	em.Instance = id
}

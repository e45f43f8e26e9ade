package components

import (
	"github.com/automoto/tracer/effects"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ImpactEffectData marks the debris left where a projectile hit a wall.
type ImpactEffectData struct {
	Reflected gamemath.Vec2
	Normal    gamemath.Vec2
	Fade      *gween.Tween // alpha 1 -> 0 over the display lifetime
	Alpha     float64
}

var ImpactEffect = donburi.NewComponentType[ImpactEffectData]()

// EmitterData attaches a particle effect instance to an entity. The effect
// follows the entity's Transform while the entity lives.
type EmitterData struct {
	Handle   effects.Handle
	Instance uuid.UUID // uuid.Nil until the effects system starts it
	Z        float64
	Follow   bool
}

var Emitter = donburi.NewComponentType[EmitterData]()

// EffectsData is the scene's particle runtime and the handles of the bullet
// effects registered at startup.
type EffectsData struct {
	Registry *effects.Registry
	Emitter  *effects.Emitter
	Trail    effects.Handle
	Debris   effects.Handle
}

var Effects = donburi.NewComponentType[EffectsData]()

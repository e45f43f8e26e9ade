package archetypes

import (
	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Obstacle,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Lifetime,
		components.Emitter,
	)
	ImpactEffect = newArchetype(
		tags.ImpactEffect,
		components.ImpactEffect,
		components.Transform,
		components.Lifetime,
		components.Emitter,
	)
	// Scene resources, one entity each
	Frame = newArchetype(
		components.Frame,
	)
	Input = newArchetype(
		components.Input,
		components.Aim,
	)
	Commands = newArchetype(
		components.Commands,
	)
	Collision = newArchetype(
		components.Collision,
	)
	Effects = newArchetype(
		components.Effects,
	)
	Debug = newArchetype(
		components.Debug,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

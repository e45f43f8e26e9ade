package systems

import (
	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/effects"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/automoto/tracer/systems/factory"
	"github.com/automoto/tracer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShooting fires one projectile from the player toward the cursor on
// each press of the shoot action. No cursor or a cursor on top of the player
// fires nothing.
func UpdateShooting(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	if !input.JustPressed(cfg.ActionShoot) {
		return
	}
	aim := components.Aim.Get(inputEntry)
	if !aim.Valid {
		return
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	origin := components.Transform.Get(player).Position
	dir := aim.Target.Sub(origin)
	if _, ok := gamemath.Normalize(dir); !ok {
		return
	}

	cmds := commandsOf(ecs)
	if cmds == nil {
		return
	}
	var trail effects.Handle
	if fx, ok := components.Effects.First(ecs.World); ok {
		trail = components.Effects.Get(fx).Trail
	}
	cmds.Spawn(func(ecs *ecs.ECS) {
		factory.CreateProjectile(ecs, origin, dir, trail)
	})
}

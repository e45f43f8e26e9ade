package factory

import (
	"github.com/automoto/tracer/archetypes"
	"github.com/automoto/tracer/components"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	pos := gamemath.V(x, y)
	components.Transform.SetValue(player, components.TransformData{Position: pos})
	components.Player.SetValue(player, components.PlayerData{
		LastPosition: pos,
	})

	return player
}

package systems

import (
	"math"

	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/automoto/tracer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerMovement moves the player with the directional actions.
// Diagonal movement is normalized so it is not faster.
func UpdatePlayerMovement(ecs *ecs.ECS) {
	dt := deltaOf(ecs)
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	var move gamemath.Vec2
	if input.Pressed(cfg.ActionMoveUp) {
		move.Y++
	}
	if input.Pressed(cfg.ActionMoveDown) {
		move.Y--
	}
	if input.Pressed(cfg.ActionMoveLeft) {
		move.X--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		move.X++
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		player := components.Player.Get(e)

		player.LastPosition = tr.Position
		if dir, ok := gamemath.Normalize(move); ok {
			tr.Position = tr.Position.Add(dir.MulScalar(cfg.Player.MoveSpeed*dt))
		}
	})
}

// OrientPlayer turns the player's body toward the cursor, limited to
// cfg.Player.AngularSpeed.
func OrientPlayer(ecs *ecs.ECS) {
	dt := deltaOf(ecs)
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	aim := components.Aim.Get(inputEntry)
	if !aim.Valid {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		player := components.Player.Get(e)

		toCursor := aim.Target.Sub(tr.Position)
		if _, ok := gamemath.Normalize(toCursor); !ok {
			return
		}
		target := math.Atan2(toCursor.Y, toCursor.X)
		player.Facing = gamemath.TurnTowards(player.Facing, target, cfg.Player.AngularSpeed*dt)
		tr.Rotation = player.Facing
	})
}

// OrientLegs points the legs along the last movement. Must run after
// UpdatePlayerMovement in the same tick.
func OrientLegs(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		tr := components.Transform.Get(e)
		player := components.Player.Get(e)

		step := tr.Position.Sub(player.LastPosition)
		_, player.Moving = gamemath.Normalize(step)
		if player.Moving {
			player.LegAngle = math.Atan2(step.Y, step.X)
		}
	})
}

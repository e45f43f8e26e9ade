package systems

import (
	"github.com/automoto/tracer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FlushCommands applies the structural changes buffered during the tick.
// Destroys run first and each entity is removed at most once; spawns run
// after. Must be the last system of the tick.
func FlushCommands(ecs *ecs.ECS) {
	cmds := commandsOf(ecs)
	if cmds == nil {
		return
	}
	destroy, spawns := cmds.Drain()

	seen := make(map[donburi.Entity]struct{}, len(destroy))
	for _, e := range destroy {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		if ecs.World.Valid(e) {
			ecs.World.Remove(e)
		}
	}

	for _, spawn := range spawns {
		spawn(ecs)
	}
}

func commandsOf(ecs *ecs.ECS) *components.CommandsData {
	entry, ok := components.Commands.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Commands.Get(entry)
}

// deltaOf returns the seconds elapsed this tick.
func deltaOf(ecs *ecs.ECS) float64 {
	entry, ok := components.Frame.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Frame.Get(entry).Delta
}

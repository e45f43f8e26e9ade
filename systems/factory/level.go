package factory

import (
	"github.com/automoto/tracer/collision"
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DefaultArena is the built-in layout: one 500×50 wall below the spawn point.
func DefaultArena() *leveldata.Arena {
	return &leveldata.Arena{
		Name: "default",
		Walls: []leveldata.WallRect{
			{X: -250, Y: -125, W: 500, H: 50},
		},
		Spawn:  leveldata.SpawnPoint{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY},
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
	}
}

// CreateArena creates the walls and the player of arena. The collision world
// must already exist.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	for _, w := range arena.Walls {
		CreateWall(ecs, collision.Rect{X: w.X, Y: w.Y, W: w.W, H: w.H})
	}
	return CreatePlayer(ecs, arena.Spawn.X, arena.Spawn.Y)
}

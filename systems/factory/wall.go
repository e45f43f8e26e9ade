package factory

import (
	"log"

	"github.com/automoto/tracer/archetypes"
	"github.com/automoto/tracer/collision"
	"github.com/automoto/tracer/components"
	"github.com/automoto/tracer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, rect collision.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	components.Obstacle.SetValue(wall, components.ObstacleData{Rect: rect})

	// Add to the collision world if it exists
	if entry, ok := components.Collision.First(ecs.World); ok {
		if world, ok := components.Collision.Get(entry).Query.(collision.World); ok {
			if err := world.AddObstacle(wall.Entity(), rect, tags.ResolvSolid); err != nil {
				log.Printf("Warning: Could not register wall %+v: %v", rect, err)
			}
		}
	}

	return wall
}

package factory

import (
	"fmt"

	"github.com/automoto/tracer/archetypes"
	"github.com/automoto/tracer/collision"
	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCollisionWorld creates the scene's collision backend, selected by
// cfg.Collision.Backend, covering a width×height arena.
func CreateCollisionWorld(ecs *ecs.ECS, width, height float64) (*donburi.Entry, error) {
	world, err := collision.New(cfg.Collision.Backend, width, height, cfg.Collision.CellWidth, cfg.Collision.CellHeight)
	if err != nil {
		return nil, fmt.Errorf("create collision world: %w", err)
	}
	entry := archetypes.Collision.Spawn(ecs)
	components.Collision.SetValue(entry, components.CollisionData{Query: world})
	return entry, nil
}

package factory

import (
	"github.com/automoto/tracer/archetypes"
	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/yohamta/donburi/ecs"
)

// CreateResources creates the per-scene singletons the systems read: frame
// timing, input, the command buffer and debug toggles.
func CreateResources(ecs *ecs.ECS) {
	frame := archetypes.Frame.Spawn(ecs)
	components.Frame.SetValue(frame, components.FrameData{Delta: 1 / float64(cfg.C.TPS)})

	archetypes.Input.Spawn(ecs)
	archetypes.Commands.Spawn(ecs)

	debug := archetypes.Debug.Spawn(ecs)
	components.Debug.SetValue(debug, components.DebugData{DrawColliders: cfg.Debug.DrawColliders})
}

package systems

import (
	"log"

	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/automoto/tracer/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// RespondToImpact reflects the incoming direction about the surface normal
// and queues a debris effect at the hit point, turned so the debris cone
// points along the reflection.
func RespondToImpact(ecs *ecs.ECS, point, normal, direction gamemath.Vec2) {
	cmds := commandsOf(ecs)
	if cmds == nil {
		return
	}
	reflected := gamemath.Reflect(direction, normal)
	rotation := gamemath.Heading(reflected, cfg.Impact.OrientationOffset)

	cmds.Spawn(func(ecs *ecs.ECS) {
		factory.CreateImpactEffect(ecs, point, rotation, reflected, normal)
	})
	if cfg.Debug.Verbose {
		log.Printf("impact at (%.1f, %.1f) normal (%.2f, %.2f) reflected (%.1f, %.1f)",
			point.X, point.Y, normal.X, normal.Y, reflected.X, reflected.Y)
	}
}

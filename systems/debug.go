package systems

import (
	"fmt"

	"github.com/automoto/tracer/components"
	"github.com/automoto/tracer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Stats counts live simulation objects.
type Stats struct {
	Projectiles int
	Impacts     int
	Effects     int
	Particles   int
}

func CollectStats(ecs *ecs.ECS) Stats {
	var s Stats
	tags.Projectile.Each(ecs.World, func(*donburi.Entry) { s.Projectiles++ })
	tags.ImpactEffect.Each(ecs.World, func(*donburi.Entry) { s.Impacts++ })
	if fxEntry, ok := components.Effects.First(ecs.World); ok {
		fx := components.Effects.Get(fxEntry)
		s.Effects = fx.Emitter.Len()
		s.Particles = fx.Emitter.ParticleCount()
	}
	return s
}

func drawStats(ecs *ecs.ECS, screen *ebiten.Image) {
	s := CollectStats(ecs)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS %0.1f  FPS %0.1f\nprojectiles %d  impacts %d\neffects %d  particles %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		s.Projectiles, s.Impacts, s.Effects, s.Particles,
	))
}

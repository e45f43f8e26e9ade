package components

import (
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ProjectileData is a bullet in flight. Direction is already scaled to the
// projectile speed and never changes after spawn.
type ProjectileData struct {
	Direction gamemath.Vec2
}

var Projectile = donburi.NewComponentType[ProjectileData]()

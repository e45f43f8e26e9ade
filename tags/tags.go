package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Wall         = donburi.NewTag().SetName("Wall")
	Projectile   = donburi.NewTag().SetName("Projectile")
	ImpactEffect = donburi.NewTag().SetName("ImpactEffect")
)

// Collision tags carried by obstacles in the collision world
const (
	ResolvSolid = "solid"
)

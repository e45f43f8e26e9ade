package systems

import (
	"log"

	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// expiryEpsilon absorbs float drift, so ten 0.1 s ticks expire a 1.0 s
// lifetime on the tenth tick.
const expiryEpsilon = 1e-9

// UpdateLifetimes charges per-tick lifetimes and destroys every entity whose
// lifetime has run out. Travel lifetimes are charged by the motion system.
func UpdateLifetimes(ecs *ecs.ECS) {
	dt := deltaOf(ecs)
	cmds := commandsOf(ecs)
	if cmds == nil {
		return
	}

	components.Lifetime.Each(ecs.World, func(e *donburi.Entry) {
		lt := components.Lifetime.Get(e)
		if lt.Decay == components.DecayPerTick {
			lt.Remaining -= dt
		}
		if lt.Remaining <= expiryEpsilon {
			cmds.Destroy(e.Entity())
			if cfg.Debug.Verbose {
				log.Printf("entity %v expired (%s)", e.Entity(), lt.Cause)
			}
		}
	})
}

package systems

import (
	"fmt"
	"log"

	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/shared/emission"
	"github.com/automoto/tracer/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// ApplyTuning validates t, installs it and re-registers the bullet effects so
// later spawns use the new descriptors. Running effects keep their program.
// A different collision backend only takes effect in a new scene.
func ApplyTuning(ecs *ecs.ECS, t cfg.Tuning) error {
	for _, c := range []cfg.EmitterConfig{t.Trail, t.Debris} {
		d, err := factory.DescriptorFromConfig(c)
		if err != nil {
			return fmt.Errorf("%w: %v", cfg.ErrInvalidTuning, err)
		}
		if _, err := emission.Compile(d); err != nil {
			return fmt.Errorf("%w: %v", cfg.ErrInvalidTuning, err)
		}
	}

	backend := cfg.Collision.Backend
	if err := cfg.ApplyTuning(t); err != nil {
		return err
	}
	if t.Collision.Backend != backend {
		log.Printf("Collision backend %q takes effect on the next scene", t.Collision.Backend)
	}

	if ecs == nil {
		return nil
	}
	fxEntry, ok := components.Effects.First(ecs.World)
	if !ok {
		return nil
	}
	fx := components.Effects.Get(fxEntry)
	trail, debris, err := factory.RegisterBulletEffects(fx.Registry, t.Trail, t.Debris)
	if err != nil {
		return err
	}
	fx.Trail, fx.Debris = trail, debris
	return nil
}

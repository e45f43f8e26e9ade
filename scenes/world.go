package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"
	"time"

	"github.com/automoto/tracer/assets"
	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/shared/leveldata"
	"github.com/automoto/tracer/systems"
	"github.com/automoto/tracer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene is the single playable scene: one player, the arena walls and
// every projectile and effect in flight.
type ArenaScene struct {
	ecs     *ecs.ECS
	arena   string
	watcher *cfg.Watcher
	once    sync.Once
}

// NewArenaScene creates a scene for the embedded arena with the given name.
// An arena that fails to load falls back to the built-in layout.
func NewArenaScene(arena string) *ArenaScene {
	return &ArenaScene{arena: arena}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.reloadTuning()

	frame := components.Frame.Get(components.Frame.MustFirst(as.ecs.World))
	frame.Delta = 1 / float64(ebiten.TPS())
	frame.Tick++

	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// Close stops watching the tuning file.
func (as *ArenaScene) Close() error {
	if as.watcher == nil {
		return nil
	}
	return as.watcher.Close()
}

func (as *ArenaScene) configure() {
	as.loadTuningFile()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input is polled before anything reads it
	ecs.AddSystem(systems.UpdateInput)
	if err := systems.NewSimulationPipeline().Install(ecs); err != nil {
		panic("failed to order systems: " + err.Error())
	}

	ecs.AddRenderer(cfg.Default, systems.DrawWalls)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Effects, systems.DrawEffects)
	ecs.AddRenderer(cfg.Effects, systems.DrawProjectiles)
	ecs.AddRenderer(cfg.Debug, systems.DrawDebug)

	as.ecs = ecs

	arena := as.loadArena()
	factory.CreateResources(as.ecs)
	if _, err := factory.CreateCollisionWorld(as.ecs, arena.Width, arena.Height); err != nil {
		panic(err)
	}

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if _, err := factory.CreateEffects(as.ecs, seed); err != nil {
		panic("failed to register effects: " + err.Error())
	}

	factory.CreateArena(as.ecs, arena)
	if err := systems.RequireSinglePlayer(as.ecs.World); err != nil {
		panic(err)
	}

	as.watchTuning()
}

func (as *ArenaScene) loadArena() *leveldata.Arena {
	if as.arena == "" {
		return factory.DefaultArena()
	}
	arena, err := assets.LoadArena(as.arena)
	if err != nil {
		log.Printf("Warning: Could not load arena %q, using the default: %v", as.arena, err)
		return factory.DefaultArena()
	}
	return arena
}

// loadTuningFile applies the tuning file before the scene exists.
func (as *ArenaScene) loadTuningFile() {
	if cfg.Debug.TuningPath == "" {
		return
	}
	t, err := readTuning(cfg.Debug.TuningPath)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return
	}
	if err := systems.ApplyTuning(nil, t); err != nil {
		log.Printf("Warning: Could not apply tuning: %v", err)
	}
}

func (as *ArenaScene) watchTuning() {
	if cfg.Debug.TuningPath == "" {
		return
	}
	w, err := cfg.NewWatcher(cfg.Debug.TuningPath)
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", cfg.Debug.TuningPath, err)
		return
	}
	as.watcher = w
}

// reloadTuning applies a changed tuning file between ticks. A rejected file
// leaves the running configuration untouched.
func (as *ArenaScene) reloadTuning() {
	if as.watcher == nil {
		return
	}
	select {
	case path := <-as.watcher.Events:
		t, err := readTuning(path)
		if err != nil {
			log.Printf("Warning: Could not reload tuning: %v", err)
			return
		}
		if err := systems.ApplyTuning(as.ecs, t); err != nil {
			log.Printf("Warning: Rejected tuning: %v", err)
			return
		}
		if err := systems.SaveTuning(t); err != nil {
			log.Printf("Warning: Could not save tuning: %v", err)
		}
		log.Printf("Reloaded tuning from %s", path)
	case err := <-as.watcher.Errors:
		log.Printf("Warning: Tuning watcher: %v", err)
	default:
	}
}

func readTuning(path string) (cfg.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg.Tuning{}, err
	}
	return cfg.LoadTuning(data)
}

package main

import (
	"flag"
	"io"
	"log"

	"github.com/automoto/tracer/config"
	"github.com/automoto/tracer/scenes"
	"github.com/automoto/tracer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(arena string) *Game {
	return &Game{scene: scenes.NewArenaScene(arena)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// Close releases whatever the scene holds open.
func (g *Game) Close() error {
	if c, ok := g.scene.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func main() {
	arena := flag.String("arena", "arena", "Embedded arena to load (empty = built-in layout)")
	tuning := flag.String("tuning", "", "YAML tuning file to load and watch")
	backend := flag.String("collision", "", "Collision backend: resolv or chipmunk (default from saved tuning, then "+config.Collision.Backend+")")
	seed := flag.Uint64("seed", 0, "Particle RNG seed (0 = time based)")
	debug := flag.Bool("debug", false, "Draw colliders and impact normals")
	verbose := flag.Bool("verbose", false, "Log every impact and expiry")
	flag.Parse()

	// Saved tuning goes in first so command line flags override it
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else if err := systems.ApplySavedTuning(); err != nil {
		log.Printf("Warning: Ignoring saved tuning: %v", err)
	}

	if *backend != "" {
		config.Collision.Backend = *backend
	}
	config.Debug.TuningPath = *tuning
	config.Debug.Seed = *seed
	config.Debug.DrawColliders = *debug
	config.Debug.Verbose = *verbose
	if err := config.CurrentTuning().Validate(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(*arena)
	err := ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("Warning: Could not close scene: %v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}

package config

import (
	"image/color"
	"math"
)

// ProjectileConfig contains bullet configuration
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`    // Units per second; every projectile's direction has this magnitude
	Lifetime float64 `yaml:"lifetime"` // Seconds before a projectile that hit nothing expires
	Size     float64 `yaml:"size"`     // Rendered square size
	TrailZ   float64 `yaml:"trail_z"`  // Z layer of the trail effect
}

// ImpactConfig contains impact (debris) effect configuration
type ImpactConfig struct {
	Lifetime float64 `yaml:"lifetime"` // Seconds the debris effect stays alive

	// OrientationOffset is subtracted from atan2 of the reflected direction so the
	// debris asset's "up" axis lines up with it. It depends on the asset, not on physics.
	OrientationOffset float64 `yaml:"orientation_offset"`
	Z                 float64 `yaml:"z"`
}

// EmitterConfig describes one particle effect. It is compiled into an emission
// program by the effect registry at startup.
type EmitterConfig struct {
	Name             string  `yaml:"name"`
	Capacity         int     `yaml:"capacity"`
	Rate             float64 `yaml:"rate"`  // Particles per second (0 = no continuous spawning)
	Burst            int     `yaml:"burst"` // Particles emitted once when the instance spawns
	ParticleLifetime float64 `yaml:"particle_lifetime"`

	// Shape: "circle" or "cone"
	Shape      string  `yaml:"shape"`
	Radius     float64 `yaml:"radius"`      // circle
	Surface    bool    `yaml:"surface"`     // circle: emit on the rim instead of the disk
	Height     float64 `yaml:"height"`      // cone
	BaseRadius float64 `yaml:"base_radius"` // cone
	TopRadius  float64 `yaml:"top_radius"`  // cone (0 = apex)
	SpeedMin   float64 `yaml:"speed_min"`
	SpeedMax   float64 `yaml:"speed_max"`

	StartColor [4]float64 `yaml:"start_color"` // RGBA 0..1 at birth
	EndColor   [4]float64 `yaml:"end_color"`   // RGBA 0..1 at death
	StartSize  float64    `yaml:"start_size"`
	EndSize    float64    `yaml:"end_size"`
}

// PlayerConfig contains player glue configuration
type PlayerConfig struct {
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	MoveSpeed    float64 `yaml:"move_speed"`    // Units per second
	AngularSpeed float64 `yaml:"angular_speed"` // Max turn rate toward the cursor, radians per second
	BodyRadius   float64 `yaml:"body_radius"`
	LegsWidth    float64 `yaml:"legs_width"`
	LegsHeight   float64 `yaml:"legs_height"`
}

// CollisionConfig selects and sizes the collision backend
type CollisionConfig struct {
	Backend    string `yaml:"backend"` // "resolv" or "chipmunk"
	CellWidth  int    `yaml:"cell_width"`
	CellHeight int    `yaml:"cell_height"`
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// Collision backends
const (
	BackendResolv   = "resolv"
	BackendChipmunk = "chipmunk"
)

// Global configuration instances
var C *Config
var Projectile ProjectileConfig
var Impact ImpactConfig
var Trail EmitterConfig
var Debris EmitterConfig
var Player PlayerConfig
var Collision CollisionConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawColliders bool
	Verbose       bool   // log every expiry and spawn
	TuningPath    string // YAML tuning file to load and watch ("" = none)
	Seed          uint64 // particle RNG seed (0 = time based)
}

// Shared RGBA color constants
var (
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1200,
		Height: 800,
		Title:  "tracer",
		TPS:    60,
	}

	Projectile = ProjectileConfig{
		Speed:    1000,
		Lifetime: 1.0,
		Size:     10,
		TrailZ:   0.1,
	}

	Impact = ImpactConfig{
		Lifetime:          5.0,
		OrientationOffset: math.Pi / 2,
		Z:                 0.2,
	}

	Trail = EmitterConfig{
		Name:             "Bullet trail",
		Capacity:         4096,
		Rate:             300,
		ParticleLifetime: 0.2,
		Shape:            "circle",
		Radius:           3,
		Surface:          true,
		SpeedMin:         1,
		SpeedMax:         1,
		StartColor:       [4]float64{0.5, 0.5, 1, 1},
		EndColor:         [4]float64{0.5, 0.5, 1, 0},
		StartSize:        1,
		EndSize:          1,
	}

	Debris = EmitterConfig{
		Name:             "Impact debris",
		Capacity:         256,
		Burst:            48,
		ParticleLifetime: 0.6,
		Shape:            "cone",
		Height:           20,
		BaseRadius:       12,
		TopRadius:        0,
		SpeedMin:         60,
		SpeedMax:         180,
		StartColor:       [4]float64{1, 0.6, 0.2, 1},
		EndColor:         [4]float64{1, 0.3, 0.1, 0},
		StartSize:        3,
		EndSize:          1,
	}

	Player = PlayerConfig{
		SpawnX:       0,
		SpawnY:       300,
		MoveSpeed:    200,
		AngularSpeed: 2 * math.Pi,
		BodyRadius:   50,
		LegsWidth:    100,
		LegsHeight:   50,
	}

	Collision = CollisionConfig{
		Backend:    BackendResolv,
		CellWidth:  16,
		CellHeight: 16,
	}
}

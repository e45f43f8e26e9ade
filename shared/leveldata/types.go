// Package leveldata parses arena layouts from TMX files. Tiled uses a y-down
// origin at the top-left corner; arenas are returned in the y-up world with
// the origin at the centre of the map.
// It is pure data with no dependency on ebitengine, donburi or resolv.
package leveldata

// Arena holds everything the simulation needs from a level file.
type Arena struct {
	Name   string
	Walls  []WallRect
	Spawn  SpawnPoint
	Width  float64
	Height float64
}

// WallRect is a static obstacle; X, Y is its minimum (bottom-left) corner.
type WallRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents the player spawn location.
type SpawnPoint struct {
	X, Y float64
}

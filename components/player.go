package components

import (
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData keeps the smoothing state of the player's body and legs.
type PlayerData struct {
	Facing       float64 // body heading, radians
	LastPosition gamemath.Vec2
	LegAngle     float64 // heading of the last movement
	Moving       bool
}

var Player = donburi.NewComponentType[PlayerData]()

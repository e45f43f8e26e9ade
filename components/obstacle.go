package components

import (
	"github.com/automoto/tracer/collision"
	"github.com/yohamta/donburi"
)

// ObstacleData is a static wall. It is registered with the collision world
// once and never changes.
type ObstacleData struct {
	Rect collision.Rect
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// CollisionData holds the scene's collision backend. A nil Query makes every
// sweep miss.
type CollisionData struct {
	Query collision.Query
}

var Collision = donburi.NewComponentType[CollisionData]()

package components

import (
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in the y-up world; the origin is the centre
// of the screen.
type TransformData struct {
	Position gamemath.Vec2
	Rotation float64 // radians, counter-clockwise
}

var Transform = donburi.NewComponentType[TransformData]()

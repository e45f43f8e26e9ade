package components

import (
	cfg "github.com/automoto/tracer/config"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

func (in *InputData) JustReleased(a cfg.ActionID) bool {
	return !in.Current[a] && in.Previous[a]
}

// Advance moves the current frame into Previous and installs next.
func (in *InputData) Advance(next [cfg.ActionCount]bool) {
	in.Previous = in.Current
	in.Current = next
}

var Input = donburi.NewComponentType[InputData]()

// AimData is the cursor in world space. Valid is false when the cursor is
// outside the window.
type AimData struct {
	Target gamemath.Vec2
	Valid  bool
}

var Aim = donburi.NewComponentType[AimData]()

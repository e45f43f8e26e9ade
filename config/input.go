package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionShoot
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMoveUp:
		return "up"
	case ActionMoveDown:
		return "down"
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionShoot:
		return "shoot"
	case ActionToggleDebug:
		return "toggle_debug"
	}
	return "none"
}

// InputBinding maps an action to physical inputs
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all action bindings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionShoot: {
				Keys:         []ebiten.Key{ebiten.KeySpace},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}

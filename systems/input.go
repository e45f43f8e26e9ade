package systems

import (
	"github.com/automoto/tracer/components"
	cfg "github.com/automoto/tracer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input and Aim components.
// Must run BEFORE the player and shooting systems.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	var current [cfg.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					current[actionID] = true
				}
			}
		}
	}
	input.Advance(current)

	aim := components.Aim.Get(entry)
	cx, cy := ebiten.CursorPosition()
	aim.Valid = ebiten.IsFocused() && cx >= 0 && cy >= 0 && cx < cfg.C.Width && cy < cfg.C.Height
	if aim.Valid {
		aim.Target = screenToWorld(float64(cx), float64(cy))
	}
}

// UpdateDebug toggles collider drawing.
func UpdateDebug(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	debugEntry, ok := components.Debug.First(ecs.World)
	if !ok {
		return
	}
	if components.Input.Get(inputEntry).JustPressed(cfg.ActionToggleDebug) {
		debug := components.Debug.Get(debugEntry)
		debug.DrawColliders = !debug.DrawColliders
	}
}

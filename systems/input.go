package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls keyboard and mouse into the Input singleton and
// projects the cursor onto the floor for aiming.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	// Swap buffers: current becomes previous, then zero out current
	input.Advance()

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	x, y := ebiten.CursorPosition()
	input.CursorX, input.CursorY = float64(x), float64(y)
	input.HasCursor = true

	UpdateAim(ecs)
}

// UpdateAim projects the cursor onto the floor. A cursor ray that misses
// the floor leaves no aim point.
func UpdateAim(ecs *ecs.ECS) {
	aimEntry, ok := components.Aim.First(ecs.World)
	if !ok {
		return
	}
	aim := components.Aim.Get(aimEntry)
	input := components.Input.Get(aimEntry)
	if !input.HasCursor {
		return
	}

	point, ok := CurrentProjection(ecs.World).Unproject(input.CursorX, input.CursorY)
	aim.Point, aim.Valid = point, ok
}

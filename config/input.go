package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPickup
	ActionThrow
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			},
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			},
			ActionPickup: {
				Keys: []ebiten.Key{ebiten.KeyE},
			},
			ActionThrow: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				Keys:         []ebiten.Key{ebiten.KeySpace},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}

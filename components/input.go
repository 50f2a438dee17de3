package components

import (
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for all
// actions, plus the cursor. Filled by the keyboard/mouse poller or by the
// autopilot.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	CursorX, CursorY float64 // screen pixels
	HasCursor        bool
}

var Input = donburi.NewComponentType[InputData]()

// Advance moves this tick's state into Previous before a new poll.
func (i *InputData) Advance() {
	i.Previous = i.Current
	i.Current = [cfg.ActionCount]bool{}
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

func (i *InputData) JustReleased(a cfg.ActionID) bool {
	return !i.Current[a] && i.Previous[a]
}

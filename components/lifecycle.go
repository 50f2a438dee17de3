package components

import (
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DespawnData destroys its entity when the timer runs out.
type DespawnData struct {
	Timer Timer
}

var Despawn = donburi.NewComponentType[DespawnData]()

// MoveTruckData drives a truck along its facing until the timer runs out,
// then puts it back at Origin.
type MoveTruckData struct {
	Origin gamemath.Vec3
	Timer  Timer
}

var MoveTruck = donburi.NewComponentType[MoveTruckData]()

// ShrinkData scales a despawning entity down to nothing.
type ShrinkData struct {
	Tween *gween.Tween
	Scale float64
}

var Shrink = donburi.NewComponentType[ShrinkData]()

// PulseData is a looping scale animation that runs Tween forward then back.
type PulseData struct {
	Tween   *gween.Tween
	Scale   float64
	Reverse bool
}

var Pulse = donburi.NewComponentType[PulseData]()

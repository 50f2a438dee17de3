package components

import (
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing gamemath.Vec3 // unit vector on the ground plane
	Speed  float64
	Stack  donburi.Entity
	Bounds gamemath.Rect // where the player may walk
}

var Player = donburi.NewComponentType[PlayerData]()

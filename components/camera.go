package components

import (
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is the ground point drawn at the centre of the screen.
type CameraData struct {
	Focus gamemath.Vec3
}

var Camera = donburi.NewComponentType[CameraData]()

package components

import (
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world placement. Y is height above the floor.
type TransformData struct {
	Position gamemath.Vec3
	Rotation float64 // around the vertical axis, radians
	Scale    float64
}

var Transform = donburi.NewComponentType[TransformData]()

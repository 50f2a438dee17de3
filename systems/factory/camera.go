package factory

import (
	"github.com/parcelrush/blackfriday/archetypes"
	"github.com/parcelrush/blackfriday/components"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, focus gamemath.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Focus: focus})
	return camera
}

package systems

import (
	"github.com/parcelrush/blackfriday/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every registered footprint under its entity's
// transform and refreshes its cells.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if !obj.InSpace() || !e.HasComponent(components.Transform) {
			return
		}
		pos := components.Transform.Get(e).Position
		obj.X = pos.X - obj.W/2
		obj.Y = pos.Z - obj.H/2
		obj.Update()
	})
}

package systems

import (
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/systems/factory"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBounds handles parcels that fell off the floor. Below the collider
// height they leave the spatial index, below the destroy height they are
// removed from the world.
func UpdateBounds(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	tags.Parcel.Each(ecs.World, func(e *donburi.Entry) {
		parcel := components.Parcel.Get(e)
		switch parcel.Phase {
		case components.PhaseHeld:
			return
		case components.PhaseFree, components.PhaseDespawning:
		}
		if parcel.Slot.IsSet() {
			return
		}

		y := components.Transform.Get(e).Position.Y
		switch {
		case y <= cfg.Bounds.DestroyHeight:
			toDestroy = append(toDestroy, e)
		case y <= cfg.Bounds.DisableColliderHeight:
			factory.RemoveFromSpace(components.Object.Get(e).Object)
		}
	})

	for _, e := range toDestroy {
		destroyEntity(ecs, e)
	}
}

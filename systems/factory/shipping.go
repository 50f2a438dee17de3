package factory

import (
	"math"

	"github.com/parcelrush/blackfriday/archetypes"
	"github.com/parcelrush/blackfriday/components"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShippingArea spawns a delivery zone covering bounds. The truck is
// linked afterwards with LinkTruck.
func CreateShippingArea(ecs *ecs.ECS, agent components.AgentCode, bounds gamemath.Rect) *donburi.Entry {
	zone := archetypes.ShippingArea.Spawn(ecs)

	obj := resolv.NewObject(bounds.MinX, bounds.MinZ, bounds.Width(), bounds.Depth(), tags.ResolvShippingArea)
	obj.Data = zone
	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	AddToSpace(ecs, obj)

	components.ShippingArea.SetValue(zone, components.ShippingAreaData{
		Agent:  agent,
		Bounds: bounds,
	})
	return zone
}

// CreateTruck spawns a parked truck at pos that drives off along facing.
func CreateTruck(ecs *ecs.ECS, agent components.AgentCode, pos, facing gamemath.Vec3) *donburi.Entry {
	truck := archetypes.Truck.Spawn(ecs)
	facing = facing.Flat().Normalize()
	components.Truck.SetValue(truck, components.TruckData{
		Agent:  agent,
		Facing: facing,
	})
	components.Transform.SetValue(truck, components.TransformData{
		Position: pos,
		Rotation: math.Atan2(facing.Z, facing.X),
		Scale:    1,
	})
	return truck
}

// LinkTruck makes truck the one that leaves when zone receives a parcel.
func LinkTruck(zone, truck *donburi.Entry) {
	components.ShippingArea.Get(zone).Truck = components.RefTo(truck.Entity())
}

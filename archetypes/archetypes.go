package archetypes

import (
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Parcel = newArchetype(
		tags.Parcel,
		components.Parcel,
		components.Transform,
		components.Physics,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
		components.Pulse,
	)
	ParcelStack = newArchetype(
		tags.ParcelStack,
		components.ParcelStack,
		components.Transform,
	)
	StackSlot = newArchetype(
		tags.StackSlot,
		components.StackSlot,
		components.Transform,
	)
	ShippingArea = newArchetype(
		tags.ShippingArea,
		components.ShippingArea,
		components.Object,
	)
	Truck = newArchetype(
		tags.Truck,
		components.Truck,
		components.Transform,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Score,
		components.ClosestParcel,
		components.Aim,
		components.Spawner,
		components.Match,
		components.Input,
		components.Events,
		components.Contacts,
	)
	GameOver = newArchetype(
		components.GameOver,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package factory

import (
	"github.com/parcelrush/blackfriday/archetypes"
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at (x, z) together with its parcel stack.
// bounds limits where the player can walk.
func CreatePlayer(ecs *ecs.ECS, x, z float64, bounds gamemath.Rect) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := footprint(x, z, cfg.Player.Size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	AddToSpace(ecs, obj)

	components.Transform.SetValue(player, components.TransformData{
		Position: gamemath.V3(x, 0, z),
		Scale:    1,
	})
	components.Pulse.SetValue(player, components.PulseData{
		Tween: gween.New(1, float32(cfg.Player.PulseScale), float32(cfg.Player.PulsePeriod), ease.InOutSine),
		Scale: 1,
	})

	stack := CreateParcelStack(ecs, player)
	components.Player.SetValue(player, components.PlayerData{
		Facing: gamemath.V3(1, 0, 0),
		Speed:  cfg.Player.Speed,
		Stack:  stack.Entity(),
		Bounds: bounds,
	})

	return player
}

// CreateParcelStack spawns an empty stack anchored above owner.
func CreateParcelStack(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	stack := archetypes.ParcelStack.Spawn(ecs)
	components.ParcelStack.SetValue(stack, components.ParcelStackData{
		Owner:    owner.Entity(),
		Capacity: cfg.Stack.Capacity,
	})

	anchor := gamemath.V3(0, cfg.Stack.AnchorHeight, 0)
	if owner.HasComponent(components.Transform) {
		anchor = anchor.Add(components.Transform.Get(owner).Position)
	}
	components.Transform.SetValue(stack, components.TransformData{Position: anchor, Scale: 1})
	return stack
}

// CreateStackSlot spawns the slot entity holding parcel at index.
func CreateStackSlot(ecs *ecs.ECS, stack *donburi.Entry, parcel donburi.Entity, index int) *donburi.Entry {
	slot := archetypes.StackSlot.Spawn(ecs)
	components.StackSlot.SetValue(slot, components.StackSlotData{
		Parcel: components.RefTo(parcel),
		Index:  index,
		Stack:  stack.Entity(),
	})
	components.Transform.SetValue(slot, components.TransformData{
		Position: components.Transform.Get(stack).Position.Add(SlotPosition(index)),
		Scale:    1,
	})
	return slot
}

// SlotPosition is a slot's offset from the stack anchor.
func SlotPosition(index int) gamemath.Vec3 {
	return gamemath.V3(0, float64(index)*cfg.Stack.Spacing, 0)
}

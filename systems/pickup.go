package systems

import (
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickup turns the pickup and throw actions into stack events.
func UpdatePickup(ecs *ecs.ECS) {
	if !IsMatchPlaying(ecs) {
		return
	}
	sessionEntry, ok := components.Events.First(ecs.World)
	if !ok {
		return
	}
	events := components.Events.Get(sessionEntry)
	input := components.Input.Get(sessionEntry)
	closest := components.ClosestParcel.Get(sessionEntry)

	stackEntry, ok := playerStack(ecs.World)
	if !ok {
		return
	}
	stack := components.ParcelStack.Get(stackEntry)

	if input.JustPressed(cfg.ActionPickup) {
		if parcel, ok := closest.Parcel.Entity(); ok && !stack.Full() {
			events.Adds.Push(components.AddToStack{Parcel: parcel})
			closest.Parcel.Clear()
		}
	}

	if input.JustPressed(cfg.ActionThrow) {
		if top, ok := stack.Top(); ok {
			events.Pops.Push(components.PopFromStack{Slot: top})
		}
	}
}

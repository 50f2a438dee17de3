package systems

import (
	"time"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AttachDespawn schedules entry for destruction after d, replacing any
// pending despawn. Parcels also get a shrink-out over the same time.
func AttachDespawn(entry *donburi.Entry, d time.Duration) {
	timer := components.NewTimer(d, false)
	if entry.HasComponent(components.Despawn) {
		components.Despawn.Get(entry).Timer = timer
	} else {
		entry.AddComponent(components.Despawn)
		components.Despawn.SetValue(entry, components.DespawnData{Timer: timer})
	}

	if !entry.HasComponent(components.Parcel) {
		return
	}
	seconds := float32(d.Seconds())
	if seconds <= 0 {
		seconds = float32(cfg.Dt())
	}
	shrink := components.ShrinkData{Tween: gween.New(1, 0, seconds, ease.InQuad), Scale: 1}
	if entry.HasComponent(components.Shrink) {
		components.Shrink.Set(entry, &shrink)
	} else {
		entry.AddComponent(components.Shrink)
		components.Shrink.SetValue(entry, shrink)
	}
}

// AttachMoveTruck sends entry off along its facing for d, after which it
// returns to where it started. Replacing a running MoveTruck keeps the
// original parking spot.
func AttachMoveTruck(entry *donburi.Entry, d time.Duration) {
	timer := components.NewTimer(d, false)
	if entry.HasComponent(components.MoveTruck) {
		components.MoveTruck.Get(entry).Timer = timer
		return
	}
	entry.AddComponent(components.MoveTruck)
	components.MoveTruck.SetValue(entry, components.MoveTruckData{
		Origin: components.Transform.Get(entry).Position,
		Timer:  timer,
	})
}

// UpdateLifecycle advances despawn and truck timers and runs their
// terminal actions.
func UpdateLifecycle(ecs *ecs.ECS) {
	dt := cfg.Dt()

	var expired []*donburi.Entry
	components.Despawn.Each(ecs.World, func(e *donburi.Entry) {
		if components.Despawn.Get(e).Timer.Tick(dt) {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		despawn(ecs, e)
	}

	var parked []*donburi.Entry
	components.MoveTruck.Each(ecs.World, func(e *donburi.Entry) {
		move := components.MoveTruck.Get(e)
		transform := components.Transform.Get(e)
		if move.Timer.Tick(dt) {
			transform.Position = move.Origin
			parked = append(parked, e)
			return
		}
		transform.Position = transform.Position.Add(truckFacing(e).Scale(cfg.Truck.Speed * dt))
	})
	for _, e := range parked {
		e.RemoveComponent(components.MoveTruck)
	}
}

// despawn destroys e. A parcel still sitting in a stack slot is popped
// first so the stack never points at a destroyed parcel.
func despawn(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Parcel) {
		parcel := components.Parcel.Get(e)
		if slotEntry, ok := parcel.Slot.Entry(ecs.World); ok {
			if eventsEntry, ok := components.Events.First(ecs.World); ok {
				components.Events.Get(eventsEntry).Pops.Push(components.PopFromStack{
					Slot:       slotEntry.Entity(),
					Despawning: true,
				})
			}
			components.StackSlot.Get(slotEntry).Parcel.Clear()
		}
		parcel.Slot.Clear()
	}
	destroyEntity(ecs, e)
}

// destroyEntity removes e from the world along with its footprint and any
// ClosestParcel reference to it.
func destroyEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	clearClosest(ecs.World, e.Entity())
	if e.HasComponent(components.Object) {
		factory.RemoveFromSpace(components.Object.Get(e).Object)
	}
	e.Remove()
}

func truckFacing(e *donburi.Entry) gamemath.Vec3 {
	if e.HasComponent(components.Truck) {
		return components.Truck.Get(e).Facing
	}
	return gamemath.Zero
}

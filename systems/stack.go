package systems

import (
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/systems/factory"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateStackEvents is the only place the stack changes. It applies every
// queued AddToStack, then every queued PopFromStack, each in publish order.
func UpdateStackEvents(ecs *ecs.ECS) {
	eventsEntry, ok := components.Events.First(ecs.World)
	if !ok {
		return
	}
	events := components.Events.Get(eventsEntry)

	stackEntry, ok := playerStack(ecs.World)
	if !ok {
		// nothing can be applied without a stack
		events.Adds.Drain()
		events.Pops.Drain()
		return
	}

	for _, ev := range events.Adds.Drain() {
		addToStack(ecs, stackEntry, ev)
	}
	for _, ev := range events.Pops.Drain() {
		popFromStack(ecs, stackEntry, ev)
	}
}

// UpdateStack keeps the stack anchored above its owner and every held
// parcel on its slot.
func UpdateStack(ecs *ecs.ECS) {
	tags.ParcelStack.Each(ecs.World, func(e *donburi.Entry) {
		restack(ecs.World, e)
	})
}

func addToStack(ecs *ecs.ECS, stackEntry *donburi.Entry, ev components.AddToStack) {
	stack := components.ParcelStack.Get(stackEntry)
	if stack.Full() || !ecs.World.Valid(ev.Parcel) {
		return
	}
	parcelEntry := ecs.World.Entry(ev.Parcel)
	if !pickable(parcelEntry) {
		return
	}

	slot := factory.CreateStackSlot(ecs, stackEntry, ev.Parcel, stack.Len())
	stack.Slots = append(stack.Slots, slot.Entity())

	parcel := components.Parcel.Get(parcelEntry)
	parcel.Phase = components.PhaseHeld
	parcel.Highlighted = false
	parcel.Slot = components.RefTo(slot.Entity())

	physics := components.Physics.Get(parcelEntry)
	physics.Freeze()
	physics.Sensor = true

	components.Transform.Get(parcelEntry).Position = components.Transform.Get(slot).Position
	factory.RemoveFromSpace(components.Object.Get(parcelEntry).Object)
	clearClosest(ecs.World, ev.Parcel)

	logger.Debug("parcel picked up",
		zap.Stringer("agent", parcel.Agent),
		zap.Int("held", stack.Len()),
	)
}

func popFromStack(ecs *ecs.ECS, stackEntry *donburi.Entry, ev components.PopFromStack) {
	stack := components.ParcelStack.Get(stackEntry)
	if !stack.Remove(ev.Slot) {
		return
	}
	restack(ecs.World, stackEntry)

	if !ecs.World.Valid(ev.Slot) {
		return
	}
	slotEntry := ecs.World.Entry(ev.Slot)
	slot := components.StackSlot.Get(slotEntry)
	from := components.Transform.Get(slotEntry).Position

	if parcelEntry, ok := slot.Parcel.Entry(ecs.World); ok {
		parcel := components.Parcel.Get(parcelEntry)
		parcel.Slot.Clear()
		if !ev.Despawning && parcel.Phase == components.PhaseHeld {
			releaseParcel(ecs, parcelEntry, from)
		}
	}
	slotEntry.Remove()
}

// releaseParcel hands a parcel back to physics at from, thrown toward the
// aim point or dropped.
func releaseParcel(ecs *ecs.ECS, parcelEntry *donburi.Entry, from gamemath.Vec3) {
	parcel := components.Parcel.Get(parcelEntry)
	parcel.Phase = components.PhaseFree

	aim, hasAim := aimPoint(ecs.World)
	facing := gamemath.V3(1, 0, 0)
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		facing = components.Player.Get(playerEntry).Facing
	}

	components.Transform.Get(parcelEntry).Position = from
	components.Physics.Get(parcelEntry).Release(ThrowVelocity(from, aim, hasAim, facing, cfg.Throw))

	obj := components.Object.Get(parcelEntry)
	obj.X = from.X - obj.W/2
	obj.Y = from.Z - obj.H/2
	factory.AddToSpace(ecs, obj.Object)
}

// ThrowVelocity is the launch velocity of a parcel released at from. With
// an aim point the velocity points at it, scaled and lifted, and its
// length is clamped to [Min, Max]; a degenerate direction falls back to
// facing. Without an aim point the parcel is dropped.
func ThrowVelocity(from, aim gamemath.Vec3, hasAim bool, facing gamemath.Vec3, c cfg.ThrowConfig) gamemath.Vec3 {
	if !hasAim || !aim.IsFinite() || !from.IsFinite() {
		return gamemath.V3(0, -c.Drop, 0)
	}
	v := aim.Sub(from).Scale(c.Factor).Add(gamemath.Up.Scale(c.Lift))
	return gamemath.ClampLength(v, c.Min, c.Max, facing)
}

// restack places every slot at its index and carries held parcels along.
func restack(w donburi.World, stackEntry *donburi.Entry) {
	stack := components.ParcelStack.Get(stackEntry)
	anchor := components.Transform.Get(stackEntry)
	if w.Valid(stack.Owner) {
		owner := w.Entry(stack.Owner)
		if owner.HasComponent(components.Transform) {
			anchor.Position = components.Transform.Get(owner).Position.Add(gamemath.V3(0, cfg.Stack.AnchorHeight, 0))
		}
	}

	for i, slotEntity := range stack.Slots {
		if !w.Valid(slotEntity) {
			continue
		}
		slotEntry := w.Entry(slotEntity)
		slot := components.StackSlot.Get(slotEntry)
		slot.Index = i
		pos := anchor.Position.Add(factory.SlotPosition(i))
		components.Transform.Get(slotEntry).Position = pos

		if parcelEntry, ok := slot.Parcel.Entry(w); ok {
			components.Transform.Get(parcelEntry).Position = pos
			components.Physics.Get(parcelEntry).Velocity = gamemath.Zero
		}
	}
}

// playerStack returns the single player's stack entry.
func playerStack(w donburi.World) (*donburi.Entry, bool) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return nil, false
	}
	stack := components.Player.Get(playerEntry).Stack
	if !w.Valid(stack) {
		return nil, false
	}
	return w.Entry(stack), true
}

func aimPoint(w donburi.World) (gamemath.Vec3, bool) {
	aimEntry, ok := components.Aim.First(w)
	if !ok {
		return gamemath.Zero, false
	}
	aim := components.Aim.Get(aimEntry)
	return aim.Point, aim.Valid
}

package systems

import (
	"math"
	"testing"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
)

func TestAddToStackRespectsCapacity(t *testing.T) {
	e, _ := newTestSession(t)
	var parcels []*donburi.Entry
	for i := 0; i < 4; i++ {
		parcels = append(parcels, restingParcel(e, components.Bring, 15+float64(i)*0.5, 16))
	}

	pickUp(t, e, parcels...)

	_, stack := stackOf(t, e)
	if stack.Len() != cfg.Stack.Capacity {
		t.Fatalf("stack length = %d, want %d", stack.Len(), cfg.Stack.Capacity)
	}
	for i, p := range parcels[:3] {
		parcel := components.Parcel.Get(p)
		if parcel.Phase != components.PhaseHeld || !parcel.Slot.IsSet() {
			t.Errorf("parcel %d: phase %v slot %v, want held in a slot", i, parcel.Phase, parcel.Slot.IsSet())
		}
		if components.Object.Get(p).InSpace() {
			t.Errorf("held parcel %d still has a footprint", i)
		}
	}
	extra := components.Parcel.Get(parcels[3])
	if extra.Phase != components.PhaseFree || extra.Slot.IsSet() {
		t.Errorf("parcel past capacity was changed: phase %v", extra.Phase)
	}
	if !components.Object.Get(parcels[3]).InSpace() {
		t.Error("parcel past capacity lost its footprint")
	}
}

func TestAddToStackIgnoresHeldAndMissingParcels(t *testing.T) {
	e, _ := newTestSession(t)
	p := restingParcel(e, components.DHL, 15, 16)
	pickUp(t, e, p)

	gone := restingParcel(e, components.DHL, 16, 16)
	goneEntity := gone.Entity()
	gone.Remove()

	events := eventsOf(t, e)
	events.Adds.Push(components.AddToStack{Parcel: p.Entity()})
	events.Adds.Push(components.AddToStack{Parcel: goneEntity})
	UpdateStackEvents(e)

	_, stack := stackOf(t, e)
	if stack.Len() != 1 {
		t.Errorf("stack length = %d, want 1", stack.Len())
	}
}

func TestSlotsStackAbovePlayer(t *testing.T) {
	e, player := newTestSession(t)
	pickUp(t, e,
		restingParcel(e, components.PostNord, 15, 16),
		restingParcel(e, components.DHL, 15.5, 16),
		restingParcel(e, components.Bring, 16, 16),
	)

	components.Transform.Get(player).Position = gamemath.V3(12, 0, 13)
	stackEntry, stack := stackOf(t, e)
	restack(e.World, stackEntry)

	anchor := gamemath.V3(12, cfg.Stack.AnchorHeight, 13)
	for i, slotEntity := range stack.Slots {
		slotEntry := e.World.Entry(slotEntity)
		slot := components.StackSlot.Get(slotEntry)
		want := anchor.Add(gamemath.V3(0, float64(i)*cfg.Stack.Spacing, 0))
		if slot.Index != i {
			t.Errorf("slot %d has index %d", i, slot.Index)
		}
		if got := components.Transform.Get(slotEntry).Position; !near(got, want) {
			t.Errorf("slot %d at %v, want %v", i, got, want)
		}
		parcelEntry, ok := slot.Parcel.Entry(e.World)
		if !ok {
			t.Fatalf("slot %d has no parcel", i)
		}
		if got := components.Transform.Get(parcelEntry).Position; !near(got, want) {
			t.Errorf("parcel in slot %d at %v, want %v", i, got, want)
		}
	}
}

func TestPopMiddleReindexes(t *testing.T) {
	e, _ := newTestSession(t)
	bottom := restingParcel(e, components.PostNord, 15, 16)
	middle := restingParcel(e, components.DHL, 15.5, 16)
	top := restingParcel(e, components.Bring, 16, 16)
	pickUp(t, e, bottom, middle, top)

	stackEntry, stack := stackOf(t, e)
	middleSlot := stack.Slots[1]
	topSlot := stack.Slots[2]
	from := components.Transform.Get(e.World.Entry(middleSlot)).Position

	eventsOf(t, e).Pops.Push(components.PopFromStack{Slot: middleSlot})
	UpdateStackEvents(e)

	if stack.Len() != 2 {
		t.Fatalf("stack length = %d, want 2", stack.Len())
	}
	if e.World.Valid(middleSlot) {
		t.Error("popped slot still exists")
	}
	if stack.Slots[1] != topSlot {
		t.Fatal("top slot did not move down")
	}
	topEntry := e.World.Entry(topSlot)
	if idx := components.StackSlot.Get(topEntry).Index; idx != 1 {
		t.Errorf("former top index = %d, want 1", idx)
	}
	anchor := components.Transform.Get(stackEntry).Position
	want := anchor.Add(gamemath.V3(0, cfg.Stack.Spacing, 0))
	if got := components.Transform.Get(topEntry).Position; !near(got, want) {
		t.Errorf("former top at %v, want %v", got, want)
	}

	released := components.Parcel.Get(middle)
	if released.Phase != components.PhaseFree || released.Slot.IsSet() {
		t.Errorf("popped parcel phase %v slot %v, want free and unslotted", released.Phase, released.Slot.IsSet())
	}
	physics := components.Physics.Get(middle)
	if physics.GravityScale != 1 || physics.Sensor {
		t.Errorf("popped parcel physics not restored: %+v", physics)
	}
	// No aim point: dropped straight down.
	if want := gamemath.V3(0, -cfg.Throw.Drop, 0); physics.Velocity != want {
		t.Errorf("drop velocity = %v, want %v", physics.Velocity, want)
	}
	if got := components.Transform.Get(middle).Position; !near(got, from) {
		t.Errorf("popped parcel released at %v, want %v", got, from)
	}
	if !components.Object.Get(middle).InSpace() {
		t.Error("popped parcel has no footprint")
	}
}

func TestPopUnknownSlotIsNoOp(t *testing.T) {
	e, player := newTestSession(t)
	p := restingParcel(e, components.Budbee, 15, 16)
	pickUp(t, e, p)

	_, stack := stackOf(t, e)
	before := append([]donburi.Entity(nil), stack.Slots...)

	events := eventsOf(t, e)
	events.Pops.Push(components.PopFromStack{Slot: player.Entity()})
	events.Pops.Push(components.PopFromStack{Slot: p.Entity()})
	UpdateStackEvents(e)

	if stack.Len() != len(before) || stack.Slots[0] != before[0] {
		t.Errorf("stack changed: %v -> %v", before, stack.Slots)
	}
	if components.Parcel.Get(p).Phase != components.PhaseHeld {
		t.Error("held parcel was released")
	}
}

func TestThrowUsesAimPoint(t *testing.T) {
	e, _ := newTestSession(t)
	p := restingParcel(e, components.PostNord, 15, 16)
	pickUp(t, e, p)

	aimEntry, _ := components.Aim.First(e.World)
	aim := components.Aim.Get(aimEntry)
	aim.Point, aim.Valid = gamemath.V3(15, 0, 8), true

	_, stack := stackOf(t, e)
	slot, _ := stack.Top()
	from := components.Transform.Get(e.World.Entry(slot)).Position
	eventsOf(t, e).Pops.Push(components.PopFromStack{Slot: slot})
	UpdateStackEvents(e)

	want := ThrowVelocity(from, aim.Point, true, gamemath.V3(1, 0, 0), cfg.Throw)
	if got := components.Physics.Get(p).Velocity; !near(got, want) {
		t.Errorf("throw velocity = %v, want %v", got, want)
	}
	if components.Physics.Get(p).Velocity.Z >= 0 {
		t.Error("parcel not thrown toward the aim point")
	}
}

func TestThrowVelocityMagnitude(t *testing.T) {
	cfg.Reset()
	c := cfg.Throw
	facing := gamemath.V3(1, 0, 0)
	from := gamemath.V3(15, 1, 15)

	tests := []struct {
		name   string
		aim    gamemath.Vec3
		hasAim bool
		c      cfg.ThrowConfig
	}{
		{"near aim", gamemath.V3(16, 0, 15), true, c},
		{"far aim", gamemath.V3(100, 0, -100), true, c},
		{"aim on the thrower", from, true, c},
		{"aim on the thrower without lift", from, true, cfg.ThrowConfig{Factor: 1, Min: 2, Max: 12}},
		{"huge factor", gamemath.V3(16, 0, 16), true, cfg.ThrowConfig{Factor: 1e6, Lift: 1, Min: 2, Max: 12}},
		{"non-finite aim", gamemath.V3(math.Inf(1), 0, 0), true, c},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ThrowVelocity(from, tt.aim, tt.hasAim, facing, tt.c)
			if !v.IsFinite() {
				t.Fatalf("velocity %v is not finite", v)
			}
			if !tt.aim.IsFinite() {
				if want := gamemath.V3(0, -tt.c.Drop, 0); v != want {
					t.Errorf("velocity = %v, want drop %v", v, want)
				}
				return
			}
			if l := v.Length(); l < tt.c.Min-1e-9 || l > tt.c.Max+1e-9 {
				t.Errorf("|v| = %v, want within [%v, %v]", l, tt.c.Min, tt.c.Max)
			}
		})
	}

	if v := ThrowVelocity(from, gamemath.Zero, false, facing, c); v != gamemath.V3(0, -c.Drop, 0) {
		t.Errorf("no aim velocity = %v, want a drop", v)
	}
}

func TestUpdatePickupQueuesFromInput(t *testing.T) {
	e, _ := newTestSession(t)
	p := restingParcel(e, components.DHL, 16, 15)
	UpdateAwareness(e)
	if !closestOf(t, e).Parcel.Is(p.Entity()) {
		t.Fatal("parcel next to the player is not the closest")
	}

	inputEntry, _ := components.Input.First(e.World)
	input := components.Input.Get(inputEntry)
	input.Current[cfg.ActionPickup] = true

	UpdatePickup(e)
	if closestOf(t, e).Parcel.IsSet() {
		t.Error("closest parcel not cleared after queueing the pickup")
	}
	UpdateStackEvents(e)

	_, stack := stackOf(t, e)
	if stack.Len() != 1 {
		t.Fatalf("stack length = %d, want 1", stack.Len())
	}

	// Held for a second tick: not a new press.
	input.Advance()
	input.Current[cfg.ActionPickup] = true
	input.Current[cfg.ActionThrow] = true
	UpdatePickup(e)
	UpdateStackEvents(e)
	if stack.Len() != 0 {
		t.Errorf("stack length after throw = %d, want 0", stack.Len())
	}
}

func TestStackEventsApplyAddsBeforePops(t *testing.T) {
	e, _ := newTestSession(t)
	bottom := restingParcel(e, components.PostNord, 15, 16)
	oldTop := restingParcel(e, components.DHL, 15.5, 16)
	pickUp(t, e, bottom, oldTop)
	incoming := restingParcel(e, components.Bring, 16, 16)

	stackEntry, stack := stackOf(t, e)
	top, _ := stack.Top()

	// Published pop first, add second: the add still lands first.
	events := eventsOf(t, e)
	events.Pops.Push(components.PopFromStack{Slot: top})
	events.Adds.Push(components.AddToStack{Parcel: incoming.Entity()})
	UpdateStackEvents(e)

	if stack.Len() != 2 {
		t.Fatalf("stack length = %d, want 2", stack.Len())
	}
	if components.Parcel.Get(oldTop).Phase != components.PhaseFree {
		t.Error("popped parcel is still held")
	}
	want := []*donburi.Entry{bottom, incoming}
	anchor := components.Transform.Get(stackEntry).Position
	for i, slotEntity := range stack.Slots {
		slotEntry := e.World.Entry(slotEntity)
		slot := components.StackSlot.Get(slotEntry)
		if !slot.Parcel.Is(want[i].Entity()) {
			t.Errorf("slot %d holds the wrong parcel", i)
		}
		if slot.Index != i {
			t.Errorf("slot %d has index %d", i, slot.Index)
		}
		pos := anchor.Add(gamemath.V3(0, float64(i)*cfg.Stack.Spacing, 0))
		if got := components.Transform.Get(slotEntry).Position; !near(got, pos) {
			t.Errorf("slot %d at %v, want %v", i, got, pos)
		}
	}
	if n := events.Pending(); n != 0 {
		t.Errorf("%d events left undrained", n)
	}
}

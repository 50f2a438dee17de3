package systems

import (
	"testing"
	"time"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
)

func TestDespawnFiresAfterDelay(t *testing.T) {
	tests := []struct {
		name      string
		delay     time.Duration
		wantTicks int
	}{
		{"match delay", 600 * time.Millisecond, 36},
		{"one second", time.Second, 60},
		{"zero", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestSession(t)
			p := restingParcel(e, components.Bring, 15, 16)
			AttachDespawn(p, tt.delay)

			step(e, tt.wantTicks-1, UpdateLifecycle)
			if !p.Valid() {
				t.Fatalf("parcel destroyed before tick %d", tt.wantTicks)
			}
			step(e, 1, UpdateLifecycle)
			if p.Valid() {
				t.Fatalf("parcel still alive after tick %d", tt.wantTicks)
			}
			if n := countParcels(e); n != 0 {
				t.Errorf("%d parcels left", n)
			}
		})
	}
}

func TestAttachDespawnReplacesPendingTimer(t *testing.T) {
	e, _ := newTestSession(t)
	p := restingParcel(e, components.Bring, 15, 16)

	AttachDespawn(p, time.Second)
	step(e, 30, UpdateLifecycle)
	AttachDespawn(p, time.Second)
	step(e, 59, UpdateLifecycle)
	if !p.Valid() {
		t.Fatal("replaced timer kept the old deadline")
	}
	step(e, 1, UpdateLifecycle)
	if p.Valid() {
		t.Error("parcel outlived the replacement timer")
	}
}

func TestDespawnHeldParcelEmptiesStack(t *testing.T) {
	e, _ := newTestSession(t)
	p := restingParcel(e, components.DHL, 15, 16)
	other := restingParcel(e, components.Bring, 15.5, 16)
	pickUp(t, e, p, other)

	_, stack := stackOf(t, e)
	slot := stack.Slots[0]
	AttachDespawn(p, 0)

	UpdateLifecycle(e)
	if p.Valid() {
		t.Fatal("held parcel not destroyed")
	}
	if n := eventsOf(t, e).Pops.Len(); n != 1 {
		t.Fatalf("despawn queued %d pops, want 1", n)
	}

	UpdateStackEvents(e)
	if e.World.Valid(slot) {
		t.Error("slot of the destroyed parcel still exists")
	}
	if stack.Len() != 1 {
		t.Fatalf("stack length = %d, want 1", stack.Len())
	}
	if components.Parcel.Get(other).Phase != components.PhaseHeld {
		t.Error("remaining parcel was released")
	}
	if idx := components.StackSlot.Get(e.World.Entry(stack.Slots[0])).Index; idx != 0 {
		t.Errorf("remaining slot index = %d, want 0", idx)
	}
	if n := eventsOf(t, e).Pending(); n != 0 {
		t.Errorf("%d events left undrained", n)
	}
}

func TestDespawnClearsClosestParcel(t *testing.T) {
	e, _ := newTestSession(t)
	p := restingParcel(e, components.Budbee, 16, 15)
	UpdateAwareness(e)
	if !closestOf(t, e).Parcel.Is(p.Entity()) {
		t.Fatal("parcel is not the closest")
	}

	AttachDespawn(p, 0)
	UpdateLifecycle(e)

	if closestOf(t, e).Parcel.IsSet() {
		t.Error("closest parcel still points at a destroyed entity")
	}
}

func TestMoveTruckDrivesOffAndReturns(t *testing.T) {
	e, _ := newTestSession(t)
	zone := components.ShippingArea.Get(zoneFor(t, e, components.DHL))
	truck, ok := zone.Truck.Entry(e.World)
	if !ok {
		t.Fatal("zone has no truck")
	}
	origin := components.Transform.Get(truck).Position
	facing := components.Truck.Get(truck).Facing

	AttachMoveTruck(truck, cfg.Truck.Duration)
	step(e, 60, UpdateLifecycle)

	moved := components.Transform.Get(truck).Position.Sub(origin)
	if moved.Dot(facing) <= 0 {
		t.Errorf("truck moved %v, want along %v", moved, facing)
	}
	want := origin.Add(facing.Scale(cfg.Truck.Speed * 60 * cfg.Dt()))
	if got := components.Transform.Get(truck).Position; got.Distance(want) > 1e-6 {
		t.Errorf("truck at %v after one second, want %v", got, want)
	}

	step(e, 60, UpdateLifecycle)
	if truck.HasComponent(components.MoveTruck) {
		t.Fatal("MoveTruck still attached after the duration")
	}
	if got := components.Transform.Get(truck).Position; !near(got, origin) {
		t.Errorf("truck parked at %v, want %v", got, origin)
	}
}

func TestMoveTruckReplacementKeepsOrigin(t *testing.T) {
	e, _ := newTestSession(t)
	zone := components.ShippingArea.Get(zoneFor(t, e, components.PostNord))
	truck, _ := zone.Truck.Entry(e.World)
	origin := components.Transform.Get(truck).Position

	AttachMoveTruck(truck, cfg.Truck.Duration)
	step(e, 30, UpdateLifecycle)
	AttachMoveTruck(truck, cfg.Truck.Duration)

	if got := components.MoveTruck.Get(truck).Origin; !near(got, origin) {
		t.Errorf("replacement origin = %v, want %v", got, origin)
	}
	step(e, 119, UpdateLifecycle)
	if !truck.HasComponent(components.MoveTruck) {
		t.Fatal("replacement did not restart the timer")
	}
	step(e, 1, UpdateLifecycle)
	if got := components.Transform.Get(truck).Position; !near(got, origin) {
		t.Errorf("truck parked at %v, want %v", got, origin)
	}
}

func TestShrinkRunsWithDespawn(t *testing.T) {
	e, _ := newTestSession(t)
	p := restingParcel(e, components.PostNord, 15, 16)
	AttachDespawn(p, time.Second)

	if !p.HasComponent(components.Shrink) {
		t.Fatal("despawning parcel has no shrink")
	}
	step(e, 30, UpdateEffects)
	scale := components.Transform.Get(p).Scale
	if scale <= 0 || scale >= 1 {
		t.Errorf("scale halfway through = %v, want in (0, 1)", scale)
	}
}

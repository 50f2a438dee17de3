package systems

import (
	"testing"
	"time"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/systems/factory"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
)

func TestUpdateAwarenessEmptyWorld(t *testing.T) {
	e, _ := newTestSession(t)

	UpdateAwareness(e)

	if closestOf(t, e).Parcel.IsSet() {
		t.Error("closest parcel set with no parcels around")
	}
}

func TestUpdateAwarenessHighlightsNearest(t *testing.T) {
	e, _ := newTestSession(t)
	far := restingParcel(e, components.PostNord, 17, 15)
	nearest := restingParcel(e, components.DHL, 15, 16)
	outside := restingParcel(e, components.Bring, 19, 15)

	UpdateAwareness(e)

	closest := closestOf(t, e)
	if !closest.Parcel.Is(nearest.Entity()) {
		t.Fatal("nearest parcel is not the closest")
	}
	if !components.Parcel.Get(nearest).Highlighted {
		t.Error("closest parcel is not highlighted")
	}
	for _, p := range []struct {
		name   string
		parcel *components.ParcelData
	}{
		{"far", components.Parcel.Get(far)},
		{"outside", components.Parcel.Get(outside)},
	} {
		if p.parcel.Highlighted {
			t.Errorf("%s parcel highlighted", p.name)
		}
	}

	// Same world again: same answer, still one highlight.
	UpdateAwareness(e)
	if !closestOf(t, e).Parcel.Is(nearest.Entity()) {
		t.Error("closest parcel changed without anything moving")
	}
	highlighted := 0
	for _, p := range []*components.ParcelData{
		components.Parcel.Get(far), components.Parcel.Get(nearest), components.Parcel.Get(outside),
	} {
		if p.Highlighted {
			highlighted++
		}
	}
	if highlighted != 1 {
		t.Errorf("%d parcels highlighted, want 1", highlighted)
	}
}

func TestUpdateAwarenessMovesHighlight(t *testing.T) {
	e, player := newTestSession(t)
	west := restingParcel(e, components.PostNord, 13, 15)
	east := restingParcel(e, components.DHL, 17.5, 15)

	UpdateAwareness(e)
	if !closestOf(t, e).Parcel.Is(west.Entity()) {
		t.Fatal("west parcel is not the closest")
	}

	components.Transform.Get(player).Position = gamemath.V3(17, 0, 15)
	UpdateAwareness(e)

	if !closestOf(t, e).Parcel.Is(east.Entity()) {
		t.Error("highlight did not follow the player")
	}
	if components.Parcel.Get(west).Highlighted {
		t.Error("previous closest still highlighted")
	}
}

func TestUpdateAwarenessSkipsUnpickable(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(p, player *donburi.Entry)
	}{
		{"despawning", func(p, _ *donburi.Entry) {
			components.Parcel.Get(p).Phase = components.PhaseDespawning
		}},
		{"despawn timer", func(p, _ *donburi.Entry) {
			AttachDespawn(p, time.Second)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newTestSession(t)
			p := restingParcel(e, components.Bring, 15, 16)
			tt.prepare(p, player)

			UpdateAwareness(e)

			if closestOf(t, e).Parcel.IsSet() {
				t.Error("unpickable parcel chosen")
			}
		})
	}
}

func TestUpdateAwarenessSkipsHeldParcels(t *testing.T) {
	e, _ := newTestSession(t)
	held := restingParcel(e, components.Bring, 15, 15.5)
	pickUp(t, e, held)
	free := restingParcel(e, components.DHL, 16.5, 15)

	UpdateAwareness(e)

	if !closestOf(t, e).Parcel.Is(free.Entity()) {
		t.Error("free parcel not chosen over the held one")
	}
	if components.Parcel.Get(held).Highlighted {
		t.Error("held parcel highlighted")
	}
}

func TestQueryRadius(t *testing.T) {
	e, _ := newTestSession(t)
	a := restingParcel(e, components.PostNord, 15, 15)
	b := restingParcel(e, components.DHL, 17, 15)
	restingParcel(e, components.Bring, 19, 19)

	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)

	tests := []struct {
		name   string
		radius float64
		want   int
	}{
		{"negative", -1, 0},
		{"zero", 0, 1},
		{"reaches second", 2, 2},
		{"everything", 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := QueryRadius(space, gamemath.V3(15, cfg.Parcel.Size/2, 15), tt.radius, tags.ResolvParcel)
			if len(hits) != tt.want {
				t.Fatalf("%d hits, want %d", len(hits), tt.want)
			}
			for _, h := range hits {
				if h.Entry == nil || !h.Entry.Valid() {
					t.Error("hit without a live entry")
				}
			}
		})
	}

	hits := QueryRadius(space, gamemath.V3(15, cfg.Parcel.Size/2, 15), 2, tags.ResolvParcel)
	found := map[donburi.Entity]bool{}
	for _, h := range hits {
		found[h.Entity] = true
	}
	if !found[a.Entity()] || !found[b.Entity()] {
		t.Errorf("hits %v missing the two nearest parcels", found)
	}
}

func TestUpdateAwarenessIgnoresParcelsAboveAndBelow(t *testing.T) {
	tests := []struct {
		name string
		y    float64
	}{
		{"just spawned overhead", cfg.Spawner.SpawnHeight},
		{"falling above reach", cfg.Player.PickupRadius + 0.5},
		{"fallen below the floor", -cfg.Player.PickupRadius - 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestSession(t)
			p := factory.CreateParcel(e, components.DHL, gamemath.V3(15, tt.y, 15), gamemath.Zero)

			UpdateAwareness(e)

			if closestOf(t, e).Parcel.IsSet() {
				t.Error("parcel out of reach chosen as closest")
			}
			if components.Parcel.Get(p).Highlighted {
				t.Error("parcel out of reach highlighted")
			}
		})
	}
}

func TestQueryRadiusUsesHeight(t *testing.T) {
	e, _ := newTestSession(t)
	low := restingParcel(e, components.PostNord, 15, 15)
	factory.CreateParcel(e, components.Bring, gamemath.V3(15.5, 2.5, 15), gamemath.Zero)

	spaceEntry, _ := components.Space.First(e.World)
	hits := QueryRadius(components.Space.Get(spaceEntry), gamemath.V3(15, cfg.Parcel.Size/2, 15), 1, tags.ResolvParcel)

	if len(hits) != 1 || hits[0].Entity != low.Entity() {
		t.Fatalf("hits = %v, want only the resting parcel", hits)
	}
	if got := hits[0].Position; got != components.Transform.Get(low).Position {
		t.Errorf("hit position = %v, want the parcel position", got)
	}
}

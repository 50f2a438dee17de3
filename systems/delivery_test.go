package systems

import (
	"testing"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/yohamta/donburi/ecs"
)

func scoreOf(t *testing.T, e *ecs.ECS) *components.ScoreData {
	t.Helper()
	entry, ok := components.Score.First(e.World)
	if !ok {
		t.Fatal("no score singleton")
	}
	return components.Score.Get(entry)
}

func TestDeliveryScoring(t *testing.T) {
	tests := []struct {
		name      string
		parcel    components.AgentCode
		zone      components.AgentCode
		x, z      float64
		wantScore int
		wantDelay float64
	}{
		{"matching carrier", components.PostNord, components.PostNord, 15, 5, 1, 0.6},
		{"wrong carrier", components.DHL, components.PostNord, 15, 5, -1, 0.6},
		{"matching carrier east", components.DHL, components.DHL, 25, 15, 1, 0.6},
		{"wrong carrier south", components.Budbee, components.Bring, 15, 25, -1, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestSession(t)
			p := restingParcel(e, tt.parcel, tt.x, tt.z)

			step(e, 1, UpdateCollisions, UpdateDelivery, UpdateScore)

			score := scoreOf(t, e)
			if score.Value != tt.wantScore || score.Delivered != 1 {
				t.Errorf("score = %d delivered = %d, want %d and 1", score.Value, score.Delivered, tt.wantScore)
			}

			zone := components.ShippingArea.Get(zoneFor(t, e, tt.zone))
			if zone.Received != 1 || zone.Score != tt.wantScore {
				t.Errorf("zone received %d score %d, want 1 and %d", zone.Received, zone.Score, tt.wantScore)
			}
			for _, other := range components.Agents {
				if other == tt.zone {
					continue
				}
				if z := components.ShippingArea.Get(zoneFor(t, e, other)); z.Received != 0 || z.Score != 0 {
					t.Errorf("zone %s changed: received %d score %d", other, z.Received, z.Score)
				}
			}

			truck, ok := zone.Truck.Entry(e.World)
			if !ok {
				t.Fatal("zone has no truck")
			}
			if !truck.HasComponent(components.MoveTruck) {
				t.Error("truck did not leave")
			}

			parcel := components.Parcel.Get(p)
			if parcel.Phase != components.PhaseDespawning {
				t.Errorf("parcel phase = %v, want despawning", parcel.Phase)
			}
			if !p.HasComponent(components.Despawn) {
				t.Fatal("parcel has no despawn timer")
			}
			if got := components.Despawn.Get(p).Timer.Duration; got != tt.wantDelay {
				t.Errorf("despawn delay = %v, want %v", got, tt.wantDelay)
			}
		})
	}
}

func TestDeliveryScoresEachParcelOnce(t *testing.T) {
	e, _ := newTestSession(t)
	restingParcel(e, components.PostNord, 15, 5)

	step(e, 10, UpdateCollisions, UpdateDelivery, UpdateScore)

	if score := scoreOf(t, e); score.Value != 1 || score.Delivered != 1 {
		t.Errorf("score = %d delivered = %d, want 1 and 1", score.Value, score.Delivered)
	}
	if zone := components.ShippingArea.Get(zoneFor(t, e, components.PostNord)); zone.Received != 1 {
		t.Errorf("zone received %d, want 1", zone.Received)
	}
}

func TestCollisionsIgnoreParcelsInTheAir(t *testing.T) {
	e, _ := newTestSession(t)
	p := restingParcel(e, components.PostNord, 15, 5)
	transform := components.Transform.Get(p)
	transform.Position.Y = cfg.Delivery.ContactHeight + cfg.Parcel.Size

	UpdateCollisions(e)
	if n := eventsOf(t, e).Collisions.Len(); n != 0 {
		t.Fatalf("airborne parcel reported %d contacts", n)
	}

	transform.Position.Y = cfg.Parcel.Size / 2
	UpdateCollisions(e)
	if n := eventsOf(t, e).Collisions.Len(); n != 1 {
		t.Fatalf("landed parcel reported %d contacts, want 1", n)
	}
	UpdateCollisions(e)
	if n := eventsOf(t, e).Collisions.Len(); n != 1 {
		t.Errorf("continuing contact reported again: %d queued", n)
	}
}

func TestCollisionsIgnoreTheGround(t *testing.T) {
	e, _ := newTestSession(t)
	restingParcel(e, components.PostNord, 15, 15)

	step(e, 3, UpdateCollisions, UpdateDelivery, UpdateScore)

	if score := scoreOf(t, e); score.Delivered != 0 {
		t.Errorf("parcel on the ground was delivered %d times", score.Delivered)
	}
}

func TestDeliveryIgnoresDespawningParcels(t *testing.T) {
	e, _ := newTestSession(t)
	p := restingParcel(e, components.PostNord, 15, 5)
	components.Parcel.Get(p).Phase = components.PhaseDespawning

	step(e, 1, UpdateCollisions, UpdateDelivery, UpdateScore)

	if score := scoreOf(t, e); score.Delivered != 0 {
		t.Errorf("despawning parcel delivered %d times", score.Delivered)
	}
	if zone := components.ShippingArea.Get(zoneFor(t, e, components.PostNord)); zone.Received != 0 {
		t.Errorf("zone received %d, want 0", zone.Received)
	}
}

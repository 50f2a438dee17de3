package systems

import (
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateDelivery scores every parcel that touched a shipping area this
// tick. Contacts that are not exactly one live parcel and one zone are
// ignored.
func UpdateDelivery(ecs *ecs.ECS) {
	eventsEntry, ok := components.Events.First(ecs.World)
	if !ok {
		return
	}
	events := components.Events.Get(eventsEntry)

	for _, ev := range events.Collisions.Drain() {
		parcel, zone, ok := classifyContact(ecs.World, ev)
		if !ok {
			continue
		}
		deliver(ecs, events, parcel, zone)
	}
}

func classifyContact(w donburi.World, ev components.CollisionStarted) (parcel, zone *donburi.Entry, ok bool) {
	a, aok := liveEntry(w, ev.A)
	b, bok := liveEntry(w, ev.B)
	if !aok || !bok {
		return nil, nil, false
	}
	switch {
	case isLiveParcel(a) && isZone(b):
		return a, b, true
	case isLiveParcel(b) && isZone(a):
		return b, a, true
	}
	return nil, nil, false
}

func liveEntry(w donburi.World, e donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(e) {
		return nil, false
	}
	return w.Entry(e), true
}

// isLiveParcel reports whether e is a parcel that can still be scored.
func isLiveParcel(e *donburi.Entry) bool {
	if !e.HasComponent(tags.Parcel) || e.HasComponent(components.Despawn) {
		return false
	}
	switch components.Parcel.Get(e).Phase {
	case components.PhaseFree, components.PhaseHeld:
		return true
	case components.PhaseDespawning:
		return false
	}
	return false
}

func isZone(e *donburi.Entry) bool {
	return e.HasComponent(components.ShippingArea)
}

func deliver(ecs *ecs.ECS, events *components.EventsData, parcelEntry, zoneEntry *donburi.Entry) {
	parcel := components.Parcel.Get(parcelEntry)
	zone := components.ShippingArea.Get(zoneEntry)

	delta, delay := cfg.Delivery.MismatchScore, cfg.Delivery.MismatchDelay
	if parcel.Agent == zone.Agent {
		delta, delay = cfg.Delivery.MatchScore, cfg.Delivery.MatchDelay
	}

	parcel.Phase = components.PhaseDespawning
	parcel.Highlighted = false
	components.Physics.Get(parcelEntry).Sensor = true
	AttachDespawn(parcelEntry, delay)

	clearClosest(ecs.World, parcelEntry.Entity())

	events.Scores.Push(components.ScoreDelta{
		Delta:  delta,
		Agent:  parcel.Agent,
		Zone:   zoneEntry.Entity(),
		Parcel: parcelEntry.Entity(),
	})

	zone.Received++
	zone.Score += delta

	if truck, ok := zone.Truck.Entry(ecs.World); ok && !truck.HasComponent(components.MoveTruck) {
		AttachMoveTruck(truck, cfg.Truck.Duration)
	}

	logger.Debug("parcel delivered",
		zap.Stringer("parcel", parcel.Agent),
		zap.Stringer("zone", zone.Agent),
		zap.Int("delta", delta),
	)
}

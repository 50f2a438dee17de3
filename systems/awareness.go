package systems

import (
	"math"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAwareness picks the nearest pickable parcel around the player and
// moves the highlight onto it. Ties keep the first parcel found.
func UpdateAwareness(ecs *ecs.ECS) {
	closestEntry, ok := components.ClosestParcel.First(ecs.World)
	if !ok {
		return
	}
	closest := components.ClosestParcel.Get(closestEntry)

	var candidate *donburi.Entry
	playerEntry, hasPlayer := tags.Player.First(ecs.World)
	spaceEntry, hasSpace := components.Space.First(ecs.World)
	if hasPlayer && hasSpace {
		center := components.Transform.Get(playerEntry).Position
		space := components.Space.Get(spaceEntry)

		best := math.Inf(1)
		for _, hit := range QueryRadius(space, center, cfg.Player.PickupRadius, tags.ResolvParcel) {
			if !pickable(hit.Entry) {
				continue
			}
			if d := hit.Position.Distance(center); d < best {
				best = d
				candidate = hit.Entry
			}
		}
	}

	if prev, ok := closest.Parcel.Entry(ecs.World); ok && prev.HasComponent(components.Parcel) {
		components.Parcel.Get(prev).Highlighted = false
	}
	closest.Parcel.Clear()

	if candidate != nil {
		components.Parcel.Get(candidate).Highlighted = true
		closest.Parcel.Set(candidate.Entity())
	}
}

// pickable reports whether a parcel may be added to the stack.
func pickable(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(tags.Parcel) || e.HasComponent(components.Despawn) {
		return false
	}
	switch components.Parcel.Get(e).Phase {
	case components.PhaseFree:
		return true
	case components.PhaseHeld, components.PhaseDespawning:
		return false
	}
	return false
}

// clearClosest empties ClosestParcel if it points at e.
func clearClosest(w donburi.World, e donburi.Entity) {
	closestEntry, ok := components.ClosestParcel.First(w)
	if !ok {
		return
	}
	closest := components.ClosestParcel.Get(closestEntry)
	if closest.Parcel.Is(e) {
		closest.Parcel.Clear()
	}
}

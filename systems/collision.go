package systems

import (
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions reports parcels touching shipping areas. A parcel
// touches a zone when its footprint overlaps the zone's and it is low
// enough. Each contact is reported once when it starts; a pair has to
// separate before it is reported again.
func UpdateCollisions(ecs *ecs.ECS) {
	sessionEntry, ok := components.Contacts.First(ecs.World)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(sessionEntry)
	events := components.Events.Get(sessionEntry)

	current := make(map[[2]donburi.Entity]bool, len(contacts.Pairs))
	half := cfg.Parcel.Size / 2

	tags.Parcel.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if !obj.InSpace() {
			return
		}
		if components.Transform.Get(e).Position.Y-half > cfg.Delivery.ContactHeight {
			return
		}

		check := obj.Check(0, 0, tags.ResolvShippingArea)
		if check == nil {
			return
		}
		for _, zoneObj := range check.ObjectsByTags(tags.ResolvShippingArea) {
			if !overlaps(obj.Object, zoneObj) {
				continue
			}
			zone, ok := zoneObj.Data.(*donburi.Entry)
			if !ok || !zone.Valid() {
				continue
			}
			pair := [2]donburi.Entity{e.Entity(), zone.Entity()}
			current[pair] = true
			if !contacts.Pairs[pair] {
				events.Collisions.Push(components.CollisionStarted{A: e.Entity(), B: zone.Entity()})
			}
		}
	})

	contacts.Pairs = current
}

package systems

import (
	"github.com/parcelrush/blackfriday/components"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpatialHit is one footprint found by QueryRadius.
type SpatialHit struct {
	Position gamemath.Vec3 // entity position, or the footprint centre at floor level without a transform
	Entity   donburi.Entity
	Entry    *donburi.Entry
}

// QueryRadius returns every live entity within radius of center. The
// ground cells under the sphere are the broad phase; the distance test uses
// the entity's full position, so bodies far above or below are excluded.
// With tags, only footprints carrying all of them are considered. Results are in cell order, then in the order
// objects were added to each cell.
func QueryRadius(space *resolv.Space, center gamemath.Vec3, radius float64, tags ...string) []SpatialHit {
	if space == nil || radius < 0 {
		return nil
	}

	minX, minY := space.WorldToSpace(center.X-radius, center.Z-radius)
	maxX, maxY := space.WorldToSpace(center.X+radius, center.Z+radius)

	var hits []SpatialHit
	seen := make(map[*resolv.Object]struct{})
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			cell := space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if _, dup := seen[o]; dup {
					continue
				}
				seen[o] = struct{}{}

				if len(tags) > 0 && !o.HasTags(tags...) {
					continue
				}
				entry, ok := o.Data.(*donburi.Entry)
				if !ok || !entry.Valid() {
					continue
				}
				pos := gamemath.V3(o.X+o.W/2, 0, o.Y+o.H/2)
				if entry.HasComponent(components.Transform) {
					pos = components.Transform.Get(entry).Position
				}
				if pos.Distance(center) > radius {
					continue
				}
				hits = append(hits, SpatialHit{Position: pos, Entity: entry.Entity(), Entry: entry})
			}
		}
	}
	return hits
}

// overlaps is a strict AABB test between two footprints.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

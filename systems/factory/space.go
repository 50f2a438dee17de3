package factory

import (
	"math"

	"github.com/parcelrush/blackfriday/archetypes"
	"github.com/parcelrush/blackfriday/components"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the footprint grid covering bounds. The space origin
// is the world origin.
func CreateSpace(ecs *ecs.ECS, bounds gamemath.Rect, cellSize int) *donburi.Entry {
	if cellSize < 1 {
		cellSize = 1
	}
	width := int(math.Ceil(bounds.MaxX))
	depth := int(math.Ceil(bounds.MaxZ))
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, depth, cellSize, cellSize)
	components.Space.Set(space, spaceData)
	return space
}

// AddToSpace registers obj with the session space if there is one.
func AddToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if obj == nil || obj.Space != nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// RemoveFromSpace unregisters obj. Removing an object that is not in a
// space is a no-op.
func RemoveFromSpace(obj *resolv.Object) {
	if obj == nil || obj.Space == nil {
		return
	}
	obj.Space.Remove(obj)
}

// footprint builds a square ground-plane object centred on (x, z).
func footprint(x, z, size float64, tags ...string) *resolv.Object {
	return resolv.NewObject(x-size/2, z-size/2, size, size, tags...)
}

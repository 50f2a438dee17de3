package components

import (
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
)

// LevelData describes the loaded warehouse floor.
type LevelData struct {
	Name   string
	Ground gamemath.Rect   // where parcels spawn and the player walks
	Floors []gamemath.Rect // every surface a parcel can rest on, ground first
	Bounds gamemath.Rect   // extent of the resolv space
}

var Level = donburi.NewComponentType[LevelData]()

// OnFloor reports whether p is above any walkable surface.
func (l *LevelData) OnFloor(p gamemath.Vec3) bool {
	for _, f := range l.Floors {
		if f.Contains(p) {
			return true
		}
	}
	return false
}

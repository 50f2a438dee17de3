// Package leveldata parses the warehouse layout from a Tiled map.
// The types are plain data with no ebiten, donburi or resolv imports.
package leveldata

import "github.com/parcelrush/blackfriday/shared/gamemath"

// Warehouse holds the layout of one play area in world units (one tile is
// one unit). TMX y maps to world Z.
type Warehouse struct {
	Name         string
	Width        float64
	Depth        float64
	Ground       gamemath.Rect
	Zones        []Zone
	Trucks       []TruckSpawn
	PlayerSpawns []SpawnPoint
}

// Zone is a delivery area for one carrier.
type Zone struct {
	Agent  string
	Bounds gamemath.Rect
}

// TruckSpawn is where a carrier's truck parks and the way it drives off.
type TruckSpawn struct {
	Agent  string
	X, Z   float64
	Facing gamemath.Vec3
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Z float64
}

package components

import (
	"math/rand"

	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ScoreData is the session total. Only score-delta events change it.
type ScoreData struct {
	Value     int
	Delivered int
}

var Score = donburi.NewComponentType[ScoreData]()

// ClosestParcelData is the pickup candidate chosen this tick.
type ClosestParcelData struct {
	Parcel EntityRef
}

var ClosestParcel = donburi.NewComponentType[ClosestParcelData]()

// AimData is the cursor's projection onto the floor.
type AimData struct {
	Point gamemath.Vec3
	Valid bool
}

var Aim = donburi.NewComponentType[AimData]()

// SpawnerData drives parcel drops.
type SpawnerData struct {
	Timer    Timer
	Count    uint64
	Interval float64 // seconds, mirrors Timer.Duration
	Area     gamemath.Rect
	Rand     *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// ContactsData remembers which parcel/zone pairs were touching last tick.
type ContactsData struct {
	Pairs map[[2]donburi.Entity]bool
}

var Contacts = donburi.NewComponentType[ContactsData]()

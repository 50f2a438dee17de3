package components

import (
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ShippingAreaData is a delivery zone for one carrier.
type ShippingAreaData struct {
	Agent    AgentCode
	Bounds   gamemath.Rect
	Score    int // sum of deltas scored here
	Received int // parcels delivered here, matching or not
	Truck    EntityRef
}

var ShippingArea = donburi.NewComponentType[ShippingAreaData]()

// TruckData is the vehicle parked at a zone. Facing is the direction it
// drives off in.
type TruckData struct {
	Agent  AgentCode
	Facing gamemath.Vec3
}

var Truck = donburi.NewComponentType[TruckData]()

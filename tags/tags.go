package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Parcel       = donburi.NewTag().SetName("Parcel")
	ParcelStack  = donburi.NewTag().SetName("ParcelStack")
	StackSlot    = donburi.NewTag().SetName("StackSlot")
	ShippingArea = donburi.NewTag().SetName("ShippingArea")
	Truck        = donburi.NewTag().SetName("Truck")
)

// Resolv tags for footprint queries
const (
	ResolvParcel       = "parcel"
	ResolvShippingArea = "shipping"
	ResolvPlayer       = "player"
)

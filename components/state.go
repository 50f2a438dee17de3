package components

import (
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/shared/navgrid"
	"github.com/yohamta/donburi"
)

// AutopilotState is the scripted player's current goal.
type AutopilotState int

const (
	AutopilotCollect AutopilotState = iota // walk to the closest parcel and pick it up
	AutopilotDeliver                       // walk toward the zone for the top parcel
	AutopilotIdle                          // match over
)

func (s AutopilotState) String() string {
	switch s {
	case AutopilotCollect:
		return "collect"
	case AutopilotDeliver:
		return "deliver"
	case AutopilotIdle:
		return "idle"
	}
	return "unknown"
}

type AutopilotData struct {
	State     AutopilotState
	Target    gamemath.Vec3
	HasTarget bool
	Cooldown  int // ticks until the next decision

	Nav  *navgrid.Grid   // floor cells inside the player's bounds, built on first use
	Path []gamemath.Vec3 // remaining waypoints toward Target
}

var Autopilot = donburi.NewComponentType[AutopilotData]()

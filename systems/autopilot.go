package systems

import (
	"math"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/shared/navgrid"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// axisDeadzone keeps the autopilot from jittering around its target.
const axisDeadzone = 0.1

// aimInset is how far past the zone edge the autopilot aims.
const aimInset = 2.0

// UpdateAutopilot generates input for a scripted player: collect parcels
// up to capacity, carry them to the zone of the top parcel and throw.
// Runs in place of UpdateInput.
func UpdateAutopilot(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	input.Advance()
	input.HasCursor = false

	components.Autopilot.Each(e.World, func(entry *donburi.Entry) {
		updateAutopilot(e, entry, input)
	})
}

func updateAutopilot(e *ecs.ECS, entry *donburi.Entry, input *components.InputData) {
	autopilot := components.Autopilot.Get(entry)
	if !IsMatchPlaying(e) {
		autopilot.State = components.AutopilotIdle
		return
	}
	if autopilot.Cooldown > 0 {
		autopilot.Cooldown--
	}

	stackEntry, ok := playerStack(e.World)
	if !ok {
		return
	}
	stack := components.ParcelStack.Get(stackEntry)
	pos := components.Transform.Get(entry).Position
	bounds := components.Player.Get(entry).Bounds

	target, found := nearestLandedParcel(e.World, pos, bounds)
	switch {
	case stack.Len() == 0:
		autopilot.State = components.AutopilotCollect
	case stack.Full(), !found:
		autopilot.State = components.AutopilotDeliver
	case autopilot.State == components.AutopilotIdle:
		autopilot.State = components.AutopilotCollect
	}

	switch autopilot.State {
	case components.AutopilotCollect:
		if !found {
			autopilot.HasTarget, autopilot.Path = false, nil
			return
		}
		walkTo(e.World, entry, autopilot, input, target)
		if hasClosestParcel(e.World) && autopilot.Cooldown == 0 {
			input.Current[cfg.ActionPickup] = true
			autopilot.Cooldown = cfg.Autopilot.ReactionTicks
		}

	case components.AutopilotDeliver:
		zone, ok := zoneForTop(e.World, stack)
		if !ok {
			autopilot.HasTarget, autopilot.Path = false, nil
			pressThrow(input, autopilot)
			return
		}
		edge := zone.ClampPoint(pos.Flat())
		aim := edge.Add(zone.Center().Sub(edge).Normalize().Scale(aimInset))
		setAim(e.World, aim)

		if pos.GroundDistance(edge) <= cfg.Autopilot.ThrowRange {
			pressThrow(input, autopilot)
			return
		}
		walkTo(e.World, entry, autopilot, input, edge)

	case components.AutopilotIdle:
	}
}

func pressThrow(input *components.InputData, autopilot *components.AutopilotData) {
	if autopilot.Cooldown > 0 {
		return
	}
	input.Current[cfg.ActionThrow] = true
	autopilot.Cooldown = cfg.Autopilot.ReactionTicks
}

// walkTo follows a floor route to target, planning a new one when the
// target moves.
func walkTo(w donburi.World, entry *donburi.Entry, autopilot *components.AutopilotData, input *components.InputData, target gamemath.Vec3) {
	pos := components.Transform.Get(entry).Position
	if autopilot.Nav == nil {
		autopilot.Nav = buildNavGrid(w, components.Player.Get(entry).Bounds)
	}
	if !autopilot.HasTarget || autopilot.Target.GroundDistance(target) > cfg.Autopilot.ArriveRadius {
		autopilot.Target, autopilot.HasTarget = target, true
		autopilot.Path = nil
		if autopilot.Nav != nil {
			autopilot.Path = autopilot.Nav.FindPath(pos, target)
		}
	}

	for len(autopilot.Path) > 1 && pos.GroundDistance(autopilot.Path[0]) <= cfg.Autopilot.ArriveRadius {
		autopilot.Path = autopilot.Path[1:]
	}
	next := target
	if len(autopilot.Path) > 0 {
		next = autopilot.Path[0]
	}
	steer(input, pos, next)
}

// buildNavGrid marks the cells of bounds that lie over a floor.
func buildNavGrid(w donburi.World, bounds gamemath.Rect) *navgrid.Grid {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	level := components.Level.Get(levelEntry)
	return navgrid.New(bounds, float64(cfg.World.CellSize), level.OnFloor)
}

// steer holds the movement actions that bring pos toward target.
func steer(input *components.InputData, pos, target gamemath.Vec3) {
	if pos.GroundDistance(target) <= cfg.Autopilot.ArriveRadius/2 {
		return
	}
	dx, dz := gamemath.SteerToward(pos.X, pos.Z, target.X, target.Z, 1)
	if dx > axisDeadzone {
		input.Current[cfg.ActionMoveRight] = true
	} else if dx < -axisDeadzone {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if dz > axisDeadzone {
		input.Current[cfg.ActionMoveDown] = true
	} else if dz < -axisDeadzone {
		input.Current[cfg.ActionMoveUp] = true
	}
}

// nearestLandedParcel finds the closest pickable parcel resting inside
// bounds. Parcels still in the air are ignored.
func nearestLandedParcel(w donburi.World, pos gamemath.Vec3, bounds gamemath.Rect) (gamemath.Vec3, bool) {
	best := math.Inf(1)
	var target gamemath.Vec3
	found := false
	tags.Parcel.Each(w, func(e *donburi.Entry) {
		if !pickable(e) || !components.Physics.Get(e).OnGround {
			return
		}
		p := components.Transform.Get(e).Position
		if !bounds.Contains(p) {
			return
		}
		if d := p.GroundDistance(pos); d < best {
			best, target, found = d, p, true
		}
	})
	return target, found
}

func hasClosestParcel(w donburi.World) bool {
	closestEntry, ok := components.ClosestParcel.First(w)
	if !ok {
		return false
	}
	_, ok = components.ClosestParcel.Get(closestEntry).Parcel.Entry(w)
	return ok
}

// zoneForTop returns the bounds of the zone matching the top parcel.
func zoneForTop(w donburi.World, stack *components.ParcelStackData) (gamemath.Rect, bool) {
	top, ok := stack.Top()
	if !ok || !w.Valid(top) {
		return gamemath.Rect{}, false
	}
	parcelEntry, ok := components.StackSlot.Get(w.Entry(top)).Parcel.Entry(w)
	if !ok {
		return gamemath.Rect{}, false
	}
	agent := components.Parcel.Get(parcelEntry).Agent

	var bounds gamemath.Rect
	found := false
	components.ShippingArea.Each(w, func(e *donburi.Entry) {
		zone := components.ShippingArea.Get(e)
		if !found && zone.Agent == agent {
			bounds, found = zone.Bounds, true
		}
	})
	return bounds, found
}

func setAim(w donburi.World, p gamemath.Vec3) {
	aimEntry, ok := components.Aim.First(w)
	if !ok {
		return
	}
	aim := components.Aim.Get(aimEntry)
	aim.Point, aim.Valid = p, true
}

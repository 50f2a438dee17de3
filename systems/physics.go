package systems

import (
	"math"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates free bodies: gravity, landing on any floor
// surface and floor friction. Bodies sitting in a stack slot are moved by
// UpdateStack instead.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.Dt()
	var level *components.LevelData
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level = components.Level.Get(levelEntry)
	}
	half := cfg.Parcel.Size / 2

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Parcel) {
			parcel := components.Parcel.Get(e)
			if parcel.Phase == components.PhaseHeld || parcel.Slot.IsSet() {
				return
			}
		}

		physics := components.Physics.Get(e)
		transform := components.Transform.Get(e)

		physics.Velocity.Y -= cfg.World.Gravity * physics.GravityScale * dt
		next := transform.Position.Add(physics.Velocity.Scale(dt))

		// Land only when crossing the surface from above, so bodies that
		// slid off an edge keep falling.
		physics.OnGround = false
		if level != nil && !physics.Sensor &&
			transform.Position.Y >= half-1e-6 && next.Y <= half && level.OnFloor(next) {
			next.Y = half
			physics.Velocity.Y = 0
			physics.OnGround = true
		}

		if physics.OnGround {
			speed := math.Hypot(physics.Velocity.X, physics.Velocity.Z)
			if speed > 0 {
				slowed := gamemath.ApplyFriction(speed, physics.Friction*dt)
				physics.Velocity.X *= slowed / speed
				physics.Velocity.Z *= slowed / speed
			}
		} else {
			transform.Rotation += physics.Spin * dt
		}

		transform.Position = next
	})
}

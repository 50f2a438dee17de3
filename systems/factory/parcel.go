package factory

import (
	"github.com/parcelrush/blackfriday/archetypes"
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateParcel spawns a free parcel at pos moving with vel.
func CreateParcel(ecs *ecs.ECS, agent components.AgentCode, pos, vel gamemath.Vec3) *donburi.Entry {
	parcel := archetypes.Parcel.Spawn(ecs)

	obj := footprint(pos.X, pos.Z, cfg.Parcel.Size, tags.ResolvParcel)
	obj.Data = parcel
	components.Object.SetValue(parcel, components.ObjectData{Object: obj})
	AddToSpace(ecs, obj)

	components.Parcel.SetValue(parcel, components.ParcelData{
		Agent: agent,
		Phase: components.PhaseFree,
	})
	components.Transform.SetValue(parcel, components.TransformData{
		Position: pos,
		Scale:    1,
	})
	components.Physics.SetValue(parcel, components.PhysicsData{
		Velocity:     vel,
		GravityScale: 1,
		Friction:     cfg.Parcel.GroundFriction,
		Spin:         cfg.Parcel.Spin,
	})

	return parcel
}

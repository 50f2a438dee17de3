package components

import (
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Velocity     gamemath.Vec3
	GravityScale float64 // 0 while suppressed
	Friction     float64 // horizontal deceleration on the floor, units/s²
	Spin         float64 // radians/s, cosmetic
	Sensor       bool    // sensors never come to rest on the floor
	OnGround     bool
}

var Physics = donburi.NewComponentType[PhysicsData]()

// Freeze stops the body and suppresses gravity.
func (p *PhysicsData) Freeze() {
	p.Velocity = gamemath.Zero
	p.GravityScale = 0
	p.OnGround = false
}

// Release re-enables gravity and launches the body with v.
func (p *PhysicsData) Release(v gamemath.Vec3) {
	p.Velocity = v
	p.GravityScale = 1
	p.Sensor = false
	p.OnGround = false
}

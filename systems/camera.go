package systems

import (
	"math"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// rayBackoff is how far behind the focus plane cursor rays start.
const rayBackoff = 100.0

// UpdateCamera eases the focus toward the player, kept over the ground.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Transform.Get(playerEntry).Position.Flat()
	if levelEntry, ok := components.Level.First(e.World); ok {
		target = components.Level.Get(levelEntry).Ground.ClampPoint(target)
	}

	camera.Focus = camera.Focus.Add(target.Sub(camera.Focus).Scale(cfg.Camera.Follow))
}

// Projection is an orthographic camera tilted Pitch degrees below the
// horizon, looking toward -Z, with Focus at the screen centre.
type Projection struct {
	Focus         gamemath.Vec3
	Width, Height float64
	Scale         float64 // pixels per world unit
	sin, cos      float64
}

func NewProjection(focus gamemath.Vec3, c cfg.CameraConfig) Projection {
	pitch := c.Pitch * math.Pi / 180
	return Projection{
		Focus:  focus,
		Width:  float64(c.Width),
		Height: float64(c.Height),
		Scale:  c.PixelsPerUnit,
		sin:    math.Sin(pitch),
		cos:    math.Cos(pitch),
	}
}

// CurrentProjection builds the projection from the camera entity, or
// centres on the ground when there is none.
func CurrentProjection(w donburi.World) Projection {
	focus := gamemath.Zero
	if cameraEntry, ok := components.Camera.First(w); ok {
		focus = components.Camera.Get(cameraEntry).Focus
	} else if levelEntry, ok := components.Level.First(w); ok {
		focus = components.Level.Get(levelEntry).Ground.Center()
	}
	return NewProjection(focus, cfg.Camera)
}

// Project returns the screen position of a world point.
func (p Projection) Project(v gamemath.Vec3) (x, y float64) {
	d := v.Sub(p.Focus)
	x = p.Width/2 + d.X*p.Scale
	y = p.Height/2 + (d.Z*p.sin-d.Y*p.cos)*p.Scale
	return x, y
}

// Ray returns the view ray through a screen pixel.
func (p Projection) Ray(sx, sy float64) (origin, dir gamemath.Vec3) {
	right := gamemath.V3(1, 0, 0)
	up := gamemath.V3(0, p.cos, -p.sin)
	forward := gamemath.V3(0, -p.sin, -p.cos)

	a := (sx - p.Width/2) / p.Scale
	b := -(sy - p.Height/2) / p.Scale
	origin = p.Focus.Add(right.Scale(a)).Add(up.Scale(b)).Sub(forward.Scale(rayBackoff))
	return origin, forward
}

// Unproject finds the floor point under a screen pixel. ok is false when
// the view ray never meets the floor.
func (p Projection) Unproject(sx, sy float64) (gamemath.Vec3, bool) {
	if p.Scale <= 0 {
		return gamemath.Zero, false
	}
	return gamemath.GroundPoint(p.Ray(sx, sy))
}

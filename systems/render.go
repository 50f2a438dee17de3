package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cullPadding keeps boxes from popping at the screen edges.
const cullPadding = 64.0

// drawable is one box queued for depth-sorted drawing.
type drawable struct {
	pos       gamemath.Vec3
	size      float64
	fill      color.RGBA
	highlight bool
}

var drawQueue []drawable

// DrawWorld renders the floors, trucks and every box in the warehouse
// through the oblique camera.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
	proj := CurrentProjection(e.World)

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		drawFloor(screen, proj, level.Ground, cfg.Ground)
	}
	components.ShippingArea.Each(e.World, func(entry *donburi.Entry) {
		zone := components.ShippingArea.Get(entry)
		drawFloor(screen, proj, zone.Bounds, zone.Agent.Color())
	})
	tags.Truck.Each(e.World, func(entry *donburi.Entry) {
		drawTruck(screen, proj, entry)
	})

	drawQueue = drawQueue[:0]
	tags.Parcel.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		parcel := components.Parcel.Get(entry)
		drawQueue = append(drawQueue, drawable{
			pos:       t.Position,
			size:      cfg.Parcel.Size * t.Scale,
			fill:      parcel.Agent.Color(),
			highlight: parcel.Highlighted,
		})
	})
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		size := cfg.Player.Size * t.Scale
		if entry.HasComponent(components.Pulse) {
			size = cfg.Player.Size * components.Pulse.Get(entry).Scale
		}
		pos := t.Position
		pos.Y = size / 2
		drawQueue = append(drawQueue, drawable{pos: pos, size: size, fill: cfg.PlayerColor})
	})

	// Farther (smaller Z) first, then lower first so stacks draw bottom up.
	sort.SliceStable(drawQueue, func(i, j int) bool {
		a, b := drawQueue[i].pos, drawQueue[j].pos
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.Y < b.Y
	})
	for _, d := range drawQueue {
		drawShadow(screen, proj, d)
	}
	for _, d := range drawQueue {
		drawBox(screen, proj, d)
	}

	drawAim(e, screen, proj)
}

func drawFloor(screen *ebiten.Image, proj Projection, r gamemath.Rect, c color.RGBA) {
	x0, y0 := proj.Project(gamemath.V3(r.MinX, 0, r.MinZ))
	x1, y1 := proj.Project(gamemath.V3(r.MaxX, 0, r.MaxZ))
	vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), c, false)
}

func visible(proj Projection, x, y float64) bool {
	return x >= -cullPadding && x <= proj.Width+cullPadding &&
		y >= -cullPadding && y <= proj.Height+cullPadding
}

// drawBox draws a cube as its top face plus the face toward the camera.
func drawBox(screen *ebiten.Image, proj Projection, d drawable) {
	if d.size <= 0 {
		return
	}
	half := d.size / 2
	cx, cy := proj.Project(d.pos)
	if !visible(proj, cx, cy) {
		return
	}

	w := d.size * proj.Scale
	topDepth := d.size * proj.sin * proj.Scale
	frontHeight := d.size * proj.cos * proj.Scale

	tx, ty := proj.Project(gamemath.V3(d.pos.X-half, d.pos.Y+half, d.pos.Z-half))
	front := shade(d.fill, 0.75)
	vector.FillRect(screen, float32(tx), float32(ty+topDepth), float32(w), float32(frontHeight), front, false)
	vector.FillRect(screen, float32(tx), float32(ty), float32(w), float32(topDepth), d.fill, false)

	if d.highlight {
		vector.StrokeRect(screen, float32(tx), float32(ty), float32(w), float32(topDepth+frontHeight), 2, cfg.Highlight, false)
	}
}

func drawShadow(screen *ebiten.Image, proj Projection, d drawable) {
	if d.pos.Y < 0 {
		return
	}
	x, y := proj.Project(d.pos.Flat())
	if !visible(proj, x, y) {
		return
	}
	// Shrinks as the box rises.
	r := d.size / 2 * proj.Scale / (1 + d.pos.Y/4)
	vector.FillCircle(screen, float32(x), float32(y), float32(r), cfg.Shadow, true)
}

func drawTruck(screen *ebiten.Image, proj Projection, entry *donburi.Entry) {
	truck := components.Truck.Get(entry)
	pos := components.Transform.Get(entry).Position

	halfL, halfW := cfg.Truck.Length/2, cfg.Truck.Width/2
	var r gamemath.Rect
	if math.Abs(truck.Facing.X) > math.Abs(truck.Facing.Z) {
		r = gamemath.Rect{MinX: pos.X - halfL, MaxX: pos.X + halfL, MinZ: pos.Z - halfW, MaxZ: pos.Z + halfW}
	} else {
		r = gamemath.Rect{MinX: pos.X - halfW, MaxX: pos.X + halfW, MinZ: pos.Z - halfL, MaxZ: pos.Z + halfL}
	}
	drawFloor(screen, proj, r, cfg.TruckColor)

	// Cab stripe in the carrier's colour on the leading end.
	cab := pos.Add(truck.Facing.Scale(halfL * 0.7))
	cx, cy := proj.Project(cab)
	vector.FillCircle(screen, float32(cx), float32(cy), float32(halfW*0.6*proj.Scale), truck.Agent.Color(), true)
}

func drawAim(e *ecs.ECS, screen *ebiten.Image, proj Projection) {
	aimEntry, ok := components.Aim.First(e.World)
	if !ok {
		return
	}
	aim := components.Aim.Get(aimEntry)
	if !aim.Valid {
		return
	}
	x, y := proj.Project(aim.Point)
	vector.StrokeCircle(screen, float32(x), float32(y), 6, 2, cfg.White, true)
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

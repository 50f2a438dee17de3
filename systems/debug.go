package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision footprints and the pickup radius when the
// matching debug flags are set.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	proj := CurrentProjection(e.World)

	if cfg.Debug.ShowColliders {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				c := color.RGBA{0, 255, 255, 255} // Cyan default
				if obj.HasTags(tags.ResolvParcel) {
					c = color.RGBA{255, 255, 0, 255}
				} else if obj.HasTags(tags.ResolvShippingArea) {
					c = color.RGBA{255, 0, 255, 255}
				} else if obj.HasTags(tags.ResolvPlayer) {
					c = color.RGBA{0, 0, 255, 255}
				}
				x0, y0 := proj.Project(gamemath.V3(obj.X, 0, obj.Y))
				x1, y1 := proj.Project(gamemath.V3(obj.X+obj.W, 0, obj.Y+obj.H))
				vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, c, false)
			}
		}
	}

	if cfg.Debug.ShowRadius {
		if playerEntry, ok := tags.Player.First(e.World); ok {
			x, y := proj.Project(components.Transform.Get(playerEntry).Position.Flat())
			r := cfg.Player.PickupRadius * proj.Scale
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, cfg.BrightGreen, true)
		}
	}
}

package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin      = 10
	hudLineHeight  = 26
	hudTimerWidth  = 90
	hudTimerHeight = 32
	hudSwatch      = 12
)

// DrawHUD renders the score, the match clock and per-zone tallies.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	face := fonts.HUD.Get()
	small := fonts.Small.Get()

	if scoreEntry, ok := components.Score.First(e.World); ok {
		score := components.Score.Get(scoreEntry)
		text.Draw(screen, fmt.Sprintf("Score: %d", score.Value), face, hudMargin, hudMargin+20, cfg.White)
	}

	if matchEntry, ok := components.Match.First(e.World); ok {
		match := components.Match.Get(matchEntry)
		secs := match.RemainingSeconds()
		timeStr := FormatClock(secs)

		timerX := float32(width/2) - hudTimerWidth/2
		vector.FillRect(screen, timerX, 5, hudTimerWidth, hudTimerHeight, cfg.BlackOverlay, false)
		c := cfg.White
		if secs <= 10 {
			c = cfg.LightRed
		}
		text.Draw(screen, timeStr, face, width/2-len(timeStr)*6, 30, c)
	}

	y := hudMargin + 20 + hudLineHeight
	components.ShippingArea.Each(e.World, func(entry *donburi.Entry) {
		zone := components.ShippingArea.Get(entry)
		vector.FillRect(screen, hudMargin, float32(y-hudSwatch), hudSwatch, hudSwatch, zone.Agent.Color(), false)
		line := fmt.Sprintf("%s  %d (%+d)", zone.Agent, zone.Received, zone.Score)
		text.Draw(screen, line, small, hudMargin+hudSwatch+6, y, cfg.White)
		y += hudLineHeight - 6
	})
}

// FormatClock renders whole seconds as m:ss.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

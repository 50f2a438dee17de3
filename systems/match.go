package systems

import (
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateMatch runs the match clock and ends the match when it runs out.
func UpdateMatch(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	switch match.State {
	case components.MatchPlaying:
		if match.Ticks == 0 {
			logger.Info("match started", zap.Duration("duration", cfg.Match.Duration))
		}
		match.Ticks++
		if match.Timer.Tick(cfg.Dt()) {
			finishMatch(e.World, matchEntry)
		}
	case components.MatchFinished:
	}
}

func finishMatch(w donburi.World, matchEntry *donburi.Entry) {
	match := components.Match.Get(matchEntry)
	match.State = components.MatchFinished

	result := MatchResult(w)
	fields := []zap.Field{
		zap.Int("score", result.Score),
		zap.Uint64("ticks", match.Ticks),
	}
	for _, z := range result.Zones {
		fields = append(fields, zap.Int(z.Agent.String(), z.Received))
	}
	logger.Info("match finished", fields...)
}

// MatchResult collects the score and every zone's tally.
func MatchResult(w donburi.World) components.GameOverData {
	var result components.GameOverData
	if scoreEntry, ok := components.Score.First(w); ok {
		result.Score = components.Score.Get(scoreEntry).Value
	}
	components.ShippingArea.Each(w, func(e *donburi.Entry) {
		zone := components.ShippingArea.Get(e)
		result.Zones = append(result.Zones, components.ZoneResult{
			Agent:    zone.Agent,
			Score:    zone.Score,
			Received: zone.Received,
		})
	})
	return result
}

// IsMatchPlaying returns true if the match is in the playing state
func IsMatchPlaying(e *ecs.ECS) bool {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return true // No match component = always playing
	}
	return components.Match.Get(matchEntry).Playing()
}

// IsMatchFinished returns true if the match clock has run out
func IsMatchFinished(e *ecs.ECS) bool {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return false
	}
	return components.Match.Get(matchEntry).State == components.MatchFinished
}

// GetMatchTimeRemaining returns the remaining match time in whole seconds
func GetMatchTimeRemaining(e *ecs.ECS) int {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return 0
	}
	match := components.Match.Get(matchEntry)
	if !match.Playing() {
		return 0
	}
	return match.RemainingSeconds()
}

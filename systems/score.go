package systems

import (
	"github.com/parcelrush/blackfriday/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScore applies queued score deltas. Nothing else writes the score.
func UpdateScore(ecs *ecs.ECS) {
	scoreEntry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(scoreEntry)
	events := components.Events.Get(scoreEntry)

	for _, ev := range events.Scores.Drain() {
		score.Value += ev.Delta
		score.Delivered++
	}
}

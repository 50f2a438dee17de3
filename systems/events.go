package systems

import (
	"github.com/parcelrush/blackfriday/components"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateEvents runs last. Every queue should be empty by now; leftovers
// are logged and dropped so nothing leaks into the next tick.
func UpdateEvents(ecs *ecs.ECS) {
	eventsEntry, ok := components.Events.First(ecs.World)
	if !ok {
		return
	}
	events := components.Events.Get(eventsEntry)
	if events.Pending() == 0 {
		return
	}

	logger.Warn("dropping undrained events",
		zap.Int("adds", events.Adds.Len()),
		zap.Int("pops", events.Pops.Len()),
		zap.Int("scores", events.Scores.Len()),
		zap.Int("collisions", events.Collisions.Len()),
	)
	events.Adds.Drain()
	events.Pops.Drain()
	events.Scores.Drain()
	events.Collisions.Drain()
}

package systems

import (
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the scale tweens (parcel shrink-out, player pulse)
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(cfg.Dt())
	updateShrinkEffects(ecs, dt)
	updatePulseEffects(ecs, dt)
}

func updateShrinkEffects(ecs *ecs.ECS, dt float32) {
	components.Shrink.Each(ecs.World, func(e *donburi.Entry) {
		shrink := components.Shrink.Get(e)
		if shrink.Tween == nil {
			return
		}
		v, _ := shrink.Tween.Update(dt)
		shrink.Scale = float64(v)
		if e.HasComponent(components.Transform) {
			components.Transform.Get(e).Scale = shrink.Scale
		}
	})
}

// updatePulseEffects plays each pulse tween forward then back, forever.
func updatePulseEffects(ecs *ecs.ECS, dt float32) {
	components.Pulse.Each(ecs.World, func(e *donburi.Entry) {
		pulse := components.Pulse.Get(e)
		if pulse.Tween == nil {
			return
		}
		v, done := pulse.Tween.Update(dt)
		pulse.Scale = float64(v)
		if !done {
			return
		}
		pulse.Reverse = !pulse.Reverse
		from, to := float32(1), float32(cfg.Player.PulseScale)
		if pulse.Reverse {
			from, to = to, from
		}
		pulse.Tween = gween.New(from, to, float32(cfg.Player.PulsePeriod), ease.InOutSine)
	})
}

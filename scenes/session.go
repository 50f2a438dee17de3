package scenes

import (
	"fmt"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/leveldata"
	"github.com/parcelrush/blackfriday/systems"
	"github.com/parcelrush/blackfriday/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Mode selects who drives the player.
type Mode int

const (
	ModePlay Mode = iota // keyboard and mouse, rendered
	ModeSim              // autopilot, no renderers
)

func (m Mode) String() string {
	if m == ModeSim {
		return "sim"
	}
	return "play"
}

// NewSession builds a world for one match on layout w with every system
// registered for mode.
func NewSession(w *leveldata.Warehouse, seed int64, mode Mode) (*ecs.ECS, error) {
	e := ecs.NewECS(donburi.NewWorld())

	player, err := factory.CreateWarehouse(e, w, seed)
	if err != nil {
		return nil, fmt.Errorf("build warehouse %s: %w", w.Name, err)
	}

	switch mode {
	case ModeSim:
		player.AddComponent(components.Autopilot)
	case ModePlay:
		factory.CreateCamera(e, components.Transform.Get(player).Position.Flat())
	}

	RegisterSystems(e, mode)
	return e, nil
}

// RegisterSystems adds the tick pipeline in its fixed order. Stack events
// are applied twice: once for pickups and throws, once for the pops that
// despawns force.
func RegisterSystems(e *ecs.ECS, mode Mode) {
	switch mode {
	case ModeSim:
		e.AddSystem(systems.UpdateAutopilot)
	case ModePlay:
		e.AddSystem(systems.UpdateInput)
	}

	e.AddSystem(systems.UpdateMatch)
	e.AddSystem(systems.UpdateSpawner)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateBounds)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateAwareness)
	e.AddSystem(systems.UpdatePickup)
	e.AddSystem(systems.UpdateStackEvents)
	e.AddSystem(systems.UpdateLifecycle)
	e.AddSystem(systems.UpdateStackEvents)
	e.AddSystem(systems.UpdateDelivery)
	e.AddSystem(systems.UpdateScore)
	e.AddSystem(systems.UpdateStack)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateEvents)

	if mode == ModePlay {
		e.AddSystem(systems.UpdateCamera)

		e.AddRenderer(cfg.Default, systems.DrawWorld)
		e.AddRenderer(cfg.Default, systems.DrawDebug)
		e.AddRenderer(cfg.HUD, systems.DrawHUD)
	}
}

// RunHeadless steps e until the match ends or maxTicks have run, and
// returns the final tally and the number of ticks stepped.
func RunHeadless(e *ecs.ECS, maxTicks int) (components.GameOverData, int) {
	ticks := 0
	for ticks < maxTicks && !systems.IsMatchFinished(e) {
		e.Update()
		ticks++
	}
	return systems.MatchResult(e.World), ticks
}

package factory

import (
	"errors"
	"fmt"

	"github.com/parcelrush/blackfriday/archetypes"
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/shared/leveldata"
	"github.com/parcelrush/blackfriday/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrNoPlayerSpawn    = errors.New("no player spawn point defined in map")
	ErrPlayerCount      = errors.New("exactly one player is required")
	ErrZoneWithoutTruck = errors.New("shipping area has no truck")
	ErrDuplicateZone    = errors.New("more than one shipping area for agent")
)

// CreateLevel spawns the level singleton describing the floor.
func CreateLevel(ecs *ecs.ECS, w *leveldata.Warehouse) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   w.Name,
		Ground: w.Ground,
		Floors: w.Floors(),
		Bounds: w.Bounds(),
	})
	return level
}

// CreateWarehouse populates an empty world from a layout: space, level,
// session singletons, zones with their trucks and the player. It returns
// the player entry. Layout faults are reported before anything that
// depends on them is spawned.
func CreateWarehouse(ecs *ecs.ECS, w *leveldata.Warehouse, seed int64) (*donburi.Entry, error) {
	switch {
	case len(w.PlayerSpawns) == 0:
		return nil, ErrNoPlayerSpawn
	case len(w.PlayerSpawns) > 1:
		return nil, fmt.Errorf("%w: map has %d spawn points", ErrPlayerCount, len(w.PlayerSpawns))
	}
	existing := 0
	tags.Player.Each(ecs.World, func(*donburi.Entry) { existing++ })
	if existing > 0 {
		return nil, fmt.Errorf("%w: world already has %d", ErrPlayerCount, existing)
	}

	type zoneSpec struct {
		agent  components.AgentCode
		bounds gamemath.Rect
		truck  leveldata.TruckSpawn
	}
	trucks := make(map[components.AgentCode]leveldata.TruckSpawn, len(w.Trucks))
	for _, t := range w.Trucks {
		agent, err := components.ParseAgentCode(t.Agent)
		if err != nil {
			return nil, fmt.Errorf("truck: %w", err)
		}
		trucks[agent] = t
	}
	seen := make(map[components.AgentCode]bool, len(w.Zones))
	zones := make([]zoneSpec, 0, len(w.Zones))
	for _, z := range w.Zones {
		agent, err := components.ParseAgentCode(z.Agent)
		if err != nil {
			return nil, fmt.Errorf("shipping area: %w", err)
		}
		if seen[agent] {
			return nil, fmt.Errorf("%w %s", ErrDuplicateZone, agent)
		}
		seen[agent] = true
		truck, ok := trucks[agent]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrZoneWithoutTruck, agent)
		}
		zones = append(zones, zoneSpec{agent: agent, bounds: z.Bounds, truck: truck})
	}

	CreateSpace(ecs, w.Bounds(), cfg.World.CellSize)
	CreateLevel(ecs, w)
	CreateSession(ecs, w.Ground, seed)

	for _, z := range zones {
		zone := CreateShippingArea(ecs, z.agent, z.bounds)
		truck := CreateTruck(ecs, z.agent, gamemath.V3(z.truck.X, 0, z.truck.Z), z.truck.Facing)
		LinkTruck(zone, truck)
	}

	spawn := w.PlayerSpawns[0]
	return CreatePlayer(ecs, spawn.X, spawn.Z, w.Ground.Expand(cfg.Player.BoundsMargin)), nil
}

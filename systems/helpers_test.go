package systems

import (
	"testing"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/shared/leveldata"
	"github.com/parcelrush/blackfriday/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testLayout is a 30x30 map: a 10x10 ground in the middle, one zone on
// each side of it and holes in the corners.
func testLayout() *leveldata.Warehouse {
	return &leveldata.Warehouse{
		Name:   "test",
		Width:  30,
		Depth:  30,
		Ground: gamemath.RectFromSize(10, 10, 10, 10),
		Zones: []leveldata.Zone{
			{Agent: "PostNord", Bounds: gamemath.RectFromSize(10, 0, 10, 10)},
			{Agent: "DHL", Bounds: gamemath.RectFromSize(20, 10, 10, 10)},
			{Agent: "Bring", Bounds: gamemath.RectFromSize(10, 20, 10, 10)},
			{Agent: "Budbee", Bounds: gamemath.RectFromSize(0, 10, 10, 10)},
		},
		Trucks: []leveldata.TruckSpawn{
			{Agent: "PostNord", X: 15, Z: 1.5, Facing: gamemath.V3(0, 0, -1)},
			{Agent: "DHL", X: 28.5, Z: 15, Facing: gamemath.V3(1, 0, 0)},
			{Agent: "Bring", X: 15, Z: 28.5, Facing: gamemath.V3(0, 0, 1)},
			{Agent: "Budbee", X: 1.5, Z: 15, Facing: gamemath.V3(-1, 0, 0)},
		},
		PlayerSpawns: []leveldata.SpawnPoint{{X: 15, Z: 15}},
	}
}

// newTestSession builds a warehouse world with default config and returns
// it with the player entry.
func newTestSession(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	player, err := factory.CreateWarehouse(e, testLayout(), 1)
	if err != nil {
		t.Fatalf("CreateWarehouse: %v", err)
	}
	return e, player
}

// restingParcel spawns a parcel lying still on the floor at (x, z).
func restingParcel(e *ecs.ECS, agent components.AgentCode, x, z float64) *donburi.Entry {
	p := factory.CreateParcel(e, agent, gamemath.V3(x, cfg.Parcel.Size/2, z), gamemath.Zero)
	components.Physics.Get(p).OnGround = true
	return p
}

func eventsOf(t *testing.T, e *ecs.ECS) *components.EventsData {
	t.Helper()
	entry, ok := components.Events.First(e.World)
	if !ok {
		t.Fatal("no events singleton")
	}
	return components.Events.Get(entry)
}

func stackOf(t *testing.T, e *ecs.ECS) (*donburi.Entry, *components.ParcelStackData) {
	t.Helper()
	entry, ok := playerStack(e.World)
	if !ok {
		t.Fatal("player has no stack")
	}
	return entry, components.ParcelStack.Get(entry)
}

func closestOf(t *testing.T, e *ecs.ECS) *components.ClosestParcelData {
	t.Helper()
	entry, ok := components.ClosestParcel.First(e.World)
	if !ok {
		t.Fatal("no closest parcel singleton")
	}
	return components.ClosestParcel.Get(entry)
}

// pickUp queues AddToStack for every parcel and applies the queue.
func pickUp(t *testing.T, e *ecs.ECS, parcels ...*donburi.Entry) {
	t.Helper()
	events := eventsOf(t, e)
	for _, p := range parcels {
		events.Adds.Push(components.AddToStack{Parcel: p.Entity()})
	}
	UpdateStackEvents(e)
}

func zoneFor(t *testing.T, e *ecs.ECS, agent components.AgentCode) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	components.ShippingArea.Each(e.World, func(entry *donburi.Entry) {
		if components.ShippingArea.Get(entry).Agent == agent {
			found = entry
		}
	})
	if found == nil {
		t.Fatalf("no zone for %s", agent)
	}
	return found
}

func countParcels(e *ecs.ECS) int {
	n := 0
	components.Parcel.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func step(e *ecs.ECS, ticks int, fns ...ecs.System) {
	for i := 0; i < ticks; i++ {
		for _, s := range fns {
			s(e)
		}
	}
}

func near(a, b gamemath.Vec3) bool {
	return a.Distance(b) < 1e-9
}

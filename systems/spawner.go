package systems

import (
	"math/rand"
	"time"

	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/parcelrush/blackfriday/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SpawnInterval is the delay between drops once count parcels have
// spawned.
func SpawnInterval(c cfg.SpawnerConfig, count uint64) time.Duration {
	return c.Interval(count)
}

// UpdateSpawner drops a parcel each time the spawn timer fires and speeds
// the timer up every Step parcels.
func UpdateSpawner(ecs *ecs.ECS) {
	if !IsMatchPlaying(ecs) {
		return
	}
	spawnerEntry, ok := components.Spawner.First(ecs.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)

	if !spawner.Timer.Tick(cfg.Dt()) {
		return
	}

	parcel := spawnParcel(ecs, spawner)
	spawner.Count++
	logger.Debug("parcel spawned",
		zap.Uint64("count", spawner.Count),
		zap.Stringer("agent", components.Parcel.Get(parcel).Agent),
	)

	if cfg.Spawner.Step > 0 && spawner.Count%cfg.Spawner.Step == 0 {
		next := SpawnInterval(cfg.Spawner, spawner.Count)
		if next.Seconds() != spawner.Interval {
			logger.Debug("spawn interval changed",
				zap.Uint64("count", spawner.Count),
				zap.Duration("interval", next),
			)
		}
		spawner.Interval = next.Seconds()
		spawner.Timer.Reset(next)
	}
}

func spawnParcel(ecs *ecs.ECS, spawner *components.SpawnerData) *donburi.Entry {
	r := spawner.Rand
	agent := components.Agents[r.Intn(len(components.Agents))]
	pos := gamemath.V3(
		uniform(r, spawner.Area.MinX, spawner.Area.MaxX),
		cfg.Spawner.SpawnHeight,
		uniform(r, spawner.Area.MinZ, spawner.Area.MaxZ),
	)
	vel := gamemath.V3(
		uniform(r, cfg.Parcel.VelocityX.Min, cfg.Parcel.VelocityX.Max),
		0,
		uniform(r, cfg.Parcel.VelocityZ.Min, cfg.Parcel.VelocityZ.Max),
	)
	return factory.CreateParcel(ecs, agent, pos, vel)
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

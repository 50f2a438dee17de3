package factory

import (
	"math/rand"
	"time"

	"github.com/parcelrush/blackfriday/archetypes"
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the entity carrying every per-session singleton.
// Parcels spawn inside ground minus the configured padding. A zero seed is
// replaced by the current time.
func CreateSession(ecs *ecs.ECS, ground gamemath.Rect, seed int64) *donburi.Entry {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	first := cfg.Spawner.Interval(0)
	session := archetypes.Session.Spawn(ecs)
	components.Spawner.SetValue(session, components.SpawnerData{
		Timer:    components.NewTimer(first, true),
		Interval: first.Seconds(),
		Area:     ground.Inset(cfg.Spawner.Padding),
		Rand:     rand.New(rand.NewSource(seed)),
	})
	components.Match.SetValue(session, components.MatchData{
		State: components.MatchPlaying,
		Timer: components.NewTimer(cfg.Match.Duration, false),
	})
	components.Contacts.SetValue(session, components.ContactsData{
		Pairs: make(map[[2]donburi.Entity]bool),
	})
	return session
}

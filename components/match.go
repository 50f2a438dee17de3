package components

import (
	"github.com/yohamta/donburi"
)

type MatchState int

const (
	MatchPlaying MatchState = iota
	MatchFinished
)

func (s MatchState) String() string {
	if s == MatchFinished {
		return "finished"
	}
	return "playing"
}

// MatchData stores the session clock.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State MatchState
	Timer Timer
	Ticks uint64
}

var Match = donburi.NewComponentType[MatchData]()

// RemainingSeconds rounds the time left up to whole seconds for display.
func (m *MatchData) RemainingSeconds() int {
	r := m.Timer.Remaining()
	s := int(r)
	if float64(s) < r {
		s++
	}
	return s
}

// Playing reports whether gameplay systems should run.
func (m *MatchData) Playing() bool {
	return m.State == MatchPlaying
}

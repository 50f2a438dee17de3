package components

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/yohamta/donburi"
)

// ErrUnknownAgent is returned when a name is not one of the shipping agents.
var ErrUnknownAgent = errors.New("unknown agent")

// AgentCode identifies the carrier a parcel is addressed to.
type AgentCode int

const (
	PostNord AgentCode = iota
	DHL
	Bring
	Budbee
)

// Agents lists every carrier in declaration order.
var Agents = [...]AgentCode{PostNord, DHL, Bring, Budbee}

func (a AgentCode) String() string {
	switch a {
	case PostNord:
		return "PostNord"
	case DHL:
		return "DHL"
	case Bring:
		return "Bring"
	case Budbee:
		return "Budbee"
	}
	return fmt.Sprintf("AgentCode(%d)", int(a))
}

// Color is the carrier's brand colour, used for zones and parcel labels.
func (a AgentCode) Color() color.RGBA {
	switch a {
	case PostNord:
		return color.RGBA{R: 0, G: 0, B: 255, A: 255}
	case DHL:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255}
	case Bring:
		return color.RGBA{R: 0, G: 255, B: 0, A: 255}
	case Budbee:
		return color.RGBA{R: 82, G: 191, B: 158, A: 255}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

// ParseAgentCode matches a carrier name case-insensitively.
func ParseAgentCode(s string) (AgentCode, error) {
	for _, a := range Agents {
		if strings.EqualFold(strings.TrimSpace(s), a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAgent, s)
}

// LifecyclePhase is where a parcel is in its pickup/delivery state machine.
type LifecyclePhase int

const (
	PhaseFree       LifecyclePhase = iota // on the floor or in flight
	PhaseHeld                             // occupies a stack slot
	PhaseDespawning                       // delivered, waiting for its despawn timer
)

func (p LifecyclePhase) String() string {
	switch p {
	case PhaseFree:
		return "free"
	case PhaseHeld:
		return "held"
	case PhaseDespawning:
		return "despawning"
	}
	return fmt.Sprintf("LifecyclePhase(%d)", int(p))
}

type ParcelData struct {
	Agent       AgentCode
	Phase       LifecyclePhase
	Highlighted bool
	Slot        EntityRef // set while Held
}

var Parcel = donburi.NewComponentType[ParcelData]()

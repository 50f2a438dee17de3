package components

import "github.com/yohamta/donburi"

// ZoneResult is one delivery zone's tally at the end of a match.
type ZoneResult struct {
	Agent    AgentCode
	Score    int
	Received int
}

// GameOverData is the final tally shown after the match clock runs out
type GameOverData struct {
	Score int
	Zones []ZoneResult
}

// GameOver is the component type for the results screen
var GameOver = donburi.NewComponentType[GameOverData]()

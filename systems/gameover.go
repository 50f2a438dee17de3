package systems

import (
	"github.com/parcelrush/blackfriday/archetypes"
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates an UpdateGameOver system with scene transition
// capability: MenuSelect starts a new match, MenuBack quits.
func NewUpdateGameOver(sceneChanger SceneChanger, createWarehouseScene func() interface{}, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Input.First(e.World)
		if !ok {
			return
		}
		input := components.Input.Get(entry)

		switch {
		case input.JustPressed(cfg.ActionMenuSelect):
			sceneChanger.ChangeScene(createWarehouseScene())
		case input.JustPressed(cfg.ActionMenuBack):
			quit()
		}
	}
}

// CreateGameOver spawns the results singleton for a finished match.
func CreateGameOver(e *ecs.ECS, result components.GameOverData) {
	entry := archetypes.GameOver.Spawn(e)
	components.GameOver.SetValue(entry, result)
}

package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/parcelrush/blackfriday/components"
	"github.com/parcelrush/blackfriday/systems"
	"github.com/parcelrush/blackfriday/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the final tally
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       components.GameOverData
	next         func() interface{}
	resultsUI    *ui.ResultsUI
	quit         bool
	once         sync.Once
}

// NewGameOverScene creates a results screen; next builds the scene that
// "play again" switches to.
func NewGameOverScene(sc SceneChanger, result components.GameOverData, next func() interface{}) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, result: result, next: next}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.resultsUI.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.resultsUI == nil {
		return
	}
	gs.resultsUI.UI.Draw(screen)
}

// Quit reports whether the player asked to leave.
func (gs *GameOverScene) Quit() bool {
	return gs.quit
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	systems.CreateGameOver(gs.ecs, gs.result)

	playAgain := func() { gs.sceneChanger.ChangeScene(gs.next()) }
	quit := func() { gs.quit = true }

	// Keyboard shortcuts for the buttons
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, gs.next, quit))

	gs.resultsUI = ui.NewResultsUI(gs.result, playAgain, quit)
}

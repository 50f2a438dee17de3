package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/parcelrush/blackfriday/shared/leveldata"
	"github.com/parcelrush/blackfriday/systems"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger = systems.SceneChanger

// WarehouseScene is one interactive match.
type WarehouseScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	layout       *leveldata.Warehouse
	seed         int64
	once         sync.Once
	err          error
}

// NewWarehouseScene creates a match on layout. A zero seed picks one from
// the clock.
func NewWarehouseScene(sc SceneChanger, layout *leveldata.Warehouse, seed int64) *WarehouseScene {
	return &WarehouseScene{sceneChanger: sc, layout: layout, seed: seed}
}

func (ws *WarehouseScene) Update() {
	ws.once.Do(ws.configure)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Update()

	// Match over - show the results
	if systems.IsMatchFinished(ws.ecs) {
		result := systems.MatchResult(ws.ecs.World)
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, result, func() interface{} {
			return NewWarehouseScene(ws.sceneChanger, ws.layout, 0)
		}))
	}
}

func (ws *WarehouseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Err reports a layout that could not be built.
func (ws *WarehouseScene) Err() error {
	return ws.err
}

func (ws *WarehouseScene) configure() {
	e, err := NewSession(ws.layout, ws.seed, ModePlay)
	if err != nil {
		zap.L().Error("failed to start match", zap.Error(err))
		ws.err = err
		return
	}
	ws.ecs = e
}

package systems

import (
	"github.com/parcelrush/blackfriday/components"
	cfg "github.com/parcelrush/blackfriday/config"
	"github.com/parcelrush/blackfriday/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	playing := IsMatchPlaying(ecs)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		var dir gamemath.Vec3
		if playing {
			dir = moveDirection(input)
		}
		updateSinglePlayer(playerEntry, dir)
	})
}

func updateSinglePlayer(playerEntry *donburi.Entry, dir gamemath.Vec3) {
	player := components.Player.Get(playerEntry)
	transform := components.Transform.Get(playerEntry)

	if dir.X > 0 {
		player.Facing = gamemath.V3(1, 0, 0)
	} else if dir.X < 0 {
		player.Facing = gamemath.V3(-1, 0, 0)
	}

	next := transform.Position.Add(dir.Scale(player.Speed * cfg.Dt()))
	transform.Position = player.Bounds.ClampPoint(next)
}

// moveDirection turns the held movement actions into a unit vector on the
// ground plane. Opposite keys cancel.
func moveDirection(input *components.InputData) gamemath.Vec3 {
	var dir gamemath.Vec3
	if input.Pressed(cfg.ActionMoveLeft) {
		dir.X--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dir.X++
	}
	if input.Pressed(cfg.ActionMoveUp) {
		dir.Z--
	}
	if input.Pressed(cfg.ActionMoveDown) {
		dir.Z++
	}
	return dir.Normalize()
}

package systems

import (
	"github.com/automoto/pongpacman/components"
	cfg "github.com/automoto/pongpacman/config"
	"github.com/automoto/pongpacman/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers maps each paddle's up/down keys to its vertical velocity.
// Runs after UpdateMovement, so the result is integrated next frame.
func UpdatePlayers(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	paddles.Each(ecs.World, func(e *donburi.Entry) {
		side := components.Side.Get(e)
		vel := components.Velocity.Get(e)

		up, down := cfg.PaddleActions(side.Left)
		vel.X = 0
		vel.Y = gamemath.AxisVelocity(
			GetAction(input, up).Pressed,
			GetAction(input, down).Pressed,
			cfg.Paddle.Speed,
		)
	})
}

package systems

import (
	"github.com/automoto/pongpacman/components"
	"github.com/automoto/pongpacman/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement advances every moving entity by one frame of velocity and
// clamps it to the playfield.
func UpdateMovement(ecs *ecs.ECS) {
	pf := getPlayfield(ecs.World)

	movers.Each(ecs.World, func(e *donburi.Entry) {
		vel := components.Velocity.Get(e)
		tf := components.Transform.Get(e)

		tf.Translation.X = gamemath.Clamp(tf.Translation.X+vel.X, -pf.HalfW(), pf.HalfW())
		tf.Translation.Y = gamemath.Clamp(tf.Translation.Y+vel.Y, -pf.HalfH(), pf.HalfH())
	})
}

package factory

import (
	"github.com/automoto/pongpacman/archetypes"
	"github.com/automoto/pongpacman/components"
	cfg "github.com/automoto/pongpacman/config"
	"github.com/automoto/pongpacman/shared/gamemath"
	"github.com/automoto/pongpacman/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateBall spawns the ball at (x, y) with velocity (vx, vy).
func CreateBall(ecs *ecs.ECS, x, y, vx, vy float64) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	pos := math.NewVec2(x, y)
	area := gamemath.NewCenteredRect(cfg.Ball.Size, cfg.Ball.Size)

	components.Transform.SetValue(ball, components.TransformData{Translation: pos})
	components.Velocity.SetValue(ball, components.VelocityData{X: vx, Y: vy, Bound: false})
	components.Hitbox.SetValue(ball, components.HitboxData{Area: area})

	attachObject(ecs, ball, pos, area, tags.ResolvBall)

	return ball
}

// CreateServeBall spawns the ball at the center with the configured launch velocity.
func CreateServeBall(ecs *ecs.ECS) *donburi.Entry {
	return CreateBall(ecs, 0, 0, cfg.Ball.InitialVelocityX, cfg.Ball.InitialVelocityY)
}

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

// CreatePaddle spawns a paddle centered at (x, y).
func CreatePaddle(ecs *ecs.ECS, x, y float64, left bool) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)

	pos := math.NewVec2(x, y)
	area := gamemath.NewCenteredRect(cfg.Paddle.Width, cfg.Paddle.Height)

	components.Transform.SetValue(paddle, components.TransformData{Translation: pos})
	components.Velocity.SetValue(paddle, components.VelocityData{
		X:     cfg.Paddle.InitialVelocityX,
		Y:     cfg.Paddle.InitialVelocityY,
		Bound: true,
	})
	components.Hitbox.SetValue(paddle, components.HitboxData{Area: area})
	components.Side.SetValue(paddle, components.SideData{Left: left})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(paddle, components.FlashData{})

	attachObject(ecs, paddle, pos, area, tags.ResolvPaddle)

	return paddle
}

// CreatePaddles spawns the left and right paddles on the playfield edges.
func CreatePaddles(ecs *ecs.ECS) []*donburi.Entry {
	pf := components.Playfield.Get(components.Playfield.MustFirst(ecs.World))

	sides := []struct {
		x    float64
		left bool
	}{
		{x: -pf.HalfW(), left: true},
		{x: pf.HalfW(), left: false},
	}

	paddles := make([]*donburi.Entry, 0, len(sides))
	for _, s := range sides {
		paddles = append(paddles, CreatePaddle(ecs, s.x, 0, s.left))
	}
	return paddles
}

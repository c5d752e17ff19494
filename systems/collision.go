package systems

import (
	"math"

	"github.com/automoto/pongpacman/components"
	cfg "github.com/automoto/pongpacman/config"
	"github.com/automoto/pongpacman/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBallCollision bounces the ball off paddles and walls.
// Must run AFTER UpdateMovement. Panics unless exactly one ball exists.
func UpdateBallCollision(ecs *ecs.ECS) {
	pf := getPlayfield(ecs.World)
	ball := MustSingleBall(ecs.World)
	ResolveBallCollision(ecs.World, ball, pf)
}

// ResolveBallCollision updates the ball's velocity for this frame's contacts.
// Only the velocity is written back. The ball's transform is left for the
// next UpdateMovement to advance.
func ResolveBallCollision(w donburi.World, ball *donburi.Entry, pf components.PlayfieldData) {
	vel := components.Velocity.Get(ball)
	area := components.Hitbox.Get(ball).Area

	// Working copy, nudged forward while correcting paddle overlap
	pos := components.Transform.Get(ball).Translation

	// Paddles are visited in query order. When the ball overlaps more than
	// one, the last one wins.
	obstacles.Each(w, func(e *donburi.Entry) {
		center := components.Transform.Get(e).Translation
		box := components.Hitbox.Get(e).Area

		if !gamemath.Intersects(pos, area, center, box) {
			return
		}

		bounce := gamemath.WithMagnitude(pos.Sub(center), cfg.Ball.BounceSpeed)
		vel.Set(bounce.X, bounce.Y)
		startFlash(e)

		for i := 0; i < cfg.Ball.CorrectionSteps; i++ {
			pos.X += vel.X
			pos.Y += vel.Y

			if !gamemath.Intersects(pos, area, center, box) {
				break
			}
		}
	})

	// Exact comparisons: these only fire when UpdateMovement clamped the ball
	// onto the boundary this frame.
	if math.Abs(pos.Y) == pf.HalfH() {
		vel.Y = -vel.Y
	}
	if math.Abs(pos.X) == pf.HalfW() {
		// Side wall: send the ball back toward the center
		reset := gamemath.WithMagnitude(pos.MulScalar(-1), cfg.Ball.BounceSpeed)
		vel.Set(reset.X, reset.Y)
	}
}

package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/pongpacman/components"
	"github.com/automoto/pongpacman/systems/factory"
)

const bounceSpeed = 3.85

func magnitude(v *components.VelocityData) float64 {
	return math.Hypot(v.X, v.Y)
}

func TestBallCollision_PaddleHeadOn(t *testing.T) {
	world := newTestWorld()
	paddle := factory.CreatePaddle(world, 350, 0, false)
	ball := factory.CreateBall(world, 330, 0, 5, 0)

	UpdateBallCollision(world)

	vel := velocity(ball)
	if math.Abs(vel.X+bounceSpeed) > epsilon || math.Abs(vel.Y) > epsilon {
		t.Errorf("expected velocity (-3.85, 0), got (%f, %f)", vel.X, vel.Y)
	}

	// The correction steps only move the working copy
	if got := translation(ball); got.X != 330 || got.Y != 0 {
		t.Errorf("expected ball to stay at (330, 0), got (%f, %f)", got.X, got.Y)
	}

	if flash := components.Flash.Get(paddle); flash.Intensity != 1 || flash.Tween == nil {
		t.Errorf("expected paddle flash to start, got %+v", flash)
	}
}

func TestBallCollision_PaddleOffCenter(t *testing.T) {
	world := newTestWorld()
	factory.CreatePaddle(world, 350, 0, false)
	ball := factory.CreateBall(world, 340, 60, 5, 0)

	UpdateBallCollision(world)

	vel := velocity(ball)
	if got := magnitude(vel); math.Abs(got-bounceSpeed) > epsilon {
		t.Errorf("expected speed 3.85, got %f", got)
	}

	// Points from the paddle center (350, 0) toward the ball (340, 60)
	dx, dy := 340.0-350.0, 60.0
	if vel.X >= 0 || vel.Y <= 0 {
		t.Errorf("expected velocity pointing up-left, got (%f, %f)", vel.X, vel.Y)
	}
	if cross := vel.X*dy - vel.Y*dx; math.Abs(cross) > 1e-6 {
		t.Errorf("expected velocity parallel to (%f, %f), got (%f, %f)", dx, dy, vel.X, vel.Y)
	}
}

func TestBallCollision_LeftPaddle(t *testing.T) {
	world := newTestWorld()
	factory.CreatePaddle(world, -350, 0, true)
	ball := factory.CreateBall(world, -335, -20, -5, 0)

	UpdateBallCollision(world)

	vel := velocity(ball)
	if vel.X <= 0 {
		t.Errorf("expected ball sent right, got (%f, %f)", vel.X, vel.Y)
	}
	if got := magnitude(vel); math.Abs(got-bounceSpeed) > epsilon {
		t.Errorf("expected speed 3.85, got %f", got)
	}
}

func TestBallCollision_NoContact(t *testing.T) {
	world := newTestWorld()
	paddle := factory.CreatePaddle(world, 350, 0, false)
	ball := factory.CreateBall(world, 325, 0, 5, 0)

	UpdateBallCollision(world)

	if vel := velocity(ball); vel.X != 5 || vel.Y != 0 {
		t.Errorf("expected velocity unchanged, got (%f, %f)", vel.X, vel.Y)
	}
	if flash := components.Flash.Get(paddle); flash.Tween != nil {
		t.Error("expected no flash without contact")
	}
}

func TestBallCollision_LastPaddleWins(t *testing.T) {
	world := newTestWorld()
	// Both paddles overlap a ball at the origin
	factory.CreatePaddle(world, 0, 50, true)
	factory.CreatePaddle(world, 0, -50, false)
	ball := factory.CreateBall(world, 0, 0, 5, 0)

	UpdateBallCollision(world)

	// The upper paddle pushes the ball down and the working copy ends at
	// y = -3*3.85. The lower paddle is checked from there and pushes up.
	vel := velocity(ball)
	if math.Abs(vel.X) > epsilon || math.Abs(vel.Y-bounceSpeed) > epsilon {
		t.Errorf("expected velocity (0, 3.85), got (%f, %f)", vel.X, vel.Y)
	}
}

func TestBallCollision_TopBottomWalls(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		vx, vy float64
		wantVY float64
	}{
		{"top wall", 350, 2, 3, -3},
		{"bottom wall", -350, 2, -3, 3},
		{"near top", 349.9, 2, 3, 3},
		{"center", 0, 2, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := newTestWorld()
			ball := factory.CreateBall(world, 0, tt.y, tt.vx, tt.vy)

			UpdateBallCollision(world)

			vel := velocity(ball)
			if vel.Y != tt.wantVY {
				t.Errorf("expected vy %f, got %f", tt.wantVY, vel.Y)
			}
			if vel.X != tt.vx {
				t.Errorf("expected vx unchanged at %f, got %f", tt.vx, vel.X)
			}
		})
	}
}

func TestBallCollision_SideWallReset(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"right wall", 350, 100},
		{"left wall", -350, -40},
		{"right wall centered", 350, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := newTestWorld()
			ball := factory.CreateBall(world, tt.x, tt.y, 5, 0)

			UpdateBallCollision(world)

			vel := velocity(ball)
			if got := magnitude(vel); math.Abs(got-bounceSpeed) > epsilon {
				t.Errorf("expected speed 3.85, got %f", got)
			}

			// Points from the ball back to the origin
			if cross := vel.X*(-tt.y) - vel.Y*(-tt.x); math.Abs(cross) > 1e-6 {
				t.Errorf("expected velocity parallel to (%f, %f), got (%f, %f)", -tt.x, -tt.y, vel.X, vel.Y)
			}
			if dot := vel.X*(-tt.x) + vel.Y*(-tt.y); dot <= 0 {
				t.Errorf("expected velocity toward the origin, got (%f, %f)", vel.X, vel.Y)
			}
		})
	}
}

func TestBallCollision_CornerReflectsThenResets(t *testing.T) {
	world := newTestWorld()
	ball := factory.CreateBall(world, 350, 350, 5, 5)

	UpdateBallCollision(world)

	// The side-wall reset runs last and overrides the vertical reflection
	vel := velocity(ball)
	want := bounceSpeed / math.Sqrt2
	if math.Abs(vel.X+want) > epsilon || math.Abs(vel.Y+want) > epsilon {
		t.Errorf("expected (%f, %f), got (%f, %f)", -want, -want, vel.X, vel.Y)
	}
}

func TestBallCollision_BallOnPaddleCenter(t *testing.T) {
	world := newTestWorld()
	factory.CreatePaddle(world, 0, 0, true)
	ball := factory.CreateBall(world, 0, 0, 5, 0)

	UpdateBallCollision(world)

	// No direction to bounce in: the ball stops instead of going NaN
	vel := velocity(ball)
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("expected zero velocity, got (%f, %f)", vel.X, vel.Y)
	}
}

func TestUpdateBallCollision_RequiresOneBall(t *testing.T) {
	tests := []struct {
		name  string
		balls int
	}{
		{"no ball", 0},
		{"two balls", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := newTestWorld()
			factory.CreatePaddle(world, 350, 0, false)
			for i := 0; i < tt.balls; i++ {
				factory.CreateBall(world, 0, 0, 5, 0)
			}

			if _, err := SingleBall(world.World); !errors.Is(err, ErrBallCount) {
				t.Errorf("expected ErrBallCount, got %v", err)
			}

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrBallCount) {
					t.Errorf("expected ErrBallCount panic, got %v", r)
				}
			}()
			UpdateBallCollision(world)
		})
	}
}

func TestSingleBall(t *testing.T) {
	world := newTestWorld()
	factory.CreatePaddle(world, 350, 0, false)
	ball := factory.CreateBall(world, 0, 0, 5, 0)

	got, err := SingleBall(world.World)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Entity() != ball.Entity() {
		t.Error("expected the spawned ball")
	}
}

func TestBallCollision_CorrectionLeavesTopWall(t *testing.T) {
	world := newTestWorld()
	// Paddle spans y [200, 350], ball sits on the top wall touching its right edge
	factory.CreatePaddle(world, 0, 275, true)
	ball := factory.CreateBall(world, 22.5, 350, 0, 5)

	UpdateBallCollision(world)

	// One correction step clears the paddle and moves the working copy off
	// y = 350, so the wall does not flip the bounce back down.
	vel := velocity(ball)
	if vel.X <= 0 || vel.Y <= 0 {
		t.Errorf("expected velocity pointing up-right, got (%f, %f)", vel.X, vel.Y)
	}
	if cross := vel.X*75 - vel.Y*22.5; math.Abs(cross) > 1e-6 {
		t.Errorf("expected velocity parallel to (22.5, 75), got (%f, %f)", vel.X, vel.Y)
	}
	if got := magnitude(vel); math.Abs(got-bounceSpeed) > epsilon {
		t.Errorf("expected speed 3.85, got %f", got)
	}

	if got := translation(ball); got.X != 22.5 || got.Y != 350 {
		t.Errorf("expected ball to stay at (22.5, 350), got (%f, %f)", got.X, got.Y)
	}
}

func TestBallCollision_CorrectionStopsOnceClear(t *testing.T) {
	world := newTestWorld()
	// The ball's left edge touches the first paddle's right edge at x = 15
	factory.CreatePaddle(world, 0, 0, true)
	// Spans x [-10, 20]: reached after one step, missed after three
	second := factory.CreatePaddle(world, 5, -60, false)
	ball := factory.CreateBall(world, 22.5, 0, -5, 0)

	UpdateBallCollision(world)

	// Working copy stops at x = 26.35 and still overlaps the second paddle,
	// which bounces the ball along (21.35, 60).
	vel := velocity(ball)
	if vel.X <= 0 || vel.Y <= 0 {
		t.Errorf("expected velocity pointing up-right, got (%f, %f)", vel.X, vel.Y)
	}
	if cross := vel.X*60 - vel.Y*21.35; math.Abs(cross) > 1e-6 {
		t.Errorf("expected velocity parallel to (21.35, 60), got (%f, %f)", vel.X, vel.Y)
	}
	if flash := components.Flash.Get(second); flash.Tween == nil {
		t.Error("expected second paddle to flash")
	}
}

func TestBallCollision_CorrectionStepCap(t *testing.T) {
	// The ball starts deep inside a paddle at the origin, so the correction
	// never clears it and the working copy advances the full step count:
	// x = 10 + n*3.85, right edge at 17.5 + n*3.85.
	tests := []struct {
		name      string
		secondX   float64
		wantFlash bool
	}{
		// Left edge 27: reached by the third step (right edge 29.05) only
		{"reached on third step", 42, true},
		// Left edge 30: would need a fourth step (right edge 32.9)
		{"beyond third step", 45, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := newTestWorld()
			factory.CreatePaddle(world, 0, 0, true)
			second := factory.CreatePaddle(world, tt.secondX, -60, false)
			ball := factory.CreateBall(world, 10, 0, -5, 0)

			UpdateBallCollision(world)

			vel := velocity(ball)
			flashed := components.Flash.Get(second).Tween != nil
			if flashed != tt.wantFlash {
				t.Errorf("expected second paddle flash %v, got %v", tt.wantFlash, flashed)
			}

			if tt.wantFlash {
				if vel.X >= 0 || vel.Y <= 0 {
					t.Errorf("expected velocity pointing up-left, got (%f, %f)", vel.X, vel.Y)
				}
				return
			}
			if math.Abs(vel.X-bounceSpeed) > epsilon || math.Abs(vel.Y) > epsilon {
				t.Errorf("expected velocity (3.85, 0), got (%f, %f)", vel.X, vel.Y)
			}
		})
	}
}

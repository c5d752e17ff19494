package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/pongpacman/components"
	"github.com/automoto/pongpacman/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ErrBallCount is returned when the world does not hold exactly one ball.
var ErrBallCount = errors.New("expected exactly one ball")

var (
	// Everything the integrator moves.
	movers = donburi.NewQuery(filter.Contains(components.Velocity, components.Transform))

	// Paddles steered by keyboard input.
	paddles = donburi.NewQuery(filter.Contains(tags.Player, components.Side, components.Velocity))

	balls = donburi.NewQuery(filter.And(
		filter.Contains(tags.PongBall, components.Transform, components.Velocity, components.Hitbox),
		filter.Not(filter.Contains(tags.Player)),
	))

	// Anything the ball can bounce off.
	obstacles = donburi.NewQuery(filter.And(
		filter.Contains(components.Transform, components.Hitbox),
		filter.Not(filter.Contains(tags.PongBall)),
	))
)

// SingleBall returns the only ball in the world.
func SingleBall(w donburi.World) (*donburi.Entry, error) {
	if n := balls.Count(w); n != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrBallCount, n)
	}
	e, ok := balls.First(w)
	if !ok {
		return nil, fmt.Errorf("%w: found 0", ErrBallCount)
	}
	return e, nil
}

// MustSingleBall is SingleBall for systems, where a missing or duplicated
// ball means the scene was built wrong.
func MustSingleBall(w donburi.World) *donburi.Entry {
	e, err := SingleBall(w)
	if err != nil {
		panic(err)
	}
	return e
}

// getPlayfield returns the playfield bounds. The scene creates it before any
// system runs.
func getPlayfield(w donburi.World) components.PlayfieldData {
	return *components.Playfield.Get(components.Playfield.MustFirst(w))
}

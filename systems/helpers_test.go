package systems

import (
	"github.com/automoto/pongpacman/components"
	"github.com/automoto/pongpacman/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const (
	testWidth  = 700
	testHeight = 700
	epsilon    = 1e-9
)

// newTestWorld returns an empty 700x700 playfield with a collision space.
func newTestWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreatePlayfield(e, testWidth, testHeight)
	factory.CreateSpace(e, testWidth, testHeight, 16, 16)
	return e
}

func translation(e *donburi.Entry) math.Vec2 {
	return components.Transform.Get(e).Translation
}

func setTranslation(e *donburi.Entry, x, y float64) {
	components.Transform.Get(e).Translation = math.NewVec2(x, y)
}

func velocity(e *donburi.Entry) *components.VelocityData {
	return components.Velocity.Get(e)
}

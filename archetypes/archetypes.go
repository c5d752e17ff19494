package archetypes

import (
	"github.com/automoto/pongpacman/components"
	cfg "github.com/automoto/pongpacman/config"
	"github.com/automoto/pongpacman/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Paddle = newArchetype(
		tags.Player,
		components.Transform,
		components.Velocity,
		components.Hitbox,
		components.Side,
		components.Object,
		components.Flash,
	)
	Ball = newArchetype(
		tags.PongBall,
		components.Transform,
		components.Velocity,
		components.Hitbox,
		components.Object,
	)
	Playfield = newArchetype(
		components.Playfield,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

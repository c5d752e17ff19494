package factory

import (
	"github.com/automoto/pongpacman/archetypes"
	"github.com/automoto/pongpacman/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayfield stores the world bounds. It must exist before paddles are
// spawned since their x position is derived from the width.
func CreatePlayfield(ecs *ecs.ECS, w, h float64) *donburi.Entry {
	playfield := archetypes.Playfield.Spawn(ecs)
	components.Playfield.SetValue(playfield, components.PlayfieldData{W: w, H: h})
	return playfield
}

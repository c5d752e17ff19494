package systems

import (
	"github.com/automoto/pongpacman/components"
	cfg "github.com/automoto/pongpacman/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawSprites fills every collision object with its entity's color.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)

		c := cfg.White
		if e.HasComponent(components.Flash) {
			c = flashColor(c, components.Flash.Get(e).Intensity)
		}

		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c, false)
	})
}
